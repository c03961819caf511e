package security

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultVirusTotalBaseURL = "https://www.virustotal.com/api/v3"
	defaultURLCheckTimeout   = 10 * time.Second
)

// URLReport status values.
const (
	URLStatusSuccess  = "success"
	URLStatusScanning = "scanning"
	URLStatusError    = "error"
)

// ScanStats aggregates vendor verdict counts from a URL analysis.
type ScanStats struct {
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Harmless   int `json:"harmless"`
	Undetected int `json:"undetected"`
	TotalScans int `json:"total_scans"`
}

// URLReport is the outcome of a reputation check. Failures are reported
// in-band through Status/Message rather than as Go errors, so callers
// always have something presentable.
type URLReport struct {
	Status         string
	Message        string
	URL            string
	SafetyStatus   string
	SafetyColor    string
	Recommendation string
	Stats          ScanStats
}

// URLCheckerConfig configures the VirusTotal-backed checker. Timeout
// applies only when no HTTPClient is supplied.
type URLCheckerConfig struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// URLChecker queries the VirusTotal v3 API for URL reputations.
type URLChecker struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewURLChecker builds a checker. An empty API key is allowed; checks
// will then return an in-band configuration error.
func NewURLChecker(cfg URLCheckerConfig) *URLChecker {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultVirusTotalBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultURLCheckTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &URLChecker{apiKey: cfg.APIKey, baseURL: baseURL, httpClient: httpClient}
}

// Check looks up the URL's latest analysis. Unknown URLs are submitted
// for scanning and reported as in-progress.
func (c *URLChecker) Check(ctx context.Context, target string) URLReport {
	if c.apiKey == "" {
		return URLReport{
			Status:  URLStatusError,
			Message: "VirusTotal API key not configured. Set VIRUSTOTAL_API_KEY to enable URL checks.",
		}
	}

	urlID := base64.RawURLEncoding.EncodeToString([]byte(target))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/urls/"+urlID, nil)
	if err != nil {
		return errorReport(err)
	}
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorReport(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return c.parseAnalysis(target, resp)
	case http.StatusNotFound:
		return c.submitForScan(ctx, target)
	default:
		return URLReport{
			Status:  URLStatusError,
			Message: fmt.Sprintf("Unable to check URL. API returned status code: %d", resp.StatusCode),
		}
	}
}

func (c *URLChecker) parseAnalysis(target string, resp *http.Response) URLReport {
	var payload struct {
		Data struct {
			Attributes struct {
				LastAnalysisStats map[string]int `json:"last_analysis_stats"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return errorReport(err)
	}

	stats := payload.Data.Attributes.LastAnalysisStats
	report := URLReport{
		Status: URLStatusSuccess,
		URL:    target,
		Stats: ScanStats{
			Malicious:  stats["malicious"],
			Suspicious: stats["suspicious"],
			Harmless:   stats["harmless"],
			Undetected: stats["undetected"],
		},
	}
	report.Stats.TotalScans = report.Stats.Malicious + report.Stats.Suspicious +
		report.Stats.Harmless + report.Stats.Undetected

	switch {
	case report.Stats.Malicious > 0 || report.Stats.Suspicious > 2:
		report.SafetyStatus = "DANGEROUS"
		report.SafetyColor = "🔴"
		report.Recommendation = "DO NOT VISIT - This URL has been flagged as malicious by security vendors."
	case report.Stats.Suspicious > 0:
		report.SafetyStatus = "SUSPICIOUS"
		report.SafetyColor = "🟡"
		report.Recommendation = "Exercise caution - Some vendors flagged this URL as suspicious."
	default:
		report.SafetyStatus = "SAFE"
		report.SafetyColor = "🟢"
		report.Recommendation = "This URL appears safe based on current analysis."
	}
	return report
}

func (c *URLChecker) submitForScan(ctx context.Context, target string) URLReport {
	form := url.Values{"url": {target}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/urls",
		strings.NewReader(form.Encode()))
	if err != nil {
		return errorReport(err)
	}
	req.Header.Set("x-apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorReport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return URLReport{
			Status:  URLStatusScanning,
			Message: "URL submitted for analysis. This may take a few moments. Please try again in 30 seconds.",
		}
	}
	return URLReport{
		Status:  URLStatusError,
		Message: fmt.Sprintf("Unable to check URL. API returned status code: %d", resp.StatusCode),
	}
}

func errorReport(err error) URLReport {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return URLReport{Status: URLStatusError, Message: "Request timed out. Please try again."}
	}
	return URLReport{Status: URLStatusError, Message: fmt.Sprintf("Error checking URL: %v", err)}
}
