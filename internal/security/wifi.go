package security

import "strings"

var wifiRecommendations = map[string]string{
	"banking":  "Use VPN and avoid public WiFi for banking. If essential, use mobile data.",
	"social":   "Public WiFi acceptable, but avoid logging into sensitive accounts.",
	"work":     "Use company VPN. Avoid accessing confidential documents on public networks.",
	"browsing": "Public WiFi acceptable for general browsing. Use HTTPS sites only.",
}

// WiFiRecommendation maps a usage type to advice. Unknown usage falls
// back to the blanket VPN recommendation.
func WiFiRecommendation(usage string) string {
	if rec, ok := wifiRecommendations[strings.ToLower(strings.TrimSpace(usage))]; ok {
		return rec
	}
	return "Use VPN for all activities on public WiFi."
}

// WiFiAdviceText is the canned response for generic WiFi questions.
const WiFiAdviceText = `For WiFi security:
• Use VPN on public networks
• Avoid banking on public WiFi
• Enable firewall
• Use WPA3 encryption`
