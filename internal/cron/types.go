// Package cron schedules background jobs: history pruning and action
// plan reminders delivered to a channel.
package cron

import (
	"fmt"
	"time"
)

// Payload kinds.
const (
	KindReminder = "reminder"
	KindPrune    = "prune"
)

// Schedule describes when a job runs. Exactly one of the fields is
// meaningful depending on Kind: "cron" uses Expr (with seconds),
// "every" uses EveryMs, "at" uses AtMs for a one-shot.
type Schedule struct {
	Kind    string `json:"kind"`
	Expr    string `json:"expr,omitempty"`
	EveryMs int64  `json:"everyMs,omitempty"`
	AtMs    int64  `json:"atMs,omitempty"`
}

// Payload is what a job delivers when it fires.
type Payload struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
	Channel string `json:"channel,omitempty"`
	ChatID  string `json:"chatId,omitempty"`
}

// State tracks the last execution outcome.
type State struct {
	LastRunAtMs int64  `json:"lastRunAtMs,omitempty"`
	LastStatus  string `json:"lastStatus,omitempty"`
	LastError   string `json:"lastError,omitempty"`
}

type CronJob struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Enabled        bool     `json:"enabled"`
	Schedule       Schedule `json:"schedule"`
	Payload        Payload  `json:"payload"`
	State          State    `json:"state"`
	DeleteAfterRun bool     `json:"deleteAfterRun,omitempty"`
}

// NewCronJob builds an enabled job with a time-based id. One-shot "at"
// jobs are removed after they fire.
func NewCronJob(name string, schedule Schedule, payload Payload) CronJob {
	return CronJob{
		ID:             fmt.Sprintf("job-%d", time.Now().UnixNano()),
		Name:           name,
		Enabled:        true,
		Schedule:       schedule,
		Payload:        payload,
		DeleteAfterRun: schedule.Kind == "at",
	}
}
