package cdr

import "time"

// CallRecord is a single synthetic call-detail record.
// Records are plain values and are never modified after generation.
type CallRecord struct {
	Start      time.Time
	End        time.Time
	TowerID    string
	TowerName  string
	FromNumber string
	ToNumber   string
}

// Duration returns how long the call lasted.
func (r CallRecord) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Tower is a cell tower identity.
type Tower struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Progress receives one increment per processed record.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
}
