package models

import "time"

// AnomalyRecord is a single flagged activity surfaced for analyst review.
//
// Alert-style records carry a RiskScore; timeline/profile-style records
// carry a SeverityLabel instead. Both forms share the rest of the fields.
type AnomalyRecord struct {
	ID              string    `json:"id" yaml:"id"`
	User            string    `json:"user" yaml:"user"`
	EventType       string    `json:"event" yaml:"event"`
	RiskScore       int       `json:"risk,omitempty" yaml:"risk,omitempty"`
	SeverityLabel   string    `json:"severity,omitempty" yaml:"severity,omitempty"`
	DetectionMethod string    `json:"method" yaml:"method"`
	Timestamp       time.Time `json:"ts" yaml:"-"`
	Details         string    `json:"details,omitempty" yaml:"details,omitempty"`
	IsNew           bool      `json:"is_new,omitempty" yaml:"is_new,omitempty"`
}

// TimeDisplay is the layout used for analyst-facing timestamps and exports.
const TimeDisplay = "2006-01-02 15:04"

// DisplayTime renders the record timestamp in the export layout.
func (r *AnomalyRecord) DisplayTime() string {
	if r.Timestamp.IsZero() {
		return ""
	}
	return r.Timestamp.Format(TimeDisplay)
}
