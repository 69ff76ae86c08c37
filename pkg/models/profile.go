package models

import "time"

// UserActivityProfile aggregates one user's observed activity.
type UserActivityProfile struct {
	User               string          `json:"user" yaml:"user"`
	LoginCount         int             `json:"logins" yaml:"logins"`
	FilesAccessedCount int             `json:"files_accessed" yaml:"files_accessed"`
	Anomalies          []AnomalyRecord `json:"anomalies" yaml:"-"`
	LastActiveTime     time.Time       `json:"last_active" yaml:"-"`
	ActivitySeries     []float64       `json:"activity_series" yaml:"activity_series"`
}
