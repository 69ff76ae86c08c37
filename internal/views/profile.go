package views

import (
	"insiderwatch/internal/logger"
	"insiderwatch/internal/metrics"
	"insiderwatch/internal/store"
	"insiderwatch/pkg/models"
)

// ProfileView is the per-user projection: summary counts, annotated
// anomaly rows, and the activity series for trend rendering.
type ProfileView struct {
	User               string    `json:"user"`
	LoginCount         int       `json:"logins"`
	FilesAccessedCount int       `json:"files_accessed"`
	AnomalyCount       int       `json:"anomaly_count"`
	LastActive         string    `json:"last_active"`
	Anomalies          []Row     `json:"anomalies"`
	ActivitySeries     []float64 `json:"activity_series"`
}

// LastActiveDisplay is the clock layout for the profile summary tile.
const LastActiveDisplay = "15:04"

// Profile builds the view for one selected user. An unknown user is a
// recoverable not-found, surfaced as store.UnknownUserError.
func Profile(st *store.Store, user string) (ProfileView, error) {
	p, err := st.Profile(user)
	if err != nil {
		return ProfileView{}, err
	}

	rows := make([]Row, 0, len(p.Anomalies))
	for _, rec := range p.Anomalies {
		row, err := annotate(rec)
		if err != nil {
			logger.Warnf("skipping anomaly %s for %s: %v", rec.ID, user, err)
			metrics.ObserveClassificationError()
			continue
		}
		rows = append(rows, row)
	}

	return ProfileView{
		User:               p.User,
		LoginCount:         p.LoginCount,
		FilesAccessedCount: p.FilesAccessedCount,
		AnomalyCount:       len(p.Anomalies),
		LastActive:         lastActive(p),
		Anomalies:          rows,
		ActivitySeries:     append([]float64(nil), p.ActivitySeries...),
	}, nil
}

func lastActive(p models.UserActivityProfile) string {
	if p.LastActiveTime.IsZero() {
		return ""
	}
	return p.LastActiveTime.Format(LastActiveDisplay)
}
