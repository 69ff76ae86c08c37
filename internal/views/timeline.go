package views

import (
	"sort"

	"insiderwatch/internal/filter"
	"insiderwatch/internal/logger"
	"insiderwatch/internal/metrics"
	"insiderwatch/internal/store"
)

// TimelineFilters lists the severity buckets the timeline can be narrowed
// to, wildcard first. These are label-path values, not score categories.
var TimelineFilters = []string{filter.Wildcard, "low", "medium", "high", "critical"}

// Timeline builds the chronological view: anomaly records from every user
// merged, ascending by timestamp, optionally narrowed to one severity
// label. Zero matches is a normal empty view, not an error.
func Timeline(st *store.Store, severityLabel string) []Row {
	var rows []Row
	for _, user := range st.Users() {
		profile, err := st.Profile(user)
		if err != nil {
			// Users() only lists known profiles; this cannot happen.
			continue
		}
		for _, rec := range profile.Anomalies {
			row, err := annotate(rec)
			if err != nil {
				logger.Warnf("skipping anomaly %s for %s: %v", rec.ID, user, err)
				metrics.ObserveClassificationError()
				continue
			}
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})

	return filter.ByCategory(rows, severityLabel, func(r Row) string {
		return r.SeverityLabel
	})
}
