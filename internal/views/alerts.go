package views

import (
	"insiderwatch/internal/filter"
	"insiderwatch/internal/logger"
	"insiderwatch/internal/metrics"
	"insiderwatch/internal/store"
)

// Alerts builds the alert view: every alert record annotated with its
// category, ordered by risk score descending, narrowed by the search
// query over user and event type. Records that fail classification are
// skipped so one malformed score never takes down the whole view.
func Alerts(st *store.Store, query string) []Row {
	records := st.Alerts()
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row, err := annotate(rec)
		if err != nil {
			logger.Warnf("skipping alert %s: %v", rec.ID, err)
			metrics.ObserveClassificationError()
			continue
		}
		rows = append(rows, row)
	}

	return filter.Search(rows, query, func(r Row) []string {
		return []string{r.User, r.EventType}
	})
}
