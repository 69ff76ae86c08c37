// Package views derives the presentation projections from the record
// store. Builders are pure reads: they classify, filter, and shape, and
// hand the rendering layer plain structured data.
package views

import (
	"insiderwatch/internal/severity"
	"insiderwatch/pkg/models"
)

// Row is an anomaly record annotated with its display category and style
// tier. The category and tier are derived once, here, so every surface
// renders the same strings for the same record.
type Row struct {
	models.AnomalyRecord
	Category string `json:"category"`
	Tier     string `json:"tier"`
	Time     string `json:"time"`
}

// annotate classifies a record through whichever path its fields support:
// pre-labeled records use the label path, alert-style records the score
// path.
func annotate(rec models.AnomalyRecord) (Row, error) {
	var (
		level severity.Level
		err   error
	)
	if rec.SeverityLabel != "" {
		level, err = severity.FromLabel(rec.SeverityLabel)
	} else {
		level, err = severity.FromScore(rec.RiskScore)
	}
	if err != nil {
		return Row{}, err
	}
	return Row{
		AnomalyRecord: rec,
		Category:      level.Category(),
		Tier:          level.Tier(),
		Time:          rec.DisplayTime(),
	}, nil
}
