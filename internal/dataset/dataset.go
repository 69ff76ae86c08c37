// Package dataset defines the dataset document supplied by the data-loading
// boundary and converts it into the in-memory model types. The document is
// loaded once at session start; nothing in the core writes it back.
package dataset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"insiderwatch/pkg/models"
)

// Document is the on-disk dataset schema. Timestamps are strings in the
// models.TimeDisplay layout and are parsed during Build.
type Document struct {
	Alerts   []Record  `yaml:"alerts" json:"alerts"`
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// Record is one anomaly entry in the document.
type Record struct {
	ID       string `yaml:"id" json:"id"`
	User     string `yaml:"user,omitempty" json:"user,omitempty"`
	Event    string `yaml:"event" json:"event"`
	Risk     int    `yaml:"risk,omitempty" json:"risk,omitempty"`
	Severity string `yaml:"severity,omitempty" json:"severity,omitempty"`
	Method   string `yaml:"method" json:"method"`
	Time     string `yaml:"time" json:"time"`
	Details  string `yaml:"details,omitempty" json:"details,omitempty"`
	IsNew    bool   `yaml:"is_new,omitempty" json:"is_new,omitempty"`
}

// Profile is one user aggregate in the document. Anomalies inherit the
// profile's user identifier.
type Profile struct {
	User          string    `yaml:"user" json:"user"`
	Logins        int       `yaml:"logins" json:"logins"`
	FilesAccessed int       `yaml:"files_accessed" json:"files_accessed"`
	LastActive    string    `yaml:"last_active" json:"last_active"`
	Activity      []float64 `yaml:"activity" json:"activity"`
	Anomalies     []Record  `yaml:"anomalies,omitempty" json:"anomalies,omitempty"`
}

// Parse decodes a dataset document from YAML (or JSON, which yaml.v3 accepts).
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses a dataset document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Parse(data)
}

// Build converts the document into model values, parsing timestamps and
// stamping each profile anomaly with its owner.
func (d *Document) Build() ([]models.AnomalyRecord, []models.UserActivityProfile, error) {
	alerts := make([]models.AnomalyRecord, 0, len(d.Alerts))
	for i, rec := range d.Alerts {
		built, err := buildRecord(rec, rec.User)
		if err != nil {
			return nil, nil, fmt.Errorf("alert %d (%s): %w", i, rec.ID, err)
		}
		alerts = append(alerts, built)
	}

	profiles := make([]models.UserActivityProfile, 0, len(d.Profiles))
	for _, p := range d.Profiles {
		if p.User == "" {
			return nil, nil, fmt.Errorf("profile with empty user identifier")
		}
		lastActive, err := parseTime(p.LastActive)
		if err != nil {
			return nil, nil, fmt.Errorf("profile %s: %w", p.User, err)
		}
		anomalies := make([]models.AnomalyRecord, 0, len(p.Anomalies))
		for i, rec := range p.Anomalies {
			built, err := buildRecord(rec, p.User)
			if err != nil {
				return nil, nil, fmt.Errorf("profile %s anomaly %d: %w", p.User, i, err)
			}
			anomalies = append(anomalies, built)
		}
		profiles = append(profiles, models.UserActivityProfile{
			User:               p.User,
			LoginCount:         p.Logins,
			FilesAccessedCount: p.FilesAccessed,
			Anomalies:          anomalies,
			LastActiveTime:     lastActive,
			ActivitySeries:     append([]float64(nil), p.Activity...),
		})
	}

	return alerts, profiles, nil
}

func buildRecord(rec Record, user string) (models.AnomalyRecord, error) {
	ts, err := parseTime(rec.Time)
	if err != nil {
		return models.AnomalyRecord{}, err
	}
	return models.AnomalyRecord{
		ID:              rec.ID,
		User:            user,
		EventType:       rec.Event,
		RiskScore:       rec.Risk,
		SeverityLabel:   rec.Severity,
		DetectionMethod: rec.Method,
		Timestamp:       ts,
		Details:         rec.Details,
		IsNew:           rec.IsNew,
	}, nil
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(models.TimeDisplay, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", value, err)
	}
	return ts, nil
}
