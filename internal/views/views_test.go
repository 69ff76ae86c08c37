package views

import (
	"errors"
	"testing"
	"time"

	"insiderwatch/internal/dataset"
	"insiderwatch/internal/store"
	"insiderwatch/pkg/models"
)

func sampleStore(t *testing.T) *store.Store {
	t.Helper()
	alerts, profiles, err := dataset.Sample().Build()
	if err != nil {
		t.Fatalf("sample dataset failed to build: %v", err)
	}
	return store.New(alerts, profiles)
}

func TestAlertsOrderedByRiskDescending(t *testing.T) {
	rows := Alerts(sampleStore(t), "")
	if len(rows) != 6 {
		t.Fatalf("expected 6 alerts, got %d", len(rows))
	}
	wantRisk := []int{95, 92, 88, 82, 70, 60}
	for i, want := range wantRisk {
		if rows[i].RiskScore != want {
			t.Fatalf("row %d risk = %d, want %d", i, rows[i].RiskScore, want)
		}
	}
	if !rows[0].IsNew || rows[3].IsNew {
		t.Fatalf("isNew badges not preserved: %+v", rows)
	}
}

func TestAlertsSearchAjayScenario(t *testing.T) {
	rows := Alerts(sampleStore(t), "ajay")
	if len(rows) != 1 {
		t.Fatalf("expected exactly one record for ajay, got %d", len(rows))
	}
	got := rows[0]
	if got.EventType != "Suspicious File Access" || got.RiskScore != 88 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Category != "High" {
		t.Fatalf("score 88 should classify High, got %s", got.Category)
	}
	if got.DetectionMethod != "XGBoost" {
		t.Fatalf("detection method altered: %s", got.DetectionMethod)
	}
}

func TestAlertsSkipMalformedRecord(t *testing.T) {
	alerts := []models.AnomalyRecord{
		{ID: "good", User: "pushya", EventType: "Mass Download", RiskScore: 95},
		{ID: "bad", User: "akhil", EventType: "Off-hours Login", RiskScore: 150},
	}
	rows := Alerts(store.New(alerts, nil), "")
	if len(rows) != 1 || rows[0].ID != "good" {
		t.Fatalf("malformed record should be skipped, got %+v", rows)
	}
}

func TestTimelineAscendingAndFiltered(t *testing.T) {
	st := sampleStore(t)

	all := Timeline(st, "all")
	if len(all) != 6 {
		t.Fatalf("expected 6 timeline events, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Timestamp.Before(all[i-1].Timestamp) {
			t.Fatalf("timeline not ascending at %d", i)
		}
	}

	high := Timeline(st, "high")
	if len(high) != 3 {
		t.Fatalf("expected 3 high events, got %d", len(high))
	}
	for _, row := range high {
		if row.SeverityLabel != "high" || row.Category != "High" {
			t.Fatalf("bad annotation: %+v", row)
		}
	}

	low := Timeline(st, "low")
	if low == nil || len(low) != 0 {
		t.Fatalf("no-match severity should yield an explicit empty view, got %v", low)
	}
}

func TestTimelineStableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 9, 17, 9, 0, 0, 0, time.UTC)
	profiles := []models.UserActivityProfile{
		{User: "pushya", Anomalies: []models.AnomalyRecord{
			{ID: "first", User: "pushya", SeverityLabel: "high", Timestamp: ts},
		}},
		{User: "akhil", Anomalies: []models.AnomalyRecord{
			{ID: "second", User: "akhil", SeverityLabel: "high", Timestamp: ts},
		}},
	}
	rows := Timeline(store.New(nil, profiles), "all")
	if len(rows) != 2 || rows[0].ID != "first" || rows[1].ID != "second" {
		t.Fatalf("equal timestamps should keep user order, got %+v", rows)
	}
}

func TestProfileView(t *testing.T) {
	view, err := Profile(sampleStore(t), "pushya")
	if err != nil {
		t.Fatalf("Profile(pushya): %v", err)
	}
	if view.LoginCount != 14 || view.FilesAccessedCount != 52 {
		t.Fatalf("wrong summary counts: %+v", view)
	}
	if view.AnomalyCount != 2 || len(view.Anomalies) != 2 {
		t.Fatalf("expected 2 anomalies, got %d/%d", view.AnomalyCount, len(view.Anomalies))
	}
	if view.LastActive != "17:45" {
		t.Fatalf("last active = %q, want 17:45", view.LastActive)
	}
	if len(view.ActivitySeries) != 5 {
		t.Fatalf("activity series length = %d", len(view.ActivitySeries))
	}
	if view.Anomalies[0].Category != "Critical" {
		t.Fatalf("mass download should be Critical, got %s", view.Anomalies[0].Category)
	}

	_, err = Profile(sampleStore(t), "ghost")
	var unknown *store.UnknownUserError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownUserError, got %v", err)
	}
}

func TestProfileSessionResetOnSelect(t *testing.T) {
	session := NewProfileSession("pushya")
	if session.ToggleDetails() != true {
		t.Fatalf("toggle should open details")
	}
	session.Select("akhil")
	if session.User() != "akhil" {
		t.Fatalf("selected user = %s", session.User())
	}
	if session.DetailsExpanded() {
		t.Fatalf("switching users must collapse anomaly details")
	}
}

func TestSeverityStringsConsistentAcrossViews(t *testing.T) {
	st := sampleStore(t)

	alertRows := Alerts(st, "akhil")
	if len(alertRows) != 1 {
		t.Fatalf("expected one akhil alert, got %d", len(alertRows))
	}
	profileView, err := Profile(st, "akhil")
	if err != nil {
		t.Fatalf("Profile(akhil): %v", err)
	}
	if len(profileView.Anomalies) != 1 {
		t.Fatalf("expected one akhil anomaly, got %d", len(profileView.Anomalies))
	}

	// Same logical event: off-hours login, score 82 / label "high".
	if alertRows[0].Category != profileView.Anomalies[0].Category {
		t.Fatalf("category diverges across views: %s vs %s",
			alertRows[0].Category, profileView.Anomalies[0].Category)
	}
	if alertRows[0].DetectionMethod != profileView.Anomalies[0].DetectionMethod {
		t.Fatalf("detection method diverges across views")
	}
}
