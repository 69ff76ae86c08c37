package store

import (
	"errors"
	"testing"
	"time"

	"insiderwatch/pkg/models"
)

func rec(id, user string, risk int, offset time.Duration) models.AnomalyRecord {
	base := time.Date(2025, 9, 17, 9, 0, 0, 0, time.UTC)
	return models.AnomalyRecord{
		ID:        id,
		User:      user,
		EventType: "Mass Download",
		RiskScore: risk,
		Timestamp: base.Add(offset),
	}
}

func TestAlertsSortedByRiskDescending(t *testing.T) {
	in := []models.AnomalyRecord{
		rec("1", "pushya", 70, 0),
		rec("2", "akhil", 95, time.Minute),
		rec("3", "ajay", 88, 2*time.Minute),
		rec("4", "vishnu", 95, 3*time.Minute),
	}
	s := New(in, nil)

	got := s.Alerts()
	if len(got) != len(in) {
		t.Fatalf("expected %d alerts, got %d", len(in), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].RiskScore < got[i].RiskScore {
			t.Fatalf("alerts not descending at %d: %d < %d", i, got[i-1].RiskScore, got[i].RiskScore)
		}
	}
	// Stable sort: the two 95s keep dataset order.
	if got[0].ID != "2" || got[1].ID != "4" {
		t.Fatalf("tie not stable: got %s,%s", got[0].ID, got[1].ID)
	}

	seen := make(map[string]int)
	for _, r := range got {
		seen[r.ID]++
	}
	for _, r := range in {
		if seen[r.ID] != 1 {
			t.Fatalf("id %s appears %d times", r.ID, seen[r.ID])
		}
	}
}

func TestAlertsReturnsCopy(t *testing.T) {
	s := New([]models.AnomalyRecord{rec("1", "pushya", 95, 0)}, nil)
	first := s.Alerts()
	first[0].User = "mutated"
	if s.Alerts()[0].User != "pushya" {
		t.Fatalf("store exposed internal slice")
	}
}

func TestProfileLookup(t *testing.T) {
	profiles := []models.UserActivityProfile{
		{User: "pushya", LoginCount: 14},
		{User: "akhil", LoginCount: 10},
	}
	s := New(nil, profiles)

	p, err := s.Profile("akhil")
	if err != nil {
		t.Fatalf("Profile(akhil): %v", err)
	}
	if p.LoginCount != 10 {
		t.Fatalf("wrong profile returned: %+v", p)
	}

	_, err = s.Profile("nobody")
	var unknown *UnknownUserError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownUserError, got %v", err)
	}
	if unknown.User != "nobody" {
		t.Fatalf("error names user %q", unknown.User)
	}
}

func TestUsersKeepInsertionOrder(t *testing.T) {
	profiles := []models.UserActivityProfile{
		{User: "pushya"}, {User: "akhil"}, {User: "bhaavya"},
	}
	s := New(nil, profiles)

	want := []string{"pushya", "akhil", "bhaavya"}
	got := s.Users()
	if len(got) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("user order at %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRecordCount(t *testing.T) {
	profiles := []models.UserActivityProfile{
		{User: "pushya", Anomalies: []models.AnomalyRecord{rec("p1", "pushya", 0, 0)}},
	}
	s := New([]models.AnomalyRecord{rec("1", "pushya", 95, 0)}, profiles)
	if s.RecordCount() != 2 {
		t.Fatalf("RecordCount = %d, want 2", s.RecordCount())
	}
}
