// Package store holds the session dataset. The store is read-only after
// construction, so views may read it concurrently without locking.
package store

import (
	"fmt"
	"sort"

	"insiderwatch/pkg/models"
)

// UnknownUserError reports a profile lookup for an absent user.
type UnknownUserError struct {
	User string
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("unknown user %q", e.User)
}

// Store is the immutable anomaly record store.
type Store struct {
	alerts    []models.AnomalyRecord
	profiles  map[string]models.UserActivityProfile
	userOrder []string
}

// New builds a store from the loaded dataset. Alerts are sorted descending
// by risk score; the sort is stable so equal scores keep dataset order.
// Profiles keep dataset insertion order for user listing.
func New(alerts []models.AnomalyRecord, profiles []models.UserActivityProfile) *Store {
	ordered := append([]models.AnomalyRecord(nil), alerts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RiskScore > ordered[j].RiskScore
	})

	byUser := make(map[string]models.UserActivityProfile, len(profiles))
	order := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if _, seen := byUser[p.User]; !seen {
			order = append(order, p.User)
		}
		byUser[p.User] = p
	}

	return &Store{
		alerts:    ordered,
		profiles:  byUser,
		userOrder: order,
	}
}

// Alerts returns the risk-ordered alert records. The returned slice is a
// copy; callers may filter it freely.
func (s *Store) Alerts() []models.AnomalyRecord {
	return append([]models.AnomalyRecord(nil), s.alerts...)
}

// Profile returns the activity profile for one user.
func (s *Store) Profile(user string) (models.UserActivityProfile, error) {
	p, ok := s.profiles[user]
	if !ok {
		return models.UserActivityProfile{}, &UnknownUserError{User: user}
	}
	return p, nil
}

// Users returns user identifiers in dataset insertion order.
func (s *Store) Users() []string {
	return append([]string(nil), s.userOrder...)
}

// RecordCount reports how many records the store holds across both tables.
func (s *Store) RecordCount() int {
	n := len(s.alerts)
	for _, p := range s.profiles {
		n += len(p.Anomalies)
	}
	return n
}
