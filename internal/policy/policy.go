// Package policy decides which stories are visible on which surface. The
// functions are pure so any reference date can be passed in; callers use
// time.Now() in production and fixed dates in tests.
package policy

import (
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
)

// DateOnly truncates t to its calendar date in UTC. Expiry comparisons are
// calendar-day based: a story expiring today is still visible today.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsPublic reports whether the story belongs on any public surface at the
// given reference date: approved, and either never expiring or not yet past
// its expiry date (inclusive).
func IsPublic(s *models.Story, today time.Time) bool {
	if !s.Approved {
		return false
	}
	if s.ExpiryDate == nil {
		return true
	}
	return !DateOnly(*s.ExpiryDate).Before(DateOnly(today))
}

// IsFeaturedPublic reports whether the story belongs in the featured view.
// Featuring never bypasses approval: the featured view is a subset of the
// public view even though featured=true is storable on a pending story.
func IsFeaturedPublic(s *models.Story, today time.Time) bool {
	return IsPublic(s, today) && s.Featured
}

// IsPending reports whether the story sits in the admin review queue.
// Expiry is irrelevant for pending stories.
func IsPending(s *models.Story) bool {
	return !s.Approved
}
