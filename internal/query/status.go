package query

import (
	"fmt"
	"time"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
)

// Classify buckets a due date by how far it is from now's calendar date.
// Pure: same inputs, same answer. An unparseable date returns an error and
// an unknown status; the caller decides how to degrade.
func Classify(date string, now time.Time) (models.Status, error) {
	due, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return models.Status{Urgency: models.UrgencyUnknown}, fmt.Errorf("parse due date %q: %w", date, err)
	}

	days := daysUntil(due, now)
	switch {
	case days < 0:
		return models.Status{Urgency: models.UrgencyOverdue, Days: -days}, nil
	case days == 0:
		return models.Status{Urgency: models.UrgencyDueToday}, nil
	case days <= 3:
		return models.Status{Urgency: models.UrgencyCritical, Days: days}, nil
	case days <= 7:
		return models.Status{Urgency: models.UrgencySoon, Days: days}, nil
	default:
		return models.Status{Urgency: models.UrgencyScheduled, Days: days}, nil
	}
}

// daysUntil compares calendar dates only; the time of day never shifts a
// deadline between buckets.
func daysUntil(due, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today) / (24 * time.Hour))
}
