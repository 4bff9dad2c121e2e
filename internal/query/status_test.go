package query

import (
	"testing"
	"time"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
)

func TestClassifyBoundaries(t *testing.T) {
	// Mid-afternoon "now": the time of day must not leak into the bucket.
	now := time.Date(2024, 5, 10, 15, 42, 7, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		urgency models.Urgency
		days    int
	}{
		{"one day overdue", "2024-05-09", models.UrgencyOverdue, 1},
		{"week overdue", "2024-05-03", models.UrgencyOverdue, 7},
		{"due today", "2024-05-10", models.UrgencyDueToday, 0},
		{"tomorrow is critical", "2024-05-11", models.UrgencyCritical, 1},
		{"three days is critical", "2024-05-13", models.UrgencyCritical, 3},
		{"four days is soon", "2024-05-14", models.UrgencySoon, 4},
		{"seven days is soon", "2024-05-17", models.UrgencySoon, 7},
		{"eight days is scheduled", "2024-05-18", models.UrgencyScheduled, 8},
		{"far future is scheduled", "2025-01-01", models.UrgencyScheduled, 236},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := Classify(tt.date, now)
			if err != nil {
				t.Fatalf("classify %s: %v", tt.date, err)
			}
			if status.Urgency != tt.urgency {
				t.Fatalf("urgency = %d, want %d", status.Urgency, tt.urgency)
			}
			if status.Days != tt.days {
				t.Fatalf("days = %d, want %d", status.Days, tt.days)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	a, errA := Classify("2024-05-12", now)
	b, errB := Classify("2024-05-12", now)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Fatalf("same inputs, different answers: %#v vs %#v", a, b)
	}
}

func TestClassifyBadDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	for _, date := range []string{"", "not-a-date", "2024-13-01", "2024-02-30", "12/25/2024"} {
		status, err := Classify(date, now)
		if err == nil {
			t.Fatalf("expected error for %q", date)
		}
		if status.Urgency != models.UrgencyUnknown {
			t.Fatalf("expected unknown urgency for %q, got %d", date, status.Urgency)
		}
	}
}
