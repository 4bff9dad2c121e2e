package models

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", c, err)
		}
		if got != c {
			t.Fatalf("ParseCategory(%q) = %q", c, got)
		}
	}

	for _, bad := range []string{"", "xyz", "ALL", "all", "Work"} {
		if _, err := ParseCategory(bad); !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("ParseCategory(%q) should fail with ErrUnknownCategory, got %v", bad, err)
		}
	}
}

func TestDueDate(t *testing.T) {
	d := Deadline{Title: "x", Date: "2024-12-25"}
	due, err := d.DueDate()
	if err != nil {
		t.Fatalf("DueDate: %v", err)
	}
	if due.Year() != 2024 || due.Month() != 12 || due.Day() != 25 {
		t.Fatalf("DueDate = %v", due)
	}

	if _, err := (Deadline{Date: "christmas"}).DueDate(); err == nil {
		t.Fatal("expected parse error")
	}
}
