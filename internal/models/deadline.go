package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the due date format users type and the store persists.
	DateLayout = "2006-01-02"
	// AddedOnLayout is the creation timestamp format in the data file.
	AddedOnLayout = "2006-01-02 15:04:05"
)

// Category partitions deadlines. The set is closed; "all" is a query-only
// scope and never a storage key.
type Category string

const (
	CategoryUniversity Category = "university"
	CategoryAcademic   Category = "academic"
	CategoryPersonal   Category = "personal"
	CategoryIA         Category = "ia" // Internal Assessment
	CategoryEE         Category = "ee" // Extended Essay
	CategoryWork       Category = "work"
	CategoryOther      Category = "other"
)

// Categories lists every storable category in display order.
var Categories = []Category{
	CategoryUniversity,
	CategoryAcademic,
	CategoryPersonal,
	CategoryIA,
	CategoryEE,
	CategoryWork,
	CategoryOther,
}

// ScopeAll is the virtual query scope covering every category.
const ScopeAll = "all"

var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory validates a category name against the fixed set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Deadline is one stored record. Its category is the key of the collection
// it lives in, not a field, so a record can never disagree with its bucket.
// Records are immutable once created.
type Deadline struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	AddedOn string `json:"added_on"`
}

// DueDate parses the record's due date.
func (d Deadline) DueDate() (time.Time, error) {
	return time.Parse(DateLayout, d.Date)
}
