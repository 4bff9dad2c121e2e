package query

import (
	"sort"
	"time"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
	"github.com/SanyamDa/DeadelinesBot/internal/storage"
)

// Loader is the read side of the deadline store.
type Loader interface {
	Load() storage.Store
}

// Result is a queried deadline annotated with its source category and a
// computed urgency status.
type Result struct {
	models.Deadline
	Category models.Category
	Status   models.Status
}

// Engine answers view queries against the store.
type Engine struct {
	store Loader
	now   func() time.Time
}

func NewEngine(store Loader) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Query returns the records for scope, which is either a category name or
// "all". Results are sorted ascending by due date; an empty result is a
// valid answer, an unrecognised scope is not.
func (e *Engine) Query(scope string) ([]Result, error) {
	snapshot := e.store.Load()

	var results []Result
	if scope == models.ScopeAll {
		// Flatten in fixed category order so output is deterministic even
		// when sorting has to be skipped.
		for _, cat := range models.Categories {
			for _, d := range snapshot[cat] {
				results = append(results, Result{Deadline: d, Category: cat})
			}
		}
	} else {
		cat, err := models.ParseCategory(scope)
		if err != nil {
			return nil, err
		}
		for _, d := range snapshot[cat] {
			results = append(results, Result{Deadline: d, Category: cat})
		}
	}

	sortByDueDate(results)

	now := e.now()
	for i := range results {
		status, err := Classify(results[i].Date, now)
		if err != nil {
			// One corrupt record must not sink the whole listing.
			status = models.Status{Urgency: models.UrgencyUnknown}
		}
		results[i].Status = status
	}
	return results, nil
}

// sortByDueDate orders results ascending by due date, keeping insertion
// order for equal dates. If any record's date fails to parse the slice is
// left in insertion order: an unsorted answer beats no answer.
func sortByDueDate(results []Result) {
	type entry struct {
		due time.Time
		res Result
	}
	entries := make([]entry, len(results))
	for i, r := range results {
		due, err := r.DueDate()
		if err != nil {
			return
		}
		entries[i] = entry{due: due, res: r}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].due.Before(entries[j].due)
	})
	for i, e := range entries {
		results[i] = e.res
	}
}
