package models

// Stage is a user's position in the add-deadline dialog.
type Stage int

const (
	StageNone Stage = iota
	StageAwaitingTitle
	StageAwaitingDate
	StageAwaitingCategory
)

// Session holds one user's in-progress deadline draft. The zero value is a
// user with no dialog in flight.
type Session struct {
	Stage      Stage
	DraftTitle string
	DraftDate  string
}
