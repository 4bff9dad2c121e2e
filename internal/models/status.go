package models

// Urgency buckets a deadline by how close its due date is.
type Urgency int

const (
	// UrgencyUnknown marks a record whose due date did not parse.
	UrgencyUnknown Urgency = iota
	UrgencyOverdue
	UrgencyDueToday
	UrgencyCritical  // 1-3 days left
	UrgencySoon      // 4-7 days left
	UrgencyScheduled // more than a week out
)

// Status is a computed urgency classification. Days carries how many days
// overdue the record is for UrgencyOverdue, and days left otherwise; it is
// zero for UrgencyDueToday and UrgencyUnknown.
type Status struct {
	Urgency Urgency
	Days    int
}
