package models

// Status is the lifecycle state shared by courses and enrollments. Values are
// stored uppercase.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED" // forces progress to 100
	StatusFailed     Status = "FAILED"
	StatusArchived   Status = "ARCHIVED"
	StatusFuture     Status = "FUTURE" // planned but not yet started
	StatusOutdated   Status = "OUTDATED"
	StatusOnHold     Status = "ON_HOLD"
	StatusCancelled  Status = "CANCELLED"
)

// AllStatuses lists every valid status value.
var AllStatuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusFailed,
	StatusArchived,
	StatusFuture,
	StatusOutdated,
	StatusOnHold,
	StatusCancelled,
}

// IsValid reports whether s is one of the known status values.
func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
