package submission

import "github.com/maisonbelle/salon-api/internal/httperr"

// ===============================
// Submission Status
// ===============================

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var all = []Status{
	StatusNew,
	StatusContacted,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

func IsValid(s Status) bool {
	for _, v := range all {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition defines whether a submission may move between two statuses.
// Any status may move to any other by an admin action; there is no enforced
// ordering and no terminal state.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

func InitialStatus() Status {
	return StatusNew
}
