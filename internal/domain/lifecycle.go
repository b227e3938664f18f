package domain

// InitialStatus status of a newly created booking
const InitialStatus = StatusWaiting

var transitions = map[BookingStatus][]BookingStatus{
	StatusWaiting:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusInService, StatusCancelled},
	StatusInService: {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

// CanTransition reports whether from -> to is an adjacent lifecycle step
// Writing the same status again is always allowed
func CanTransition(from, to BookingStatus) bool {
	if !to.IsValid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns statuses reachable from s in one step
func NextStatuses(s BookingStatus) []BookingStatus {
	next := transitions[s]
	out := make([]BookingStatus, len(next))
	copy(out, next)
	return out
}
