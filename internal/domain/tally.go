package domain

// StatusTally holds per-status counts computed over a scoped appointment collection
type StatusTally struct {
	Pending   int
	Accepted  int
	Rejected  int
	Completed int
	Cancelled int
}

// Add increments the bucket for the given status
// Unknown statuses are ignored
func (t *StatusTally) Add(status AppointmentStatus) {
	switch status {
	case StatusPending:
		t.Pending++
	case StatusAccepted:
		t.Accepted++
	case StatusRejected:
		t.Rejected++
	case StatusCompleted:
		t.Completed++
	case StatusCancelled:
		t.Cancelled++
	}
}

// Total returns the sum across all five status buckets
func (t *StatusTally) Total() int {
	return t.Pending + t.Accepted + t.Rejected + t.Completed + t.Cancelled
}

// PageRequest describes the requested page of a collection
type PageRequest struct {
	Page    int // 1-based page number
	PerPage int // page size, at least 1
}
