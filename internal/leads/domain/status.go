// Package domain holds the closed vocabulary of the leads bounded context.
package domain

// Status is the pipeline stage of a lead. The set is closed: no other value
// is ever observable on a stored lead.
type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusConverted Status = "Converted"
)

// KnownStatuses lists all statuses in canonical display order.
var KnownStatuses = []Status{StatusNew, StatusContacted, StatusConverted}

var knownStatuses = map[Status]struct{}{
	StatusNew:       {},
	StatusContacted: {},
	StatusConverted: {},
}

// IsKnownStatus reports whether the value is a member of the closed status set.
func IsKnownStatus(status Status) bool {
	_, ok := knownStatuses[status]
	return ok
}
