package models

const (
	FilterAll        = Filter("all")
	FilterCompleted  = Filter("completed")
	FilterIncomplete = Filter("incomplete")
)

// Filter selects a read-only view over the task sequence.
type Filter string

// ParseFilter maps a raw query value to a filter kind.
// Unknown or empty values fall back to FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterCompleted:
		return FilterCompleted
	case FilterIncomplete:
		return FilterIncomplete
	default:
		return FilterAll
	}
}
