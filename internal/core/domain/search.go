package domain

// SearchCriteria narrows an issue search.
// Empty fields do not constrain the search.
type SearchCriteria struct {
	// Assignee filters by the assigned user.
	Assignee string

	// Status filters by workflow state.
	Status IssueStatus

	// Product filters by product name.
	Product string

	// Component filters by component name.
	Component string

	// Release filters by reported version and target milestone.
	Release *Release

	// MaxResults caps the number of issues returned. Zero means no cap.
	MaxResults int
}

// IsEmpty returns true if no criteria are set.
func (c SearchCriteria) IsEmpty() bool {
	return c.Assignee == "" &&
		c.Status == "" &&
		c.Product == "" &&
		c.Component == "" &&
		c.Release == nil
}
