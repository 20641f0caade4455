package domain

// Comment is a single comment on an issue.
type Comment struct {
	// ID is the tracker's comment identifier, always held as a string.
	ID string

	// Body is the comment text.
	Body string

	// Private marks comments restricted to privileged tracker users.
	Private bool
}
