package domain

import "slices"

// UpdateKind names a single-field update an issue supports.
type UpdateKind string

// Supported single-field updates.
const (
	UpdateTargetRelease   UpdateKind = "target_release"
	UpdateStatus          UpdateKind = "status"
	UpdateTargetMilestone UpdateKind = "target_milestone"
	UpdateEstimate        UpdateKind = "estimate"
)

// AllUpdateKinds returns every supported update kind.
func AllUpdateKinds() []UpdateKind {
	return []UpdateKind{
		UpdateTargetRelease,
		UpdateStatus,
		UpdateTargetMilestone,
		UpdateEstimate,
	}
}

// IsValid returns true if the update kind is recognised.
func (k UpdateKind) IsValid() bool {
	return slices.Contains(AllUpdateKinds(), k)
}

// String returns the string representation.
func (k UpdateKind) String() string {
	return string(k)
}
