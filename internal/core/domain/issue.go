package domain

import (
	"net/url"
	"strings"
)

// IssueType classifies an issue. The set is closed: a code the tracker
// reports outside this set is a contract change, not a default.
type IssueType string

// Known issue types.
const (
	IssueTypeBug            IssueType = "BUG"
	IssueTypeDefect         IssueType = "DEFECT"
	IssueTypeEnhancement    IssueType = "ENHANCEMENT"
	IssueTypeFeatureRequest IssueType = "FEATURE_REQUEST"
	IssueTypeTask           IssueType = "TASK"
	IssueTypeSupportPatch   IssueType = "SUPPORT_PATCH"
	IssueTypeUpgrade        IssueType = "UPGRADE"
	IssueTypeOneOff         IssueType = "ONE_OFF"
)

// AllIssueTypes returns every known issue type.
func AllIssueTypes() []IssueType {
	return []IssueType{
		IssueTypeBug,
		IssueTypeDefect,
		IssueTypeEnhancement,
		IssueTypeFeatureRequest,
		IssueTypeTask,
		IssueTypeSupportPatch,
		IssueTypeUpgrade,
		IssueTypeOneOff,
	}
}

// ParseIssueType upper-cases code and matches it against the known types.
func ParseIssueType(code string) (IssueType, bool) {
	want := IssueType(strings.ToUpper(strings.TrimSpace(code)))
	for _, t := range AllIssueTypes() {
		if t == want {
			return t, true
		}
	}
	return "", false
}

// String returns the string representation.
func (t IssueType) String() string {
	return string(t)
}

// IssueStatus is the workflow state of an issue. Like IssueType, the set is closed.
type IssueStatus string

// Known issue statuses.
const (
	IssueStatusCreated        IssueStatus = "CREATED"
	IssueStatusNew            IssueStatus = "NEW"
	IssueStatusAssigned       IssueStatus = "ASSIGNED"
	IssueStatusPost           IssueStatus = "POST"
	IssueStatusModified       IssueStatus = "MODIFIED"
	IssueStatusOnDev          IssueStatus = "ON_DEV"
	IssueStatusOnQA           IssueStatus = "ON_QA"
	IssueStatusVerified       IssueStatus = "VERIFIED"
	IssueStatusReleasePending IssueStatus = "RELEASE_PENDING"
	IssueStatusClosed         IssueStatus = "CLOSED"
)

// AllIssueStatuses returns every known issue status in workflow order.
func AllIssueStatuses() []IssueStatus {
	return []IssueStatus{
		IssueStatusCreated,
		IssueStatusNew,
		IssueStatusAssigned,
		IssueStatusPost,
		IssueStatusModified,
		IssueStatusOnDev,
		IssueStatusOnQA,
		IssueStatusVerified,
		IssueStatusReleasePending,
		IssueStatusClosed,
	}
}

// ParseIssueStatus upper-cases code and matches it against the known statuses.
func ParseIssueStatus(code string) (IssueStatus, bool) {
	want := IssueStatus(strings.ToUpper(strings.TrimSpace(code)))
	for _, s := range AllIssueStatuses() {
		if s == want {
			return s, true
		}
	}
	return "", false
}

// String returns the string representation.
func (s IssueStatus) String() string {
	return string(s)
}

// Release identifies the version an issue was reported against and the
// milestone it is targeted at.
type Release struct {
	// Version is the first version reported by the tracker. Always set.
	Version string

	// Milestone is the target milestone, empty when unset.
	Milestone string
}

// IssueTracking holds time tracking values in hours.
// A nil pointer means the value is not tracked, which is distinct from zero.
type IssueTracking struct {
	Estimated *float64
	Worked    *float64
}

// Issue is a tracker issue normalised into the domain model.
type Issue struct {
	// TrackerID is the tracker's primary key for the issue.
	TrackerID string

	// URL is the browsable location of the issue. It is derived from the
	// tracker base URL and TrackerID, never read from the payload.
	URL *url.URL

	Assignee    string
	Description string
	Type        IssueType
	Status      IssueStatus
	Component   string
	Product     string
	Release     Release

	// DependsOn lists the issues this issue depends on, in tracker order.
	DependsOn []*url.URL

	// Blocks lists the issues blocked by this issue, in tracker order.
	Blocks []*url.URL

	Tracking IssueTracking

	// Stage holds the acknowledgement flags set on the issue.
	Stage Stage

	// Streams holds every non-acknowledgement flag, duplicates included.
	Streams []Stream

	// Comments is only populated when explicitly requested.
	Comments []Comment
}

// NewIssue returns an issue located at u with empty, non-nil collections.
func NewIssue(u *url.URL) *Issue {
	return &Issue{
		URL:       u,
		DependsOn: []*url.URL{},
		Blocks:    []*url.URL{},
		Stage:     NewStage(),
		Streams:   []Stream{},
	}
}
