package bugzilla

// IDQuery is appended to the base URL, followed by the issue id, to build
// the browsable location of an issue.
const IDQuery = "/show_bug.cgi?id="

// Remote methods.
const (
	MethodGetBug     = "Bug.get"
	MethodGetComment = "Bug.comments"
	MethodUpdateBug  = "Bug.update"
	MethodAddComment = "Bug.add_comment"
)

// Credential and request option keys.
const (
	FieldLogin    = "login"
	FieldPassword = "password"
	FieldAPIKey   = "Bugzilla_api_key"

	FieldIssueIDs      = "ids"
	FieldIncludeFields = "include_fields"
	FieldPermissive    = "permissive"
)

// Issue fields.
const (
	FieldID              = "id"
	FieldAssignee        = "assigned_to"
	FieldDescription     = "summary"
	FieldIssueType       = "cf_type"
	FieldStatus          = "status"
	FieldComponent       = "component"
	FieldProduct         = "product"
	FieldVersion         = "version"
	FieldTargetMilestone = "target_milestone"
	FieldTargetRelease   = "target_release"
	FieldDependsOn       = "depends_on"
	FieldBlocks          = "blocks"
	FieldEstimatedTime   = "estimated_time"
	FieldHoursWorked     = "actual_time"
	FieldFlags           = "flags"
	FieldFlagName        = "name"
	FieldFlagStatus      = "status"
)

// Reply and comment fields.
const (
	FieldBugs = "bugs"

	FieldComments         = "comments"
	FieldCommentID        = "id"
	FieldCommentBody      = "text"
	FieldCommentIsPrivate = "is_private"

	// FieldComment and FieldPrivateComment are the Bug.add_comment parameters.
	FieldComment        = "comment"
	FieldPrivateComment = "is_private"
)

// AckMarker is the name fragment that identifies acknowledgement flags.
const AckMarker = "_ack"

// IssueFields is the include_fields selector for Bug.get.
func IssueFields() []string {
	return []string{
		FieldID,
		FieldAssignee,
		FieldDescription,
		FieldIssueType,
		FieldStatus,
		FieldComponent,
		FieldProduct,
		FieldVersion,
		FieldTargetMilestone,
		FieldTargetRelease,
		FieldDependsOn,
		FieldBlocks,
		FieldEstimatedTime,
		FieldHoursWorked,
		FieldFlags,
	}
}

// CommentFields is the include_fields selector for Bug.comments.
func CommentFields() []string {
	return []string{FieldCommentID, FieldCommentBody, FieldCommentIsPrivate}
}
