package bugzilla

import (
	"fmt"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// mapComments converts a Bug.comments reply into the comments of trackerID,
// in the order the tracker returned them.
//
// A reply without the bugs member, or without an entry for trackerID, means
// the issue has no comments yet and yields an empty slice. Anything present
// but malformed is a ShapeError.
func mapComments(rec map[string]any, trackerID string) ([]domain.Comment, error) {
	comments := []domain.Comment{}

	rawBugs, ok := rec[FieldBugs]
	if !ok || rawBugs == nil {
		return comments, nil
	}
	bugs, err := asStruct(FieldBugs, rawBugs)
	if err != nil {
		return nil, err
	}

	field := FieldBugs + "." + trackerID
	rawIssue, ok := bugs[trackerID]
	if !ok || rawIssue == nil {
		return comments, nil
	}
	issue, err := asStruct(field, rawIssue)
	if err != nil {
		return nil, err
	}

	field += "." + FieldComments
	list, err := optSequence(issue, FieldComments)
	if err != nil {
		return nil, &ShapeError{Field: field, Want: shapeSequence, Got: shapeOf(issue[FieldComments])}
	}

	for i, raw := range list {
		c, err := mapComment(fmt.Sprintf("%s[%d]", field, i), raw)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func mapComment(field string, raw any) (domain.Comment, error) {
	entry, err := asStruct(field, raw)
	if err != nil {
		return domain.Comment{}, err
	}

	rawID, ok := entry[FieldCommentID]
	if !ok || rawID == nil {
		return domain.Comment{}, &MissingFieldError{Field: field + "." + FieldCommentID}
	}
	id, err := asIdentifier(field+"."+FieldCommentID, rawID)
	if err != nil {
		return domain.Comment{}, err
	}

	body, err := optString(entry, FieldCommentBody)
	if err != nil {
		return domain.Comment{}, err
	}

	var private bool
	if v, ok := entry[FieldCommentIsPrivate]; ok && v != nil {
		if private, err = asBool(field+"."+FieldCommentIsPrivate, v); err != nil {
			return domain.Comment{}, err
		}
	}

	return domain.Comment{ID: id, Body: body, Private: private}, nil
}
