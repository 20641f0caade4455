package bugzilla

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// issueMapper converts decoded Bug.get records into domain issues.
// It holds no per-call state and is safe for concurrent use.
type issueMapper struct {
	base  string // tracker base URL, no trailing slash
	flags *FlagRegistry
}

func newIssueMapper(base *url.URL, flags *FlagRegistry) *issueMapper {
	if flags == nil {
		flags = NewFlagRegistry(nil)
	}
	return &issueMapper{
		base:  strings.TrimRight(base.String(), "/"),
		flags: flags,
	}
}

// issueURL builds the browsable location of an issue. Locations are always
// derived from the id, never taken from the payload.
func (m *issueMapper) issueURL(id string) (*url.URL, error) {
	u, err := url.Parse(m.base + IDQuery + url.QueryEscape(id))
	if err != nil {
		return nil, fmt.Errorf("build issue url for %q: %w", id, err)
	}
	return u, nil
}

// mapIssue converts one issue record. Any failure aborts the whole mapping;
// a partially populated issue is never returned.
func (m *issueMapper) mapIssue(rec map[string]any) (*domain.Issue, error) {
	rawID, ok := rec[FieldID]
	if !ok || rawID == nil {
		return nil, &MissingFieldError{Field: FieldID}
	}
	id, err := asInt(FieldID, rawID)
	if err != nil {
		return nil, err
	}
	trackerID := strconv.Itoa(id)

	u, err := m.issueURL(trackerID)
	if err != nil {
		return nil, err
	}

	issue := domain.NewIssue(u)
	issue.TrackerID = trackerID

	if issue.Assignee, err = optString(rec, FieldAssignee); err != nil {
		return nil, err
	}
	if issue.Description, err = optString(rec, FieldDescription); err != nil {
		return nil, err
	}
	if issue.Component, _, err = firstString(rec, FieldComponent); err != nil {
		return nil, err
	}
	if issue.Product, err = optString(rec, FieldProduct); err != nil {
		return nil, err
	}

	if issue.Type, err = mapIssueType(rec); err != nil {
		return nil, err
	}
	if issue.Status, err = mapIssueStatus(rec); err != nil {
		return nil, err
	}

	if issue.Release, err = mapRelease(rec); err != nil {
		return nil, err
	}

	if issue.DependsOn, err = m.mapLinks(rec, FieldDependsOn); err != nil {
		return nil, err
	}
	if issue.Blocks, err = m.mapLinks(rec, FieldBlocks); err != nil {
		return nil, err
	}

	if issue.Tracking, err = mapTracking(rec); err != nil {
		return nil, err
	}

	flags, err := optSequence(rec, FieldFlags)
	if err != nil {
		return nil, err
	}
	if issue.Stage, issue.Streams, err = m.classifyFlags(flags); err != nil {
		return nil, err
	}

	return issue, nil
}

// mapIssueType decodes the issue type. The type is required and must be
// one of the known codes.
func mapIssueType(rec map[string]any) (domain.IssueType, error) {
	code, err := reqString(rec, FieldIssueType)
	if err != nil {
		return "", err
	}
	t, ok := domain.ParseIssueType(code)
	if !ok {
		return "", &EnumError{Field: FieldIssueType, Value: code}
	}
	return t, nil
}

// mapIssueStatus decodes the issue status with the same rules as mapIssueType.
func mapIssueStatus(rec map[string]any) (domain.IssueStatus, error) {
	code, err := reqString(rec, FieldStatus)
	if err != nil {
		return "", err
	}
	s, ok := domain.ParseIssueStatus(code)
	if !ok {
		return "", &EnumError{Field: FieldStatus, Value: code}
	}
	return s, nil
}

// mapRelease builds the release from the first reported version and the
// target milestone. A release requires a version.
func mapRelease(rec map[string]any) (domain.Release, error) {
	version, ok, err := firstString(rec, FieldVersion)
	if err != nil {
		return domain.Release{}, err
	}
	if !ok {
		return domain.Release{}, &MissingFieldError{Field: FieldVersion}
	}
	milestone, err := optString(rec, FieldTargetMilestone)
	if err != nil {
		return domain.Release{}, err
	}
	return domain.Release{Version: version, Milestone: milestone}, nil
}

// mapLinks converts an array of issue ids into issue locations, keeping order.
func (m *issueMapper) mapLinks(rec map[string]any, field string) ([]*url.URL, error) {
	ids, err := optSequence(rec, field)
	if err != nil {
		return nil, err
	}
	links := make([]*url.URL, 0, len(ids))
	for i, raw := range ids {
		id, err := asIdentifier(fmt.Sprintf("%s[%d]", field, i), raw)
		if err != nil {
			return nil, err
		}
		u, err := m.issueURL(id)
		if err != nil {
			return nil, err
		}
		links = append(links, u)
	}
	return links, nil
}

func mapTracking(rec map[string]any) (domain.IssueTracking, error) {
	estimated, err := asOptionalFloat(FieldEstimatedTime, rec[FieldEstimatedTime])
	if err != nil {
		return domain.IssueTracking{}, err
	}
	worked, err := asOptionalFloat(FieldHoursWorked, rec[FieldHoursWorked])
	if err != nil {
		return domain.IssueTracking{}, err
	}
	return domain.IssueTracking{Estimated: estimated, Worked: worked}, nil
}

// classifyFlags splits the remote flag list in two. Acknowledgement flags
// with a registered definition go into the stage; unregistered ones are
// dropped. Every other flag is appended as a stream, duplicates included.
func (m *issueMapper) classifyFlags(flags []any) (domain.Stage, []domain.Stream, error) {
	stage := domain.NewStage()
	streams := make([]domain.Stream, 0, len(flags))

	for i, raw := range flags {
		field := fmt.Sprintf("%s[%d]", FieldFlags, i)
		entry, err := asStruct(field, raw)
		if err != nil {
			return nil, nil, err
		}

		rawName, ok := entry[FieldFlagName]
		if !ok || rawName == nil {
			return nil, nil, &MissingFieldError{Field: field + "." + FieldFlagName}
		}
		name, err := asString(field+"."+FieldFlagName, rawName)
		if err != nil {
			return nil, nil, err
		}
		symbol, err := optString(entry, FieldFlagStatus)
		if err != nil {
			return nil, nil, err
		}
		status := domain.ParseFlagStatus(symbol)

		if isAckFlag(name) {
			flag, ok := m.flags.Lookup(name)
			if !ok {
				continue
			}
			stage.SetStatus(flag, status)
			continue
		}
		streams = append(streams, domain.Stream{Name: name, Status: status})
	}

	return stage, streams, nil
}
