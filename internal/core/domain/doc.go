// Package domain defines the core issue-tracking entities for bzbridge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Issue: A tracked issue with release, links, time tracking and workflow state
//   - Stage: The acknowledgement flags (PM, DEV, QE) set on an issue
//   - Stream: A non-acknowledgement review flag attached to an issue
//   - Comment: A single comment posted on an issue
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
