// Package bugzilla implements an issue tracker connector for Bugzilla.
//
// The connector talks to the tracker through a [driven.RemoteInvoker] and
// converts between the tracker's untyped RPC replies and the domain model.
//
// # Architecture
//
// The connector follows the driven port pattern defined in [driven.IssueTracker].
// It comprises the following components:
//
//   - Field registry: method names and field keys forming the wire contract
//   - Decoder: shape assertions applied before every structural access
//   - Issue mapper: Bug.get records to domain issues
//   - Comment mapper: Bug.comments replies to ordered comments
//   - Command builder: parameter sets for Bug.update and Bug.add_comment
//   - Client: the public operations composed from the above
//
// # Flags and Streams
//
// The tracker reports every flag of an issue in one list. Names containing
// "_ack" are acknowledgement flags and are resolved through a [FlagRegistry];
// unregistered acknowledgement flags are ignored. All other flags are review
// streams and are kept in tracker order without deduplication.
//
// # Links
//
// Issue, dependency and blocker locations are always derived as
// base + "/show_bug.cgi?id=" + id. URLs found in the payload are never used.
//
// # Errors
//
// Mapping failures abort the whole operation and are reported as
// [ShapeError], [EnumError] or [MissingFieldError]. A failed remote call is a
// [TransportError]. All of them match the corresponding domain sentinel
// with errors.Is. Nothing is retried.
package bugzilla
