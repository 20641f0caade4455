// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - RemoteInvoker: Issues one named remote procedure call and returns the
//     untyped reply (XML-RPC or JSON-RPC binding)
//   - IssueTracker: Typed issue operations on top of a RemoteInvoker
//     (implemented by the bugzilla connector)
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
