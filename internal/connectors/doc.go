// Package connectors holds the tracker connectors. Each connector turns the
// loosely typed replies of one tracker's remote API into domain types and
// implements driven.IssueTracker.
//
// Connectors never talk to the network themselves; they issue calls through
// a driven.RemoteInvoker supplied at construction.
package connectors
