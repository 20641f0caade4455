// Package rpc provides RemoteInvoker implementations for the tracker's RPC
// endpoints.
//
// Two bindings are available: XML-RPC (xmlrpc.cgi) through
// github.com/kolo/xmlrpc, and JSON-RPC (jsonrpc.cgi) over net/http. Both
// send the parameters as a single struct argument and return the reply
// untyped. [Throttle] wraps any invoker with a token bucket.
//
// Invokers never retry. Cancellation and the per-call timeout are honoured
// through the request context.
package rpc
