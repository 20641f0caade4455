package driven

import "context"

// RemoteInvoker issues a named remote procedure call against the tracker.
//
// params is encoded as the single struct argument of the call. The reply is
// returned untyped: nested structs arrive as map[string]any, arrays as []any,
// and numbers as whatever numeric type the binding produces.
//
// Implementations must be safe for concurrent use. Cancellation and timeouts
// are the implementation's concern; a failed call is returned as an error and
// never retried.
type RemoteInvoker interface {
	Invoke(ctx context.Context, method string, params map[string]any) (map[string]any, error)
}

// InvokerFunc adapts a function to the RemoteInvoker interface.
type InvokerFunc func(ctx context.Context, method string, params map[string]any) (map[string]any, error)

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, method string, params map[string]any) (map[string]any, error) {
	return f(ctx, method, params)
}
