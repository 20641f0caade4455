package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	netrpc "net/rpc"
	"strconv"
	"strings"
	"time"

	"github.com/kolo/xmlrpc"

	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
	"github.com/custodia-labs/bzbridge/internal/logger"
)

// Ensure XMLRPCInvoker implements the interface.
var _ driven.RemoteInvoker = (*XMLRPCInvoker)(nil)

// XMLRPCInvoker calls methods on an XML-RPC endpoint.
// A fresh client is created per call, so the invoker is safe for concurrent use.
type XMLRPCInvoker struct {
	endpoint  string
	transport http.RoundTripper
	timeout   time.Duration
}

// NewXMLRPCInvoker creates an invoker for endpoint. A nil transport uses
// http.DefaultTransport; a zero timeout disables the per-call cap.
func NewXMLRPCInvoker(endpoint string, transport http.RoundTripper, timeout time.Duration) *XMLRPCInvoker {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &XMLRPCInvoker{
		endpoint:  endpoint,
		transport: transport,
		timeout:   timeout,
	}
}

// Invoke sends params as the single struct argument of method.
func (x *XMLRPCInvoker) Invoke(ctx context.Context, method string, params map[string]any) (map[string]any, error) {
	ctx, cancel := withTimeout(ctx, x.timeout)
	defer cancel()

	logger.Log(slog.LevelDebug, "xmlrpc call", "method", method, "endpoint", x.endpoint)

	client, err := xmlrpc.NewClient(x.endpoint, &contextTransport{ctx: ctx, next: x.transport})
	if err != nil {
		return nil, fmt.Errorf("create xmlrpc client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	var reply any
	if err := client.Call(method, params, &reply); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("xmlrpc %s: %w", method, ctxErr)
		}
		return nil, fmt.Errorf("xmlrpc %s: %w", method, faultFrom(err))
	}

	return asReply(reply)
}

// faultFrom recovers a FaultError from the message the XML-RPC client
// flattens faults into, "Fault(<code>): <message>". Other errors are
// returned unchanged.
func faultFrom(err error) error {
	var serverErr netrpc.ServerError
	if !errors.As(err, &serverErr) {
		return err
	}
	rest, ok := strings.CutPrefix(string(serverErr), "Fault(")
	if !ok {
		return err
	}
	rawCode, msg, ok := strings.Cut(rest, "): ")
	if !ok {
		return err
	}
	code, convErr := strconv.Atoi(rawCode)
	if convErr != nil {
		return err
	}
	return &FaultError{Code: code, Message: msg}
}

// asReply re-types a decoded reply as a struct. An empty reply becomes an
// empty struct.
func asReply(reply any) (map[string]any, error) {
	switch r := reply.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return r, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnexpectedReply, reply)
	}
}
