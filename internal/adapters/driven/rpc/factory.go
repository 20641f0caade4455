package rpc

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
)

// Endpoint paths, relative to the tracker base URL.
const (
	XMLRPCPath  = "/xmlrpc.cgi"
	JSONRPCPath = "/jsonrpc.cgi"
)

// Endpoint returns the RPC endpoint of baseURL for protocol.
func Endpoint(baseURL string, protocol domain.Protocol) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return "", fmt.Errorf("%w: tracker url is not set", domain.ErrTrackerNotConfigured)
	}
	switch protocol {
	case domain.ProtocolXMLRPC:
		return base + XMLRPCPath, nil
	case domain.ProtocolJSONRPC:
		return base + JSONRPCPath, nil
	default:
		return "", fmt.Errorf("%w: unsupported protocol %q", domain.ErrInvalidInput, protocol)
	}
}

// New builds the invoker described by settings: the protocol binding over a
// pooled transport, throttled when a rate limit is set.
func New(settings domain.TrackerSettings) (driven.RemoteInvoker, error) {
	endpoint, err := Endpoint(settings.URL, settings.Protocol)
	if err != nil {
		return nil, err
	}

	transport := newHTTPTransport(settings.SkipTLSVerify)

	var invoker driven.RemoteInvoker
	switch settings.Protocol {
	case domain.ProtocolJSONRPC:
		invoker = NewJSONRPCInvoker(endpoint, &http.Client{
			Timeout:   settings.Timeout,
			Transport: transport,
		})
	default:
		invoker = NewXMLRPCInvoker(endpoint, transport, settings.Timeout)
	}

	return Throttle(invoker, settings.RateLimit), nil
}
