package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
	"github.com/custodia-labs/bzbridge/internal/logger"
)

// Ensure JSONRPCInvoker implements the interface.
var _ driven.RemoteInvoker = (*JSONRPCInvoker)(nil)

// maxErrorBody caps how much of a failed response is kept in a StatusError.
const maxErrorBody = 2048

// JSONRPCInvoker calls methods on a JSON-RPC endpoint.
type JSONRPCInvoker struct {
	endpoint string
	client   *http.Client
}

// jsonRequest is the request envelope. Params always holds exactly one struct.
type jsonRequest struct {
	Method string           `json:"method"`
	Params []map[string]any `json:"params"`
	ID     string           `json:"id"`
}

// jsonResponse is the reply envelope.
type jsonResponse struct {
	Result map[string]any `json:"result"`
	Error  *jsonError     `json:"error"`
	ID     any            `json:"id"`
}

type jsonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewJSONRPCInvoker creates an invoker for endpoint. A nil client uses
// http.DefaultClient.
func NewJSONRPCInvoker(endpoint string, client *http.Client) *JSONRPCInvoker {
	if client == nil {
		client = http.DefaultClient
	}
	return &JSONRPCInvoker{endpoint: endpoint, client: client}
}

// Invoke posts a single-call envelope and decodes the result. Numbers in the
// result are kept as json.Number.
func (j *JSONRPCInvoker) Invoke(ctx context.Context, method string, params map[string]any) (map[string]any, error) {
	if params == nil {
		params = map[string]any{}
	}
	id := uuid.NewString()
	logger.Log(slog.LevelDebug, "jsonrpc call", "method", method, "id", id)

	body, err := json.Marshal(jsonRequest{
		Method: method,
		Params: []map[string]any{params},
		ID:     id,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsonrpc %s: %w", method, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("jsonrpc %s: %w", method, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		})
	}

	var envelope jsonResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("jsonrpc %s: decode response: %w", method, err)
	}

	if envelope.Error != nil {
		return nil, fmt.Errorf("jsonrpc %s: %w", method, &FaultError{
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
		})
	}
	if envelope.ID != nil && fmt.Sprint(envelope.ID) != id {
		logger.Warn("jsonrpc %s: response id %v does not match request id %s", method, envelope.ID, id)
	}

	if envelope.Result == nil {
		return map[string]any{}, nil
	}
	return envelope.Result, nil
}
