package rpc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	netrpc "net/rpc"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bugReplyXML = `<?xml version="1.0"?>
<methodResponse><params><param><value><struct>
<member><name>bugs</name><value><array><data>
<value><struct>
<member><name>id</name><value><int>42</int></value></member>
<member><name>summary</name><value><string>Crash on start</string></value></member>
<member><name>estimated_time</name><value><double>2.5</double></value></member>
<member><name>is_open</name><value><boolean>1</boolean></value></member>
</struct></value>
</data></array></value></member>
</struct></value></param></params></methodResponse>`

const faultReplyXML = `<?xml version="1.0"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>101</int></value></member>
<member><name>faultString</name><value><string>Bug #42 does not exist.</string></value></member>
</struct></value></fault></methodResponse>`

// capturedBody holds the last request body seen by a test server.
type capturedBody struct {
	mu   sync.Mutex
	body string
}

func (c *capturedBody) set(b string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.body = b
}

func (c *capturedBody) get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.body
}

// xmlServer answers every request with reply and captures the request body.
func xmlServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedBody) {
	t.Helper()
	captured := &capturedBody{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		captured.set(string(raw))
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(ts.Close)
	return ts, captured
}

func TestXMLRPCInvoker_Invoke(t *testing.T) {
	ts, captured := xmlServer(t, http.StatusOK, bugReplyXML)

	inv := NewXMLRPCInvoker(ts.URL+XMLRPCPath, nil, 5*time.Second)
	reply, err := inv.Invoke(context.Background(), "Bug.get", map[string]any{
		"ids":        "42",
		"permissive": true,
	})
	require.NoError(t, err)

	body := captured.get()
	assert.Contains(t, body, "<methodName>Bug.get</methodName>")
	assert.Contains(t, body, "<name>ids</name><value><string>42</string></value>")
	assert.Contains(t, body, "<name>permissive</name><value><boolean>1</boolean></value>")

	bugs, ok := reply["bugs"].([]any)
	require.True(t, ok)
	require.Len(t, bugs, 1)

	bug, ok := bugs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(42), bug["id"])
	assert.Equal(t, "Crash on start", bug["summary"])
	assert.InDelta(t, 2.5, bug["estimated_time"], 1e-9)
	assert.Equal(t, true, bug["is_open"])
}

func TestXMLRPCInvoker_Fault(t *testing.T) {
	ts, _ := xmlServer(t, http.StatusOK, faultReplyXML)

	inv := NewXMLRPCInvoker(ts.URL, nil, 5*time.Second)
	_, err := inv.Invoke(context.Background(), "Bug.get", map[string]any{"ids": "42"})
	require.Error(t, err)

	var fault *FaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, 101, fault.Code)
	assert.Equal(t, "Bug #42 does not exist.", fault.Message)
	assert.True(t, IsFault(err))
}

func TestXMLRPCInvoker_BadStatus(t *testing.T) {
	ts, _ := xmlServer(t, http.StatusInternalServerError, "boom")

	inv := NewXMLRPCInvoker(ts.URL, nil, 5*time.Second)
	_, err := inv.Invoke(context.Background(), "Bug.get", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.False(t, IsFault(err))
}

func TestXMLRPCInvoker_NotAStruct(t *testing.T) {
	reply := `<?xml version="1.0"?><methodResponse><params><param>` +
		`<value><string>ok</string></value></param></params></methodResponse>`
	ts, _ := xmlServer(t, http.StatusOK, reply)

	inv := NewXMLRPCInvoker(ts.URL, nil, 5*time.Second)
	_, err := inv.Invoke(context.Background(), "Bug.update", nil)
	assert.ErrorIs(t, err, ErrUnexpectedReply)
}

func TestXMLRPCInvoker_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		ts.Close()
	})

	inv := NewXMLRPCInvoker(ts.URL, nil, 50*time.Millisecond)
	_, err := inv.Invoke(context.Background(), "Bug.get", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "unexpected error: %v", err)
}

func TestXMLRPCInvoker_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	inv := NewXMLRPCInvoker(url, nil, time.Second)
	_, err := inv.Invoke(context.Background(), "Bug.get", nil)
	assert.Error(t, err)
}

func TestFaultFrom(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, faultFrom(plain))

	err := faultFrom(netrpc.ServerError("Fault(32000): Invalid login"))
	var fault *FaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, 32000, fault.Code)
	assert.Equal(t, "Invalid login", fault.Message)

	other := netrpc.ServerError("request error: bad status code - 502")
	assert.Equal(t, other, faultFrom(other))
}

func TestAsReply(t *testing.T) {
	got, err := asReply(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = asReply(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, got)

	_, err = asReply([]any{})
	assert.ErrorIs(t, err, ErrUnexpectedReply)
}
