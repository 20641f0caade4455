package domain

import "time"

const unknownDescription = "Unknown"

// Protocol selects the RPC binding used to talk to the tracker.
type Protocol string

// Available RPC protocols.
const (
	// ProtocolXMLRPC talks to <base>/xmlrpc.cgi.
	ProtocolXMLRPC Protocol = "xmlrpc"

	// ProtocolJSONRPC talks to <base>/jsonrpc.cgi.
	ProtocolJSONRPC Protocol = "jsonrpc"
)

// IsValid returns true if the protocol is recognised.
func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolXMLRPC, ProtocolJSONRPC:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Protocol) String() string {
	return string(p)
}

// Description returns a human-readable description of the protocol.
func (p Protocol) Description() string {
	switch p {
	case ProtocolXMLRPC:
		return "XML-RPC (xmlrpc.cgi)"
	case ProtocolJSONRPC:
		return "JSON-RPC (jsonrpc.cgi)"
	default:
		return unknownDescription
	}
}

// TrackerSettings holds the connection settings for a tracker instance.
type TrackerSettings struct {
	// URL is the tracker base URL, without a trailing slash.
	URL string

	// Login and Password are sent with every call when set.
	Login    string
	Password string

	// APIKey is sent with every call when set. Most instances need either
	// an API key or a login, not both.
	APIKey string

	// Protocol is the RPC binding.
	Protocol Protocol

	// Timeout caps each remote call.
	Timeout time.Duration

	// RateLimit is the maximum number of calls per second. Zero disables pacing.
	RateLimit float64

	// SkipTLSVerify disables certificate verification. Intended for test instances.
	SkipTLSVerify bool

	// FlagAliases maps additional remote acknowledgement flag names to flags,
	// e.g. "dev_ack" -> FlagDev.
	FlagAliases map[string]Flag
}

// DefaultTrackerSettings returns settings with defaults for everything but the URL.
func DefaultTrackerSettings() TrackerSettings {
	return TrackerSettings{
		Protocol:    ProtocolXMLRPC,
		Timeout:     30 * time.Second,
		FlagAliases: map[string]Flag{},
	}
}

// IsConfigured returns true if the tracker URL is set and the protocol is valid.
func (s TrackerSettings) IsConfigured() bool {
	return s.URL != "" && s.Protocol.IsValid()
}

// HasCredentials returns true if any credential is set.
func (s TrackerSettings) HasCredentials() bool {
	return s.APIKey != "" || s.Login != ""
}
