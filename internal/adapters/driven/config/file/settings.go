package file

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
	"github.com/custodia-labs/bzbridge/internal/core/ports/driven"
)

// Config keys.
const (
	KeyURL           = "bugzilla.url"
	KeyLogin         = "bugzilla.login"
	KeyPassword      = "bugzilla.password"
	KeyAPIKey        = "bugzilla.api_key"
	KeyProtocol      = "bugzilla.protocol"
	KeyTimeout       = "bugzilla.timeout"
	KeyRateLimit     = "bugzilla.rate_limit"
	KeySkipTLSVerify = "bugzilla.skip_tls_verify"

	// FlagKeyPrefix prefixes flag aliases: flags.<remote name> = "PM"|"DEV"|"QE".
	FlagKeyPrefix = "flags."
)

// Environment variables that override the file.
const (
	EnvURL      = "BZBRIDGE_URL"
	EnvLogin    = "BZBRIDGE_LOGIN"
	EnvPassword = "BZBRIDGE_PASSWORD"
	EnvAPIKey   = "BZBRIDGE_API_KEY"
)

// envOverrides maps each environment variable to the key it replaces.
var envOverrides = map[string]string{
	EnvURL:      KeyURL,
	EnvLogin:    KeyLogin,
	EnvPassword: KeyPassword,
	EnvAPIKey:   KeyAPIKey,
}

// secretKeys are masked when configuration is displayed.
var secretKeys = map[string]bool{
	KeyPassword: true,
	KeyAPIKey:   true,
}

// IsSecret reports whether key holds a credential.
func IsSecret(key string) bool {
	return secretKeys[key]
}

// KnownKeys returns the fixed configuration keys, sorted.
func KnownKeys() []string {
	return []string{
		KeyAPIKey,
		KeyLogin,
		KeyPassword,
		KeyProtocol,
		KeyRateLimit,
		KeySkipTLSVerify,
		KeyTimeout,
		KeyURL,
	}
}

// LoadDotEnv loads environment variables from the given .env files, or from
// ./.env when none are given. Missing files are ignored; existing variables
// are never overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// LoadTrackerSettings reads tracker settings from store, then applies
// environment overrides. getenv is usually os.Getenv.
func LoadTrackerSettings(store driven.ConfigStore, getenv func(string) string) (domain.TrackerSettings, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	settings := domain.DefaultTrackerSettings()

	str := func(key string) string {
		for env, k := range envOverrides {
			if k == key {
				if v := strings.TrimSpace(getenv(env)); v != "" {
					return v
				}
			}
		}
		return store.GetString(key)
	}

	settings.URL = strings.TrimRight(strings.TrimSpace(str(KeyURL)), "/")
	settings.Login = str(KeyLogin)
	settings.Password = str(KeyPassword)
	settings.APIKey = str(KeyAPIKey)

	if p := store.GetString(KeyProtocol); p != "" {
		protocol := domain.Protocol(strings.ToLower(strings.TrimSpace(p)))
		if !protocol.IsValid() {
			return settings, fmt.Errorf("%w: %s must be %q or %q, got %q",
				domain.ErrInvalidInput, KeyProtocol, domain.ProtocolXMLRPC, domain.ProtocolJSONRPC, p)
		}
		settings.Protocol = protocol
	}

	if secs := store.GetInt(KeyTimeout); secs > 0 {
		settings.Timeout = time.Duration(secs) * time.Second
	}

	rate := store.GetFloat(KeyRateLimit)
	if rate < 0 {
		return settings, fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidInput, KeyRateLimit)
	}
	settings.RateLimit = rate
	settings.SkipTLSVerify = store.GetBool(KeySkipTLSVerify)

	for _, key := range store.Keys(FlagKeyPrefix) {
		name := strings.TrimPrefix(key, FlagKeyPrefix)
		flag, ok := domain.ParseFlag(store.GetString(key))
		if name == "" || !ok {
			return settings, fmt.Errorf("%w: %s must name one of %v", domain.ErrInvalidInput, key, domain.AllFlags())
		}
		settings.FlagAliases[name] = flag
	}

	return settings, nil
}

// ParseSetting converts a command-line value for key into the type stored
// in the file, validating it on the way.
func ParseSetting(key, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case key == KeyTimeout:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s must be a whole number of seconds", domain.ErrInvalidInput, key)
		}
		return n, nil
	case key == KeyRateLimit:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return f, nil
	case key == KeySkipTLSVerify:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case key == KeyProtocol:
		p := domain.Protocol(strings.ToLower(raw))
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: %s must be %q or %q", domain.ErrInvalidInput, key,
				domain.ProtocolXMLRPC, domain.ProtocolJSONRPC)
		}
		return p.String(), nil
	case key == KeyURL:
		return strings.TrimRight(raw, "/"), nil
	case strings.HasPrefix(key, FlagKeyPrefix):
		f, ok := domain.ParseFlag(raw)
		if !ok || key == FlagKeyPrefix {
			return nil, fmt.Errorf("%w: %s must name one of %v", domain.ErrInvalidInput, key, domain.AllFlags())
		}
		return f.String(), nil
	case slices.Contains(KnownKeys(), key):
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}
}

// Snapshot returns every stored key and value, with secrets masked.
func Snapshot(store driven.ConfigStore) map[string]any {
	out := make(map[string]any)
	for _, key := range store.Keys("") {
		val, _ := store.Get(key)
		if IsSecret(key) {
			val = "********"
		}
		out[key] = val
	}
	return out
}

// SortedKeys returns the keys of a snapshot in display order.
func SortedKeys(snapshot map[string]any) []string {
	return slices.Sorted(maps.Keys(snapshot))
}
