package bugzilla

import (
	"maps"
	"slices"
	"strings"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// defaultFlagNames maps the tracker's acknowledgement flag names to flags.
var defaultFlagNames = map[string]domain.Flag{
	"pm_ack":    domain.FlagPM,
	"devel_ack": domain.FlagDev,
	"qa_ack":    domain.FlagQE,
}

// FlagRegistry resolves remote acknowledgement flag names to flag definitions.
// It is read-only after construction and safe for concurrent use.
type FlagRegistry struct {
	byName map[string]domain.Flag
}

// NewFlagRegistry returns a registry holding the default flag names plus aliases.
// Aliases override defaults with the same name.
func NewFlagRegistry(aliases map[string]domain.Flag) *FlagRegistry {
	byName := maps.Clone(defaultFlagNames)
	for name, flag := range aliases {
		byName[strings.TrimSpace(name)] = flag
	}
	return &FlagRegistry{byName: byName}
}

// Lookup returns the flag registered for name.
func (r *FlagRegistry) Lookup(name string) (domain.Flag, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Names returns all registered remote names, sorted.
func (r *FlagRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.byName))
}

// isAckFlag reports whether a remote flag name denotes an acknowledgement
// flag. Every other flag is a review stream.
func isAckFlag(name string) bool {
	return strings.Contains(name, AckMarker)
}
