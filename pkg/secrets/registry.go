package secrets

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// MinSecretLength is the minimum number of characters of every registered secret.
const MinSecretLength = 32

// Entry is a single secret with its rotation ordinal.
type Entry struct {
	ID    uint64
	Value string
}

// Registry is an immutable, ordered set of secrets.
// Entries are sorted by ID ascending; the entry with the highest ID is current.
type Registry struct {
	entries []Entry
	current int
}

// New builds a registry from explicit entries.
// Entries may be passed in any order.
func New(entries ...Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrNoSecrets
	}

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	for i, e := range sorted {
		if e.ID == 0 {
			return nil, ErrInvalidSecretID
		}
		if i > 0 && sorted[i-1].ID == e.ID {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSecretID, e.ID)
		}
		if len(e.Value) < MinSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, e.ID, len(e.Value), MinSecretLength)
		}
	}

	return &Registry{entries: sorted, current: len(sorted) - 1}, nil
}

// FromString builds a single-secret registry. The secret gets ID 1.
func FromString(secret string) (*Registry, error) {
	return New(Entry{ID: 1, Value: secret})
}

// FromMap builds a registry from an ordinal-to-secret mapping.
func FromMap(m map[uint64]string) (*Registry, error) {
	if len(m) == 0 {
		return nil, ErrNoSecrets
	}
	entries := make([]Entry, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		entries = append(entries, Entry{ID: id, Value: m[id]})
	}
	return New(entries...)
}

// Parse builds a registry from its environment representation.
//
// A value without a colon-prefixed ordinal is a single secret:
//
//	SIMPLEPASS_SECRET="a-very-long-random-secret-at-least-32-chars"
//
// A rotation set is a comma-separated list of id:secret pairs:
//
//	SIMPLEPASS_SECRET="1:old-secret-...,2:new-secret-..."
//
// Secrets containing a comma cannot be expressed in the list form.
func Parse(raw string) (*Registry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNoSecrets
	}

	parts := strings.Split(raw, ",")
	if len(parts) == 1 {
		if id, value, ok := splitEntry(parts[0]); ok {
			return New(Entry{ID: id, Value: value})
		}
		return FromString(raw)
	}

	entries := make([]Entry, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, value, ok := splitEntry(p)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in id:secret form", ErrInvalidSecretID, truncate(p))
		}
		entries = append(entries, Entry{ID: id, Value: value})
	}
	return New(entries...)
}

// Current returns the newest secret. It is the only secret used for sealing.
func (r *Registry) Current() Entry {
	return r.entries[r.current]
}

// All returns every registered secret in ascending ID order.
// The returned slice is a copy.
func (r *Registry) All() []Entry {
	return slices.Clone(r.entries)
}

// Len returns the number of registered secrets.
func (r *Registry) Len() int {
	return len(r.entries)
}

func splitEntry(s string) (uint64, string, bool) {
	idPart, value, found := strings.Cut(s, ":")
	if !found {
		return 0, "", false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return 0, "", false
	}
	return id, value, true
}

// truncate keeps secret material out of error messages.
func truncate(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
