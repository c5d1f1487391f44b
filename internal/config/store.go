// Package config provides the validated option store that review-tool
// options pass through before they reach the command line.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/richhaase/grib/internal/terminal"
)

// ErrUnsupportedSource is returned by New for source types it cannot read.
var ErrUnsupportedSource = errors.New("unsupported option source")

// Store is a flat option map that only accepts known keys and keeps flag
// values boolean.
type Store struct {
	name     string
	values   map[string]any
	usable   bool
	warnings []string
	logger   *terminal.Logger
}

// New builds a store named name from src. Supported sources are nil,
// map[string]any, map[string]string and *Store. Invalid entries are logged
// and dropped; an unsupported source is logged and yields an unusable store
// together with ErrUnsupportedSource.
func New(name string, src any, logger *terminal.Logger) (*Store, error) {
	if logger == nil {
		logger = terminal.Nop()
	}
	s := &Store{name: name, values: make(map[string]any), usable: true, logger: logger}

	switch v := src.(type) {
	case nil:
	case map[string]any:
		for _, key := range sortedKeys(v) {
			s.Set(key, v[key])
		}
	case map[string]string:
		for _, key := range sortedKeys(v) {
			s.Set(key, v[key])
		}
	case *Store:
		if v != nil {
			for _, key := range v.Keys() {
				s.Set(key, v.values[key])
			}
		}
	default:
		s.usable = false
		logger.Logf(terminal.StyleError, "invalid option source type %T for %s", src, name)
		return s, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}

	return s, nil
}

// Set validates and stores value under key. It reports whether the store
// changed.
func (s *Store) Set(key string, value any) bool {
	if !s.usable {
		return false
	}
	if !IsKnownKey(key) {
		msg := fmt.Sprintf("Invalid option: %s with value %v in %s", key, value, s.name)
		if suggestion := Suggest(key); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		s.warn(msg)
		return false
	}
	if IsFlagKey(key) {
		if _, ok := value.(bool); !ok {
			coerced := truthy(value)
			s.warn(fmt.Sprintf("Invalid boolean value: %v for flag: %s in %s. using %t instead",
				value, key, s.name, coerced))
			value = coerced
		}
	}
	s.values[key] = value
	return true
}

func (s *Store) warn(msg string) {
	s.warnings = append(s.warnings, msg)
	s.logger.Log(msg, terminal.StyleWarning)
}

// Warnings returns the warnings logged while filling the store.
func (s *Store) Warnings() []string {
	return slices.Clone(s.warnings)
}

// truthy treats nil as false and every other value as true.
func truthy(v any) bool {
	return v != nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Bool returns the flag stored under key, false when unset.
func (s *Store) Bool(key string) bool {
	b, _ := s.values[key].(bool)
	return b
}

// Name returns the store name used in log messages.
func (s *Store) Name() string { return s.name }

// Usable reports whether the store was built from a supported source.
func (s *Store) Usable() bool { return s.usable }

// Len returns the number of stored options.
func (s *Store) Len() int { return len(s.values) }

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	return sortedKeys(s.values)
}

// Map returns a copy of the stored options.
func (s *Store) Map() map[string]any {
	return maps.Clone(s.values)
}

// WithDefaults returns a new store holding s layered over defaults: keys set
// in s win, missing keys fall back to defaults.
func (s *Store) WithDefaults(defaults *Store) *Store {
	merged := &Store{name: s.name, values: make(map[string]any), usable: s.usable, logger: s.logger}
	if defaults != nil {
		maps.Copy(merged.values, defaults.values)
	}
	maps.Copy(merged.values, s.values)
	return merged
}

// Args renders the options as review-tool arguments in key order. Param
// keys become --key=value, true flags become --key and false flags are
// omitted. Keys listed in skip are left out.
func (s *Store) Args(skip ...string) []string {
	var args []string
	for _, key := range s.Keys() {
		if slices.Contains(skip, key) {
			continue
		}
		if IsFlagKey(key) {
			if s.Bool(key) {
				args = append(args, "--"+key)
			}
			continue
		}
		args = append(args, fmt.Sprintf("--%s=%s", key, formatValue(s.values[key])))
	}
	return args
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	var keys []string
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
