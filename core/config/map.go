package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// reservedPrefix marks toolkit-internal variables that never appear in the
// dynamic map, regardless of underscores in their names.
const reservedPrefix = "VOILA_"

// Map is an immutable nested configuration tree built from the environment.
// Values are plain Go types: bool, int, float64, string, or nested
// map[string]any branches. Lookups return deep copies, so callers can never
// mutate the tree through a returned value.
type Map struct {
	values map[string]any
}

// smartDefaults maps conventional process variables into the app section,
// so a plain PORT/HOST deployment resolves without the double-underscore
// form. Explicit APP__* variables override these.
var smartDefaults = map[string]string{
	"PORT": "port",
	"HOST": "host",
}

// BuildFromEnv constructs a Map from every environment variable whose name
// contains a double underscore. The name is lowercased and split on "__" to
// form the path; single underscores within a segment are preserved, so
// DATABASE__MAX_CONNECTIONS becomes "database.max_connections".
//
// Variables without a double underscore are treated as process-level and
// skipped, except the well-known smart defaults (PORT, HOST), which seed
// app.port and app.host with the usual coercion. VOILA_-prefixed variables
// are reserved for module settings and never enter the map. When a path is
// both a leaf and a branch, the later write wins silently.
func BuildFromEnv() *Map {
	loadDotEnv()
	return buildFrom(os.Environ())
}

func buildFrom(environ []string) *Map {
	values := make(map[string]any)

	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			env[name] = value
		}
	}

	// Smart defaults go in first so explicit APP__* paths overwrite them.
	for name, field := range smartDefaults {
		if value, ok := env[name]; ok && value != "" {
			setPath(values, []string{"app", field}, coerce(value))
		}
	}

	for name, value := range env {
		if strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		if !strings.Contains(name, "__") {
			continue
		}

		path := strings.Split(strings.ToLower(name), "__")
		setPath(values, path, coerce(value))
	}

	return &Map{values: values}
}

// setPath writes v at the given path, creating intermediate branches as
// needed. Existing leaves on the way are overwritten with branches.
func setPath(m map[string]any, path []string, v any) {
	for _, seg := range path[:len(path)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[seg] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}

// coerce converts an environment value into a typed Go value. Booleans are
// the literal strings "true" and "false". Numeric strings become numbers
// unless they carry a leading zero ("0300" stays a string, "0" is the
// number zero). Everything else remains a string.
func coerce(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}

	if hasLeadingZero(s) {
		return s
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func hasLeadingZero(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	return len(digits) > 1 && digits[0] == '0' && digits[1] != '.'
}

// Get returns the value at the dot-separated path, or the optional default
// when the path is absent. Branch lookups return a deep copy of the subtree.
func (m *Map) Get(path string, def ...any) any {
	v, ok := m.lookup(path)
	if !ok {
		if len(def) > 0 {
			return def[0]
		}
		return nil
	}
	return deepCopy(v)
}

// GetRequired returns the value at path, or an error exactly when Get would
// return nil without a default.
func (m *Map) GetRequired(path string) (any, error) {
	v, ok := m.lookup(path)
	if !ok {
		return nil, &MissingKeyError{Path: path}
	}
	return deepCopy(v), nil
}

// Has reports whether the path resolves to a value or branch.
func (m *Map) Has(path string) bool {
	_, ok := m.lookup(path)
	return ok
}

// Keys returns the sorted child key names under path. An empty path lists
// the top-level sections. Returns nil when the path is not a branch.
func (m *Map) Keys(path string) []string {
	node := any(m.values)
	if path != "" {
		v, ok := m.lookup(path)
		if !ok {
			return nil
		}
		node = v
	}

	branch, ok := node.(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(branch))
	for k := range branch {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Map) lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var node any = m.values
	for _, seg := range strings.Split(path, ".") {
		branch, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = branch[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// deepCopy clones branches so the internal tree stays immutable from the
// caller's point of view. Scalars are returned as-is.
func deepCopy(v any) any {
	branch, ok := v.(map[string]any)
	if !ok {
		return v
	}
	clone := make(map[string]any, len(branch))
	for k, child := range branch {
		clone[k] = deepCopy(child)
	}
	return clone
}

// MissingKeyError reports a GetRequired lookup that found nothing.
type MissingKeyError struct {
	Path string
}

func (e *MissingKeyError) Error() string {
	return "config: required key " + strconv.Quote(e.Path) + " is not set"
}
