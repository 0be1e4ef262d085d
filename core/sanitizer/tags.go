package sanitizer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"upper":       ToUpper,
		"trim_lower":  TrimToLower,
		"trim_upper":  TrimToUpper,
		"single_line": SingleLine,
		"whitespace":  RemoveExtraWhitespace,
		"no_control":  RemoveControlChars,
		"no_null":     RemoveNullBytes,
		"escape_html": EscapeHTML,
		"strip_html":  StripHTML,

		// Composites for common field shapes.
		"text": func(s string) string {
			return RemoveExtraWhitespace(Trim(s))
		},
		"safe_text": func(s string) string {
			return EscapeHTML(RemoveExtraWhitespace(Trim(s)))
		},
	}
)

// RegisterSanitizer adds or replaces a named sanitizer usable in
// `sanitize` tags.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

var errNotStructPointer = errors.New("sanitizer: must pass a pointer to struct")

// SanitizeStruct walks the struct and applies the sanitizers named in each
// field's `sanitize` tag, in order. String fields, string pointers, string
// slices, and nested structs are handled; a tag of "-" skips the field.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return errNotStructPointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errNotStructPointer
	}
	sanitizeStructValue(rv)
	return nil
}

func sanitizeStructValue(rv reflect.Value) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag != "" {
				field.SetString(applyChain(field.String(), tag))
			}

		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch elem.Kind() {
			case reflect.String:
				if tag != "" {
					elem.SetString(applyChain(elem.String(), tag))
				}
			case reflect.Struct:
				sanitizeStructValue(elem)
			}

		case reflect.Struct:
			sanitizeStructValue(field)

		case reflect.Slice:
			if tag == "" || field.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := 0; j < field.Len(); j++ {
				elem := field.Index(j)
				elem.SetString(applyChain(elem.String(), tag))
			}
		}
	}
}

// applyChain runs the comma-separated sanitizer list over the value.
// Unknown names are ignored so adding tags never breaks at runtime.
func applyChain(value, tag string) string {
	result := value

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if after, ok := strings.CutPrefix(name, "max:"); ok {
			if maxLen, err := strconv.Atoi(after); err == nil && maxLen > 0 {
				result = MaxLength(result, maxLen)
			}
			continue
		}

		if fn, ok := registry[name]; ok {
			result = fn(result)
		}
	}
	return result
}
