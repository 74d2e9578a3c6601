package event

import (
	"fmt"
	"reflect"
	"strings"

	"eventize/internal/casing"
)

// Normalize converts an arbitrary value into its Canonical form. Paths are
// tried in order:
//
//  1. Eventable values convert themselves.
//  2. Tagged values become {Category: Data}.
//  3. map[string]any passes through unchanged.
//  4. errors become {"error": {"name": <short type name>, "message": ...}}.
//  5. any named struct becomes {<snake type name>: <fields>}.
//
// Everything else fails with ErrUnsupportedShape. Normalize is pure and
// never returns a partial event.
func Normalize(value any) (Canonical, error) {
	switch v := value.(type) {
	case Eventable:
		return v.ToEvent(), nil
	case Tagged:
		return Canonical{v.Category: v.Data}, nil
	case Canonical:
		return v, nil
	case map[string]any:
		return Canonical(v), nil
	case error:
		return Canonical{"error": map[string]any{
			"name":    shortTypeName(reflect.TypeOf(value)),
			"message": v.Error(),
		}}, nil
	}
	return normalizeRecord(value)
}

// normalizeRecord handles the fallback path: a named struct with exported
// fields. The category key is the snake-cased type name; payload keys come
// from the json tag when present, else from snake-casing the field name.
func normalizeRecord(value any) (Canonical, error) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, value)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || rv.Type().Name() == "" {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, value)
	}

	rt := rv.Type()
	payload := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		payload[fieldKey(f)] = rv.Field(i).Interface()
	}
	return Canonical{casing.Snake(rt.Name()): payload}, nil
}

func fieldKey(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return casing.Snake(f.Name)
}

// shortTypeName returns the unqualified name of t, stripping pointer
// indirections and the package path.
func shortTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	// Unnamed types (interfaces with anonymous impls) only print fully.
	return t.String()
}
