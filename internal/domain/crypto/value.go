package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// ValueKind tags how a Value is turned into text.
type ValueKind int

const (
	// KindText values pass through unchanged
	KindText ValueKind = iota
	// KindStructured values are serialized as JSON
	KindStructured
	// KindOther values use their default textual representation
	KindOther
)

// String returns the kind name
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindStructured:
		return "structured"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is plaintext input whose textual form is decided once, when the Value is built.
type Value struct {
	kind ValueKind
	text string
	data any
}

// TextValue wraps a string
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// StructuredValue wraps a record or array-like value that is serialized as JSON
func StructuredValue(v any) Value {
	return Value{kind: KindStructured, data: v}
}

// OtherValue wraps a scalar rendered with its default textual representation
func OtherValue(v any) Value {
	return Value{kind: KindOther, data: v}
}

// ValueOf classifies v after following pointers: strings and byte slices are text,
// maps, slices, arrays, structs and nil are structured, everything else is other.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return TextValue(t)
	case []byte:
		return TextValue(string(t))
	case nil:
		return StructuredValue(nil)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return StructuredValue(v)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return TextValue(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return TextValue(string(rv.Bytes()))
		}
		return StructuredValue(v)
	case reflect.Map, reflect.Array, reflect.Struct:
		return StructuredValue(v)
	default:
		// scalars render by value, never by pointer address
		return OtherValue(rv.Interface())
	}
}

// Kind reports how the value is rendered
func (v Value) Kind() ValueKind {
	return v.kind
}

// Text renders the value as the string that gets encrypted.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindText:
		return v.text, nil
	case KindStructured:
		return marshalJSON(v.data)
	default:
		return fmt.Sprint(v.data), nil
	}
}

// marshalJSON produces compact JSON without HTML escaping; map keys come out sorted.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("failed to serialize value: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
