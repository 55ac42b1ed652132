package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is a parsed JSON value. Objects keep their keys in document order;
// a repeated key keeps its first position and its last value.
type Value struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	items  []Value
	keys   []string
	fields map[string]Value
}

// ParseDocument parses data as a single JSON value.
func ParseDocument(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}

	tok, err := dec.Token()
	if err == io.EOF {
		return v, nil
	}
	if err != nil {
		return Value{}, err
	}
	return Value{}, fmt.Errorf("unexpected %v after top-level value", tok)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, fmt.Errorf("unexpected end of JSON input")
		}
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Value{kind: KindNull}, nil
	case bool:
		return Value{kind: KindBool, b: t}, nil
	case json.Number:
		return Value{kind: KindNumber, num: t}, nil
	case string:
		return Value{kind: KindString, str: t}, nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected %q", rune(t))
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Value{kind: KindObject, fields: make(map[string]Value)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if _, seen := obj.fields[key]; !seen {
			obj.keys = append(obj.keys, key)
		}
		obj.fields[key] = val
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Value{kind: KindArray, items: []Value{}}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		arr.items = append(arr.items, val)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return arr, nil
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Lookup walks nested objects along path. It reports false as soon as a
// segment is missing or the current value is not an object. An empty path
// returns v itself.
func (v Value) Lookup(path ...string) (Value, bool) {
	cur := v
	for _, key := range path {
		if cur.kind != KindObject {
			return Value{}, false
		}
		next, ok := cur.fields[key]
		if !ok {
			return Value{}, false
		}
		cur = next
	}
	return cur, true
}

// Has reports whether path resolves to a value, including an explicit null.
func (v Value) Has(path ...string) bool {
	_, ok := v.Lookup(path...)
	return ok
}

// Truthy applies loose truthiness: null, false, 0 and "" are false,
// everything else (including empty arrays and objects) is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		f, err := strconv.ParseFloat(v.num.String(), 64)
		if err != nil {
			return true
		}
		return f != 0
	case KindString:
		return v.str != ""
	default:
		return true
	}
}

// Bool reports whether the value at path exists and is truthy.
func (v Value) Bool(path ...string) bool {
	x, ok := v.Lookup(path...)
	return ok && x.Truthy()
}

// Array returns the elements at path if it holds an array.
func (v Value) Array(path ...string) ([]Value, bool) {
	x, ok := v.Lookup(path...)
	if !ok || x.kind != KindArray {
		return nil, false
	}
	return x.items, true
}

// StringAt returns the string at path if it holds a string.
func (v Value) StringAt(path ...string) (string, bool) {
	x, ok := v.Lookup(path...)
	if !ok || x.kind != KindString {
		return "", false
	}
	return x.str, true
}

// Contains reports whether v is an array holding the string s.
func (v Value) Contains(s string) bool {
	if v.kind != KindArray {
		return false
	}
	for _, item := range v.items {
		if item.kind == KindString && item.str == s {
			return true
		}
	}
	return false
}

// Len returns the number of elements of an array, keys of an object or
// bytes of a string. Other kinds have length zero.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.keys)
	case KindString:
		return len(v.str)
	default:
		return 0
	}
}

// Keys returns the object's keys in document order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Text renders scalars the way they read in prose: strings without quotes,
// numbers and booleans verbatim. Arrays and objects fall back to compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.String()
	}
}

// String returns v as compact JSON.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

// MarshalJSON encodes v, keeping object key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(v.num.String())
	case KindString:
		data, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(data)
			buf.WriteByte(':')
			if err := v.fields[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
