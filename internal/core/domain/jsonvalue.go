package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// JSONKind tags the variant held by a JSONValue.
type JSONKind uint8

const (
	JSONNull JSONKind = iota
	JSONBool
	JSONNumber
	JSONString
	JSONArray
	JSONObject
)

func (k JSONKind) String() string {
	switch k {
	case JSONBool:
		return "bool"
	case JSONNumber:
		return "number"
	case JSONString:
		return "string"
	case JSONArray:
		return "array"
	case JSONObject:
		return "object"
	default:
		return "null"
	}
}

// JSONValue is an arbitrary structured value (options, criteria, selected
// option, outcome metrics). Numbers keep their literal text so values round
// trip through jsonb without float rounding.
type JSONValue struct {
	Kind   JSONKind
	Bool   bool
	Number json.Number
	String string
	Array  []JSONValue
	Object map[string]JSONValue
}

// Null returns the JSON null value.
func Null() JSONValue { return JSONValue{Kind: JSONNull} }

// StringValue wraps s.
func StringValue(s string) JSONValue { return JSONValue{Kind: JSONString, String: s} }

// NumberValue wraps a numeric literal.
func NumberValue(n json.Number) JSONValue { return JSONValue{Kind: JSONNumber, Number: n} }

// BoolValue wraps b.
func BoolValue(b bool) JSONValue { return JSONValue{Kind: JSONBool, Bool: b} }

// ArrayValue wraps items.
func ArrayValue(items ...JSONValue) JSONValue {
	if items == nil {
		items = []JSONValue{}
	}
	return JSONValue{Kind: JSONArray, Array: items}
}

// ObjectValue wraps members.
func ObjectValue(members map[string]JSONValue) JSONValue {
	if members == nil {
		members = map[string]JSONValue{}
	}
	return JSONValue{Kind: JSONObject, Object: members}
}

// IsArray reports whether v is a sequence.
func (v JSONValue) IsArray() bool { return v.Kind == JSONArray }

// Len returns the element count of an array or object, 0 otherwise.
func (v JSONValue) Len() int {
	switch v.Kind {
	case JSONArray:
		return len(v.Array)
	case JSONObject:
		return len(v.Object)
	}
	return 0
}

// MarshalJSON encodes v. Object keys are emitted in sorted order.
func (v JSONValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v JSONValue) encode(buf *bytes.Buffer) error {
	switch v.Kind {
	case JSONNull:
		buf.WriteString("null")
	case JSONBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case JSONNumber:
		if v.Number == "" {
			buf.WriteString("0")
			return nil
		}
		if _, err := v.Number.Float64(); err != nil {
			return fmt.Errorf("json value: invalid number %q", v.Number)
		}
		buf.WriteString(v.Number.String())
	case JSONString:
		b, err := json.Marshal(v.String)
		if err != nil {
			return err
		}
		buf.Write(b)
	case JSONArray:
		buf.WriteByte('[')
		for i, item := range v.Array {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case JSONObject:
		keys := make([]string, 0, len(v.Object))
		for k := range v.Object {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := v.Object[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("json value: unknown kind %d", v.Kind)
	}
	return nil
}

// UnmarshalJSON decodes any JSON document into v.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = fromAny(raw)
	return nil
}

func fromAny(raw any) JSONValue {
	switch t := raw.(type) {
	case nil:
		return Null()
	case bool:
		return BoolValue(t)
	case json.Number:
		return NumberValue(t)
	case string:
		return StringValue(t)
	case []any:
		items := make([]JSONValue, 0, len(t))
		for _, item := range t {
			items = append(items, fromAny(item))
		}
		return ArrayValue(items...)
	case map[string]any:
		members := make(map[string]JSONValue, len(t))
		for k, item := range t {
			members[k] = fromAny(item)
		}
		return ObjectValue(members)
	default:
		return Null()
	}
}

// Value implements driver.Valuer so a JSONValue can be bound to a jsonb
// parameter.
func (v JSONValue) Value() (driver.Value, error) {
	b, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb columns. SQL NULL becomes JSON null.
func (v *JSONValue) Scan(src any) error {
	switch t := src.(type) {
	case nil:
		*v = Null()
		return nil
	case []byte:
		return v.UnmarshalJSON(t)
	case string:
		return v.UnmarshalJSON([]byte(t))
	default:
		return fmt.Errorf("json value: cannot scan %T", src)
	}
}
