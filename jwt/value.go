package jwt

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind specifies the JSON type held by a Value
type Kind uint8

// Value kinds
const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBool:    "bool",
	KindInteger: "integer",
	KindFloat:   "float",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

// String returns the name of the kind
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a decoded JSON value.
// The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	num  json.Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// NullValue returns JSON null
func NullValue() Value {
	return Value{}
}

// BoolValue returns a boolean Value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntValue returns an integer Value
func IntValue(i int64) Value {
	return Value{kind: KindInteger, i: i, num: json.Number(strconv.FormatInt(i, 10))}
}

// FloatValue returns a floating point Value
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f, num: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// StringValue returns a string Value
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ArrayValue returns an array Value
func ArrayValue(items ...Value) Value {
	return Value{kind: KindArray, arr: cloneValues(items)}
}

// ObjectValue returns an object Value
func ObjectValue(members map[string]Value) Value {
	return Value{kind: KindObject, obj: cloneMembers(members)}
}

// numberValue classifies a JSON number literal.
// Literals without fraction or exponent that fit in int64 are integers.
func numberValue(n json.Number) Value {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Value{kind: KindInteger, i: i, num: n}
		}
	}
	// out of range literals parse to ±Inf
	f, _ := strconv.ParseFloat(lit, 64)
	return Value{kind: KindFloat, f: f, num: n}
}

// valueOf converts the output of a json.Decoder with UseNumber
func valueOf(v any) (Value, error) {
	switch tv := v.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(tv), nil
	case json.Number:
		return numberValue(tv), nil
	case string:
		return StringValue(tv), nil
	case []any:
		arr := make([]Value, len(tv))
		for idx, item := range tv {
			val, err := valueOf(item)
			if err != nil {
				return Value{}, err
			}
			arr[idx] = val
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(tv))
		for k, item := range tv {
			val, err := valueOf(item)
			if err != nil {
				return Value{}, err
			}
			obj[k] = val
		}
		return Value{kind: KindObject, obj: obj}, nil
	default:
		return Value{}, errors.Errorf("unsupported JSON type: %T", v)
	}
}

// Kind returns the JSON type of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true for JSON null
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the string, if the value is a string
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool returns the boolean, if the value is a boolean
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt64 returns the integer, if the value is an integer.
// Floating point numbers are never narrowed, even when integral.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// AsInt is AsInt64 limited to the platform int size
func (v Value) AsInt() (int, bool) {
	i, ok := v.AsInt64()
	if !ok || i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

// AsFloat64 returns the number as float64.
// Integers are widened. Literals beyond float64 range return ±Inf,
// use AsNumber for the exact literal.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInteger:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsFloat32 returns the number as float32.
// Integers are widened.
func (v Value) AsFloat32() (float32, bool) {
	f, ok := v.AsFloat64()
	if !ok {
		return 0, false
	}
	return float32(f), true
}

// AsNumber returns the JSON literal of a number
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindInteger && v.kind != KindFloat {
		return "", false
	}
	return v.num, true
}

// AsArray returns a copy of the items, if the value is an array
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return cloneValues(v.arr), true
}

// AsObject returns a copy of the members, if the value is an object
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return cloneMembers(v.obj), true
}

// Interface returns the value as plain Go types:
// nil, bool, int64, float64, string, []any or map[string]any
func (v Value) Interface() any {
	return v.toInterface(false)
}

func (v Value) toInterface(useNumber bool) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInteger:
		if useNumber {
			return v.num
		}
		return v.i
	case KindFloat:
		if useNumber {
			return v.num
		}
		return v.f
	case KindString:
		return v.str
	case KindArray:
		arr := make([]any, len(v.arr))
		for idx, item := range v.arr {
			arr[idx] = item.toInterface(useNumber)
		}
		return arr
	case KindObject:
		obj := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			obj[k] = item.toInterface(useNumber)
		}
		return obj
	default:
		return nil
	}
}

// Equal returns true if both values hold the same JSON data
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for idx := range v.arr {
			if !v.arr[idx].Equal(o.arr[idx]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, item := range v.obj {
			other, ok := o.obj[k]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler.
// Numbers are written with their original literal, object keys are sorted.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) write(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInteger, KindFloat:
		// parsed literals out of float64 range are still valid JSON
		if !json.Valid([]byte(v.num)) {
			return errors.Errorf("unsupported number: %s", v.num)
		}
		buf.WriteString(v.num.String())
	case KindString:
		raw, err := json.Marshal(v.str)
		if err != nil {
			return errors.WithStack(err)
		}
		buf.Write(raw)
	case KindArray:
		buf.WriteByte('[')
		for idx, item := range v.arr {
			if idx > 0 {
				buf.WriteByte(',')
			}
			if err := item.write(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		return writeMembers(buf, v.obj)
	}
	return nil
}

func writeMembers(buf *bytes.Buffer, members map[string]Value) error {
	buf.WriteByte('{')
	for idx, k := range sortedKeys(members) {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return errors.WithStack(err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := members[k].write(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// String returns JSON representation of the value
func (v Value) String() string {
	raw, err := v.MarshalJSON()
	if err != nil {
		return v.num.String()
	}
	return string(raw)
}

func sortedKeys(members map[string]Value) []string {
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneValues(items []Value) []Value {
	if items == nil {
		return nil
	}
	res := make([]Value, len(items))
	for idx, item := range items {
		res[idx] = item.clone()
	}
	return res
}

func cloneMembers(members map[string]Value) map[string]Value {
	res := make(map[string]Value, len(members))
	for k, item := range members {
		res[k] = item.clone()
	}
	return res
}

func (v Value) clone() Value {
	switch v.kind {
	case KindArray:
		v.arr = cloneValues(v.arr)
	case KindObject:
		v.obj = cloneMembers(v.obj)
	}
	return v
}
