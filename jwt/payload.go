package jwt

import (
	"bytes"
	"encoding/json"
)

// Payload provides read-only access to the application specific members
// of the JWT payload. Registered claims are never part of Payload.
//
// Every getter returns false when the key is missing or
// the stored value has a different type.
type Payload struct {
	raw map[string]Value
}

// NewPayload returns Payload with a copy of the members
func NewPayload(members map[string]Value) Payload {
	return Payload{raw: cloneMembers(members)}
}

// Value returns the raw value
func (p Payload) Value(k string) (Value, bool) {
	v, ok := p.raw[k]
	if !ok {
		return Value{}, false
	}
	return v.clone(), true
}

// Has returns true if the member exists
func (p Payload) Has(k string) bool {
	_, ok := p.raw[k]
	return ok
}

// String will return the named member as a string
func (p Payload) String(k string) (string, bool) {
	return p.raw[k].AsString()
}

// Bool will return the named member as bool
func (p Payload) Bool(k string) (bool, bool) {
	return p.raw[k].AsBool()
}

// Int will return the named member as int, only if it is a JSON integer
func (p Payload) Int(k string) (int, bool) {
	return p.raw[k].AsInt()
}

// Int64 will return the named member as int64, only if it is a JSON integer
func (p Payload) Int64(k string) (int64, bool) {
	return p.raw[k].AsInt64()
}

// Float64 will return the named member as float64
func (p Payload) Float64(k string) (float64, bool) {
	return p.raw[k].AsFloat64()
}

// Float32 will return the named member as float32
func (p Payload) Float32(k string) (float32, bool) {
	return p.raw[k].AsFloat32()
}

// Number will return the named member as json.Number
func (p Payload) Number(k string) (json.Number, bool) {
	return p.raw[k].AsNumber()
}

// Array will return the named member as a slice of values
func (p Payload) Array(k string) ([]Value, bool) {
	return p.raw[k].AsArray()
}

// Object will return the named member as a map of values
func (p Payload) Object(k string) (map[string]Value, bool) {
	return p.raw[k].AsObject()
}

// Len returns the number of members
func (p Payload) Len() int {
	return len(p.raw)
}

// Keys returns sorted member names
func (p Payload) Keys() []string {
	return sortedKeys(p.raw)
}

// Map returns a copy of the members
func (p Payload) Map() map[string]Value {
	return cloneMembers(p.raw)
}

// Marshal returns JSON encoded string
func (p Payload) Marshal() string {
	var buf bytes.Buffer
	if err := writeMembers(&buf, p.raw); err != nil {
		return "{}"
	}
	return buf.String()
}

// MarshalJSON implements json.Marshaler
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeMembers(&buf, p.raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
