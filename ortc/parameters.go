package ortc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParameterValue holds either an integer or a string RTP codec parameter
// value, mirroring the loose typing codec fmtp parameters have on the wire
// (e.g. `apt=96` vs `profile-level-id="42e01f"`).
type ParameterValue struct {
	isString bool
	num      int64
	str      string
}

// NumberParam constructs an integer-valued parameter.
func NumberParam(v int64) ParameterValue {
	return ParameterValue{num: v}
}

// StringParam constructs a string-valued parameter.
func StringParam(v string) ParameterValue {
	return ParameterValue{isString: true, str: v}
}

// IsString reports whether the value is string-typed.
func (v ParameterValue) IsString() bool { return v.isString }

// Int returns the numeric value. Only meaningful when IsString is false.
func (v ParameterValue) Int() int64 { return v.num }

// Str returns the string value. Only meaningful when IsString is true.
func (v ParameterValue) Str() string { return v.str }

// Equal reports whether two parameter values have the same type and content.
func (v ParameterValue) Equal(other ParameterValue) bool {
	if v.isString != other.isString {
		return false
	}
	if v.isString {
		return v.str == other.str
	}
	return v.num == other.num
}

// String renders the value for logging/debugging.
func (v ParameterValue) String() string {
	if v.isString {
		return v.str
	}
	return fmt.Sprintf("%d", v.num)
}

// MarshalJSON encodes the value as a JSON number or string.
func (v ParameterValue) MarshalJSON() ([]byte, error) {
	if v.isString {
		return json.Marshal(v.str)
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON decodes a JSON number or string into a ParameterValue.
func (v *ParameterValue) UnmarshalJSON(data []byte) error {
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = NumberParam(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*v = StringParam(str)
		return nil
	}
	return fmt.Errorf("ortc: invalid parameter value %s", data)
}

// Parameters is an insertion-ordered mapping from codec parameter name to
// value. Go's built-in map randomizes iteration order, which would make
// §4.2.e's merge and every downstream wire encoding nondeterministic; this
// type preserves the order values were Set in, the way RtpCodecParametersParameters
// does in the original implementation this package is based on.
type Parameters struct {
	keys   []string
	values map[string]ParameterValue
}

// NewParameters builds an empty ordered parameter map.
func NewParameters() Parameters {
	return Parameters{values: map[string]ParameterValue{}}
}

// ParametersFrom builds an ordered parameter map from a literal key/value
// sequence, preserving the order given.
func ParametersFrom(pairs ...struct {
	Key   string
	Value ParameterValue
}) Parameters {
	p := NewParameters()
	for _, kv := range pairs {
		p.Set(kv.Key, kv.Value)
	}
	return p
}

// Get returns the value for key and whether it was present.
func (p Parameters) Get(key string) (ParameterValue, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set inserts or overwrites key, appending to the iteration order only the
// first time key is seen.
func (p *Parameters) Set(key string, value ParameterValue) {
	if p.values == nil {
		p.values = map[string]ParameterValue{}
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Delete removes key if present.
func (p *Parameters) Delete(key string) {
	if _, exists := p.values[key]; !exists {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (p Parameters) Len() int { return len(p.keys) }

// Keys returns the parameter names in insertion order.
func (p Parameters) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Range calls fn for each entry in insertion order.
func (p Parameters) Range(fn func(key string, value ParameterValue)) {
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}

// Clone returns an independent deep copy.
func (p Parameters) Clone() Parameters {
	out := NewParameters()
	p.Range(func(k string, v ParameterValue) {
		out.Set(k, v)
	})
	return out
}

// Extend overlays other onto p: keys already present in p keep their
// position but take other's value on collision; new keys from other are
// appended in other's order. This implements the "supported extended by
// input, input overrides on collision" merge rule from §4.2.e.
func (p Parameters) Extend(other Parameters) Parameters {
	out := p.Clone()
	other.Range(func(k string, v ParameterValue) {
		out.Set(k, v)
	})
	return out
}

// Equal reports whether p and other have the same keys, in the same order,
// with equal values.
func (p Parameters) Equal(other Parameters) bool {
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, k := range p.keys {
		if other.keys[i] != k {
			return false
		}
		ov, ok := other.values[k]
		if !ok || !p.values[k].Equal(ov) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (p Parameters) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order as encountered by
// the decoder's token stream.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	*p = NewParameters()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ortc: expected object for parameters")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ortc: expected string key in parameters")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var val ParameterValue
		if err := val.UnmarshalJSON(raw); err != nil {
			return err
		}
		p.Set(key, val)
	}
	return nil
}

// Well-known parameter keys with semantic significance to the matcher and
// finalizer (§3).
const (
	ParamAPT                   = "apt"
	ParamPacketizationMode     = "packetization-mode"
	ParamProfileLevelID        = "profile-level-id"
	ParamProfileID             = "profile-id"
	ParamLevelAsymmetryAllowed = "level-asymmetry-allowed"
)

// intParam reads an integer parameter, returning def if absent.
func intParam(p Parameters, key string, def int64) int64 {
	v, ok := p.Get(key)
	if !ok || v.IsString() {
		return def
	}
	return v.Int()
}

// boolFlagParam reads a 0/1 integer parameter as a bool, defaulting to false.
func boolFlagParam(p Parameters, key string) bool {
	return intParam(p, key, 0) == 1
}

// stringParam reads a string parameter, returning ("", false) if absent or
// not string-typed.
func stringParam(p Parameters, key string) (string, bool) {
	v, ok := p.Get(key)
	if !ok || !v.IsString() {
		return "", false
	}
	return v.Str(), true
}
