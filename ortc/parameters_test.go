package ortc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersPreservesInsertionOrder(t *testing.T) {
	p := NewParameters()
	p.Set("packetization-mode", NumberParam(1))
	p.Set("profile-level-id", StringParam("42e01f"))
	p.Set("level-asymmetry-allowed", NumberParam(1))

	assert.Equal(t, []string{"packetization-mode", "profile-level-id", "level-asymmetry-allowed"}, p.Keys())

	// Overwriting an existing key must not move it.
	p.Set("profile-level-id", StringParam("42e028"))
	assert.Equal(t, []string{"packetization-mode", "profile-level-id", "level-asymmetry-allowed"}, p.Keys())
	v, ok := p.Get("profile-level-id")
	require.True(t, ok)
	assert.Equal(t, "42e028", v.Str())
}

func TestParametersExtendOverridesAndAppends(t *testing.T) {
	base := NewParameters()
	base.Set("packetization-mode", NumberParam(0))
	base.Set("level-asymmetry-allowed", NumberParam(0))

	input := NewParameters()
	input.Set("level-asymmetry-allowed", NumberParam(1))
	input.Set("foo", StringParam("bar"))

	merged := base.Extend(input)

	assert.Equal(t, []string{"packetization-mode", "level-asymmetry-allowed", "foo"}, merged.Keys())
	v, _ := merged.Get("level-asymmetry-allowed")
	assert.Equal(t, int64(1), v.Int())
	foo, _ := merged.Get("foo")
	assert.Equal(t, "bar", foo.Str())
}

func TestParametersJSONRoundTrip(t *testing.T) {
	p := NewParameters()
	p.Set("apt", NumberParam(100))
	p.Set("profile-level-id", StringParam("42e01f"))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"apt":100,"profile-level-id":"42e01f"}`, string(data))

	var decoded Parameters
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, p.Equal(decoded))
	assert.Equal(t, []string{"apt", "profile-level-id"}, decoded.Keys())
}

func TestParameterValueEqual(t *testing.T) {
	assert.True(t, NumberParam(1).Equal(NumberParam(1)))
	assert.False(t, NumberParam(1).Equal(NumberParam(2)))
	assert.False(t, NumberParam(1).Equal(StringParam("1")))
	assert.True(t, StringParam("a").Equal(StringParam("a")))
}
