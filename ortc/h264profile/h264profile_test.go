package h264profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSameProfile(t *testing.T) {
	a := "42e01f"
	b := "42e028"
	_, _, ok := IsSameProfile(&a, &b)
	assert.True(t, ok, "both constrained baseline, differing only in level")

	high := "640032"
	normA, normB, ok := IsSameProfile(&a, &high)
	assert.False(t, ok)
	assert.Equal(t, "42e01f", normA)
	assert.Equal(t, "640032", normB)
}

func TestIsSameProfileDefaultsEmptySide(t *testing.T) {
	normA, normB, ok := IsSameProfile(nil, nil)
	require.True(t, ok)
	assert.Equal(t, DefaultProfileLevelID, normA)
	assert.Equal(t, DefaultProfileLevelID, normB)
}

func TestGenerateProfileLevelIDForAnswerAsymmetryDisallowed(t *testing.T) {
	// level-asymmetry-allowed is false on at least one side: answer uses the
	// remote's level regardless of which is lower.
	result, err := GenerateProfileLevelIDForAnswer("42e01f", false, "42e028", false)
	require.NoError(t, err)
	assert.Equal(t, "42e028", result)
}

func TestGenerateProfileLevelIDForAnswerAsymmetryAllowed(t *testing.T) {
	result, err := GenerateProfileLevelIDForAnswer("42e01f", true, "42e028", true)
	require.NoError(t, err)
	// level 3.1 < level 4.0, the lower level wins when both sides allow it.
	assert.Equal(t, "42e01f", result)
}

func TestGenerateProfileLevelIDForAnswerProfileMismatch(t *testing.T) {
	_, err := GenerateProfileLevelIDForAnswer("42e01f", true, "640032", true)
	assert.Error(t, err)
}

func TestLevel1BRoundTrip(t *testing.T) {
	p, err := parse("42f00b")
	require.NoError(t, err)
	assert.Equal(t, ProfileConstrainedBaseline, p.profile)
	assert.Equal(t, Level1B, p.level)

	encoded, err := ProfileLevelIDToString(p.profile, p.level)
	require.NoError(t, err)
	assert.Equal(t, "42f00b", encoded)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := parse("not-hex")
	assert.Error(t, err)

	_, err = parse("4200")
	assert.Error(t, err)
}
