package ortc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizeAllocatesDynamicPayloadTypes(t *testing.T) {
	preferredVP8 := uint8(125)

	h264Params := NewParameters()
	h264Params.Set(ParamProfileLevelID, StringParam("42e01f"))
	h264Params.Set(ParamLevelAsymmetryAllowed, NumberParam(1))
	h264Params.Set("foo", StringParam("bar"))

	input := []RtpCodecCapability{
		{MimeType: MimeTypeOpus, ClockRate: 48000, Channels: u8(2)},
		{MimeType: MimeTypeVP8, ClockRate: 90000, PreferredPayloadType: &preferredVP8},
		{MimeType: MimeTypeH264, ClockRate: 90000, Parameters: h264Params},
	}

	caps, err := Finalize(input)
	require.NoError(t, err)
	require.Len(t, caps.Codecs, 5)

	opus, vp8, vp8rtx, h264, h264rtx := caps.Codecs[0], caps.Codecs[1], caps.Codecs[2], caps.Codecs[3], caps.Codecs[4]

	assert.Equal(t, uint8(100), opus.PreferredPayloadType)
	assert.Equal(t, []RTCPFeedback{{Type: "transport-cc"}}, opus.RTCPFeedback)

	assert.Equal(t, uint8(125), vp8.PreferredPayloadType)
	assert.True(t, vp8rtx.IsRTX())
	assert.Equal(t, uint8(101), vp8rtx.PreferredPayloadType)
	aptVP8, _ := vp8rtx.Parameters.Get(ParamAPT)
	assert.Equal(t, int64(125), aptVP8.Int())

	assert.Equal(t, uint8(102), h264.PreferredPayloadType)
	assert.Equal(t, supportedVideoFeedback(), h264.RTCPFeedback)
	assert.Equal(t,
		[]string{ParamPacketizationMode, ParamProfileLevelID, ParamLevelAsymmetryAllowed, "foo"},
		h264.Parameters.Keys(),
	)
	pm, _ := h264.Parameters.Get(ParamPacketizationMode)
	assert.Equal(t, int64(0), pm.Int())

	assert.True(t, h264rtx.IsRTX())
	assert.Equal(t, uint8(103), h264rtx.PreferredPayloadType)
	aptH264, _ := h264rtx.Parameters.Get(ParamAPT)
	assert.Equal(t, int64(102), aptH264.Int())
}

func TestFinalizeRejectsUnknownCodec(t *testing.T) {
	_, err := Finalize([]RtpCodecCapability{
		{MimeType: MimeTypeOpus, ClockRate: 48000, Channels: u8(1)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedCodec))
}

func TestFinalizeExhaustsDynamicPayloadTypes(t *testing.T) {
	var input []RtpCodecCapability
	for i := 0; i < 100; i++ {
		input = append(input, RtpCodecCapability{MimeType: MimeTypeOpus, ClockRate: 48000, Channels: u8(2)})
	}

	_, err := Finalize(input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCannotAllocate))
}
