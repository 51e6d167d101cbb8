package ortc

import (
	"testing"

	"github.com/pion/sfu-ortc/ortc/internal/ortctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConsumableInvariants(t *testing.T) {
	fixture := ortctest.BuildSimulcastConsumable(t)
	consumable := fixture.Consumable

	assert.True(t, consumable.Rtcp.ReducedSize)
	assert.True(t, consumable.Rtcp.Mux)
	assert.Equal(t, "producer-cname", consumable.Rtcp.Cname)
	assert.Len(t, consumable.Encodings, 3)

	for _, enc := range consumable.Encodings {
		assert.Equal(t, "", enc.Rid)
		assert.Nil(t, enc.CodecPayloadType)
		assert.Nil(t, enc.Rtx)
		require.NotNil(t, enc.SSRC)
	}

	// §4.3 step 4: the consumable's own encodings carry the mapped SSRCs,
	// which are consecutive integers starting from a single drawn base.
	base := *consumable.Encodings[0].SSRC
	assert.Equal(t, base+1, *consumable.Encodings[1].SSRC)
	assert.Equal(t, base+2, *consumable.Encodings[2].SSRC)

	// Every video header extension the router supports is carried onto the
	// consumable (narrowing happens later, in the consumer projector).
	var uris []string
	for _, ext := range consumable.HeaderExtensions {
		uris = append(uris, ext.URI)
	}
	assert.Contains(t, uris, URIMid)
	assert.Contains(t, uris, URIVideoOrientation)
	assert.Contains(t, uris, URITimeOffset)
	assert.NotContains(t, uris, URIAudioLevel)
}

func TestProjectConsumerCollapsesSimulcast(t *testing.T) {
	fixture := ortctest.BuildSimulcastConsumable(t)
	consumable, caps := fixture.Consumable, fixture.RouterCaps

	h264Cap := caps.Codecs[0]
	rtxCap := caps.Codecs[1]

	// A well-behaved peer mirrors the router's own payload-type numbering in
	// the capabilities it reports back (the typical device.load() flow), so
	// its RTX apt back-reference lines up with the consumable's own PT space.
	peerH264PT := h264Cap.PreferredPayloadType
	peerRTXPT := rtxCap.PreferredPayloadType
	peerRTXParams := NewParameters()
	peerRTXParams.Set(ParamAPT, NumberParam(int64(peerH264PT)))

	peerCaps := RtpCapabilities{
		Codecs: []RtpCodecCapability{
			{MimeType: MimeTypeH264, ClockRate: 90000, PreferredPayloadType: &peerH264PT, Parameters: h264Cap.Parameters.Clone(), RTCPFeedback: supportedVideoFeedback()},
			{MimeType: MimeTypeRTX, ClockRate: 90000, PreferredPayloadType: &peerRTXPT, Parameters: peerRTXParams},
		},
		HeaderExtensions: []RtpHeaderExtensionCapability{
			{URI: URIMid, PreferredID: 1},
			{URI: URIVideoOrientation, PreferredID: 11},
			{URI: URITimeOffset, PreferredID: 12},
		},
	}

	consumer, err := ProjectConsumer(consumable, peerCaps)
	require.NoError(t, err)

	require.Len(t, consumer.Encodings, 1)
	assert.Equal(t, "S3T3", consumer.Encodings[0].ScalabilityMode)
	require.NotNil(t, consumer.Encodings[0].MaxBitrate)
	assert.Equal(t, uint64(333333), *consumer.Encodings[0].MaxBitrate)
	require.NotNil(t, consumer.Encodings[0].Rtx)

	require.Len(t, consumer.HeaderExtensions, 3)
	assert.Equal(t, URIMid, consumer.HeaderExtensions[0].URI)
	assert.Equal(t, URIVideoOrientation, consumer.HeaderExtensions[1].URI)
	assert.Equal(t, URITimeOffset, consumer.HeaderExtensions[2].URI)

	for _, codec := range consumer.Codecs {
		for _, fb := range codec.RTCPFeedback {
			assert.False(t, fb.isGoogRemb())
			assert.False(t, fb.isTransportCC())
		}
	}
}

func TestProjectConsumerCollapsesSimulcastMissingScalabilityMode(t *testing.T) {
	// §4.5 step 7: when the consumable's own encoding carries no
	// scalability mode, the projected temporal layer count is 0, not 1.
	fixture := ortctest.BuildSimulcastConsumable(t)
	consumable := fixture.Consumable
	consumable.Encodings[0].ScalabilityMode = ""

	peerCaps := RtpCapabilities{
		Codecs: []RtpCodecCapability{
			{MimeType: MimeTypeH264, ClockRate: 90000, Parameters: fixture.RouterCaps.Codecs[0].Parameters.Clone()},
		},
	}

	consumer, err := ProjectConsumer(consumable, peerCaps)
	require.NoError(t, err)
	require.Len(t, consumer.Encodings, 1)
	assert.Equal(t, "S3T0", consumer.Encodings[0].ScalabilityMode)
}

func TestProjectConsumerNoCompatibleCodecs(t *testing.T) {
	fixture := ortctest.BuildSimulcastConsumable(t)

	peerCaps := RtpCapabilities{
		Codecs: []RtpCodecCapability{
			{MimeType: MimeTypeVP8, ClockRate: 90000},
		},
	}

	_, err := ProjectConsumer(fixture.Consumable, peerCaps)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCompatibleMediaCodecs)
}

func TestProjectPipePreservesEncodingCountAndDropsExtensions(t *testing.T) {
	fixture := ortctest.BuildSimulcastConsumable(t)
	consumable := fixture.Consumable

	pipeWithRTX := ProjectPipe(consumable, true)
	assert.Len(t, pipeWithRTX.Encodings, 3)
	for _, enc := range pipeWithRTX.Encodings {
		require.NotNil(t, enc.Rtx)
	}
	rtxCount := 0
	for _, codec := range pipeWithRTX.Codecs {
		if codec.IsRTX() {
			rtxCount++
		}
	}
	assert.Equal(t, 1, rtxCount)

	for _, ext := range pipeWithRTX.HeaderExtensions {
		assert.NotEqual(t, URIMid, ext.URI)
		assert.NotEqual(t, URIAbsSendTime, ext.URI)
		assert.NotEqual(t, URITransportWideCCDraft1, ext.URI)
	}

	pipeWithoutRTX := ProjectPipe(consumable, false)
	for _, codec := range pipeWithoutRTX.Codecs {
		assert.False(t, codec.IsRTX())
	}
	for _, enc := range pipeWithoutRTX.Encodings {
		assert.Nil(t, enc.Rtx)
	}
}
