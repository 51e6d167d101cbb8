package ortc

import (
	"errors"
	"testing"

	"github.com/pion/sfu-ortc/ortc/internal/ortctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProducerSimulcastWithRTX(t *testing.T) {
	caps := RtpCapabilitiesFinalized{
		Codecs: []RtpCodecCapabilityFinalized{
			{MimeType: MimeTypeH264, PreferredPayloadType: 101, ClockRate: 90000, Parameters: ortctest.H264Params("42e01f", 1)},
			{MimeType: MimeTypeRTX, PreferredPayloadType: 102, ClockRate: 90000, Parameters: ParametersFrom(struct {
				Key   string
				Value ParameterValue
			}{ParamAPT, NumberParam(101)})},
		},
	}

	ssrcA, ssrcB := uint32(1111), uint32(2222)
	producer := RtpParameters{
		Codecs: []RtpCodecParameters{
			{MimeType: MimeTypeH264, PayloadType: 111, ClockRate: 90000, Parameters: ortctest.H264Params("42e01f", 1)},
			{MimeType: MimeTypeRTX, PayloadType: 112, ClockRate: 90000, Parameters: ParametersFrom(struct {
				Key   string
				Value ParameterValue
			}{ParamAPT, NumberParam(111)})},
		},
		Encodings: []RtpEncodingParameters{
			{SSRC: &ssrcA},
			{SSRC: &ssrcB},
			{Rid: "high"},
		},
	}

	mapping, err := MapProducer(producer, caps)
	require.NoError(t, err)

	require.Len(t, mapping.Codecs, 2)
	assert.Equal(t, RtpMappingCodec{PayloadType: 111, MappedPayloadType: 101}, mapping.Codecs[0])
	assert.Equal(t, RtpMappingCodec{PayloadType: 112, MappedPayloadType: 102}, mapping.Codecs[1])

	require.Len(t, mapping.Encodings, 3)
	assert.Equal(t, ssrcA, *mapping.Encodings[0].SSRC)
	assert.Equal(t, ssrcB, *mapping.Encodings[1].SSRC)
	assert.Equal(t, "high", mapping.Encodings[2].Rid)
	assert.Nil(t, mapping.Encodings[2].SSRC)

	// §4.3 step 4: mapped_ssrc is base + i across encodings in order.
	base := mapping.Encodings[0].MappedSSRC
	assert.Equal(t, base, mapping.Encodings[0].MappedSSRC)
	assert.Equal(t, base+1, mapping.Encodings[1].MappedSSRC)
	assert.Equal(t, base+2, mapping.Encodings[2].MappedSSRC)
	assert.NotZero(t, base)
}

func TestMapProducerRejectsUnknownCodec(t *testing.T) {
	caps := RtpCapabilitiesFinalized{
		Codecs: []RtpCodecCapabilityFinalized{
			{MimeType: MimeTypeOpus, PreferredPayloadType: 100, ClockRate: 48000, Channels: u8(2)},
			{MimeType: MimeTypeH264, PreferredPayloadType: 101, ClockRate: 90000, Parameters: ortctest.H264Params("640032", 1)},
		},
	}

	producer := RtpParameters{
		Codecs: []RtpCodecParameters{
			{MimeType: MimeTypeVP8, PayloadType: 120, ClockRate: 90000},
		},
	}

	_, err := MapProducer(producer, caps)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedCodec))

	var mappingErr *RtpParametersMappingError
	require.True(t, errors.As(err, &mappingErr))
	assert.Equal(t, MimeTypeVP8, mappingErr.MimeType)
	assert.Equal(t, uint8(120), mappingErr.PayloadType)
}
