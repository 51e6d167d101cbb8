// Package ortctest holds small fixture builders shared by the ortc package's
// table tests, kept out of the individual _test.go files so scenarios that
// span multiple stages (finalize -> map -> build consumable) aren't
// duplicated per test file.
package ortctest

import (
	"testing"

	"github.com/pion/sfu-ortc/ortc"
	"github.com/stretchr/testify/require"
)

// H264Params builds an H.264 fmtp parameter set with the given
// profile-level-id and packetization-mode, the shape every H.264 fixture in
// the table tests needs.
func H264Params(profileLevelID string, packetizationMode int64) ortc.Parameters {
	p := ortc.NewParameters()
	p.Set(ortc.ParamPacketizationMode, ortc.NumberParam(packetizationMode))
	p.Set(ortc.ParamProfileLevelID, ortc.StringParam(profileLevelID))
	return p
}

// SimulcastConsumableFixture is the result of building a 3-encoding,
// H.264+RTX simulcast producer all the way through to consumable
// parameters, along with the router capabilities used to build it.
type SimulcastConsumableFixture struct {
	Consumable ortc.RtpParameters
	RouterCaps ortc.RtpCapabilitiesFinalized
}

// BuildSimulcastConsumable finalizes a single-H.264-codec router, maps a
// 3-layer simulcast producer onto it, and builds the resulting consumable
// parameters — the common starting point for consumer/pipe projection
// tests.
func BuildSimulcastConsumable(t *testing.T) SimulcastConsumableFixture {
	t.Helper()

	caps, err := ortc.Finalize([]ortc.RtpCodecCapability{
		{MimeType: ortc.MimeTypeH264, ClockRate: 90000},
	})
	require.NoError(t, err)
	require.Len(t, caps.Codecs, 2)
	h264PT := caps.Codecs[0].PreferredPayloadType

	rtxApt, _ := caps.Codecs[1].Parameters.Get(ortc.ParamAPT)
	require.Equal(t, int64(h264PT), rtxApt.Int())

	rtxParams := ortc.NewParameters()
	rtxParams.Set(ortc.ParamAPT, ortc.NumberParam(int64(h264PT)))

	ssrc1, ssrc2, ssrc3 := uint32(11), uint32(22), uint32(33)
	maxA, maxB, maxC := uint64(111111), uint64(222222), uint64(333333)

	producer := ortc.RtpParameters{
		Mid: "0",
		Codecs: []ortc.RtpCodecParameters{
			{MimeType: ortc.MimeTypeH264, PayloadType: h264PT, ClockRate: 90000},
			{MimeType: ortc.MimeTypeRTX, PayloadType: caps.Codecs[1].PreferredPayloadType, ClockRate: 90000, Parameters: rtxParams},
		},
		Encodings: []ortc.RtpEncodingParameters{
			{SSRC: &ssrc1, ScalabilityMode: "L1T3", MaxBitrate: &maxA},
			{SSRC: &ssrc2, ScalabilityMode: "L1T3", MaxBitrate: &maxB},
			{SSRC: &ssrc3, ScalabilityMode: "L1T3", MaxBitrate: &maxC},
		},
		Rtcp: ortc.RtcpParameters{Cname: "producer-cname"},
	}

	mapping, err := ortc.MapProducer(producer, caps)
	require.NoError(t, err)
	require.Len(t, mapping.Encodings, 3)

	consumable := ortc.BuildConsumable(ortc.MediaKindVideo, producer, caps, mapping)
	return SimulcastConsumableFixture{Consumable: consumable, RouterCaps: caps}
}
