package ortc

// RtpHeaderExtensionDirection is the negotiated direction of a header
// extension (§3).
type RtpHeaderExtensionDirection int

const (
	DirectionSendRecv RtpHeaderExtensionDirection = iota
	DirectionSendOnly
	DirectionRecvOnly
	DirectionInactive
)

// Well-known header extension URIs referenced by behavior in §4.4/§4.5/§4.6.
const (
	URIMid                   = "urn:ietf:params:rtp-hdrext:sdes:mid"
	URIRtpStreamID           = "urn:ietf:params:rtp-hdrext:sdes:rtp-stream-id"
	URIRepairedRtpStreamID   = "urn:ietf:params:rtp-hdrext:sdes:repaired-rtp-stream-id"
	URIAbsSendTime           = "http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time"
	URITimeOffset            = "urn:ietf:params:rtp-hdrext:toffset"
	URITransportWideCCDraft1 = "http://www.ietf.org/id/draft-holmer-rmcat-transport-wide-cc-extensions-01"
	URIAudioLevel            = "urn:ietf:params:rtp-hdrext:ssrc-audio-level"
	URIVideoOrientation      = "urn:3gpp:video-orientation"
)

// RtpHeaderExtension is a header extension a router's finalized capabilities
// may offer (§3).
type RtpHeaderExtension struct {
	Kind             *MediaKind
	URI              string
	PreferredID      uint8
	PreferredEncrypt bool
	Direction        RtpHeaderExtensionDirection
}

// RtpHeaderExtensionCapability is a header extension a peer declares support
// for, at a caller-chosen ID (the shape of an entry in a remote/local
// RtpCapabilities.HeaderExtensions list, §4.5). It is the same type as
// RtpHeaderExtension, the element type of that list.
type RtpHeaderExtensionCapability = RtpHeaderExtension

// RtpHeaderExtensionParameters is a header extension as it appears on
// concrete RtpParameters (§3).
type RtpHeaderExtensionParameters struct {
	URI     string
	ID      uint8
	Encrypt bool
}

// RtpEncodingParametersRtx names the RTX SSRC paired with an encoding.
type RtpEncodingParametersRtx struct {
	SSRC uint32
}

// RtpEncodingParameters describes one simulcast layer / spatial-temporal
// stream of a Producer or Consumer (§3).
type RtpEncodingParameters struct {
	SSRC             *uint32
	Rid              string
	CodecPayloadType *uint8
	Rtx              *RtpEncodingParametersRtx
	Dtx              bool
	ScalabilityMode  string
	MaxBitrate       *uint64
}

// Clone returns an independent deep copy.
func (e RtpEncodingParameters) Clone() RtpEncodingParameters {
	out := e
	if e.SSRC != nil {
		v := *e.SSRC
		out.SSRC = &v
	}
	if e.CodecPayloadType != nil {
		v := *e.CodecPayloadType
		out.CodecPayloadType = &v
	}
	if e.Rtx != nil {
		rtx := *e.Rtx
		out.Rtx = &rtx
	}
	if e.MaxBitrate != nil {
		v := *e.MaxBitrate
		out.MaxBitrate = &v
	}
	return out
}

// RtcpParameters carries the RTCP-related parameters of an RtpParameters
// value (§3).
type RtcpParameters struct {
	Cname       string
	ReducedSize bool
	Mux         bool
}

// RtpParameters is the full parameter set of a Producer or Consumer stream
// (§3).
type RtpParameters struct {
	Mid              string
	Codecs           []RtpCodecParameters
	HeaderExtensions []RtpHeaderExtensionParameters
	Encodings        []RtpEncodingParameters
	Rtcp             RtcpParameters
}

// RtpCapabilities is the capability set a router or peer advertises, before
// finalization (§3).
type RtpCapabilities struct {
	Codecs           []RtpCodecCapability
	HeaderExtensions []RtpHeaderExtension
	FecMechanisms    []string
}

// RtpCapabilitiesFinalized is a router's finalized capability set, the
// output of Finalize (§4.2).
type RtpCapabilitiesFinalized struct {
	Codecs           []RtpCodecCapabilityFinalized
	HeaderExtensions []RtpHeaderExtension
	FecMechanisms    []string
}

// RtpMappingCodec pairs a producer codec's payload type with the mapped
// payload type it was assigned in the router's consumable space (§3).
type RtpMappingCodec struct {
	PayloadType       uint8
	MappedPayloadType uint8
}

// RtpMappingEncoding pairs a producer encoding's identity (ssrc and/or rid)
// with the mapped SSRC it was assigned in the router's consumable space
// (§3).
type RtpMappingEncoding struct {
	SSRC            *uint32
	Rid             string
	ScalabilityMode string
	MappedSSRC      uint32
}

// RtpMapping is the output of the producer mapping builder (§4.3).
type RtpMapping struct {
	Codecs    []RtpMappingCodec
	Encodings []RtpMappingEncoding
}
