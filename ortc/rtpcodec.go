package ortc

// RtpCodecCapability is a codec a router (or a peer's receive side) declares
// it can handle, before any payload type has been finalized (§3).
//
// Channels is nil for video codecs and non-nil (≥1) for audio codecs; it
// models the same "audio/video differ by one field" shape the original
// represents as two enum variants, per the tagged-union design note in §9.
type RtpCodecCapability struct {
	MimeType             MimeType
	PreferredPayloadType *uint8
	ClockRate            uint32
	Channels             *uint8
	Parameters           Parameters
	RTCPFeedback         []RTCPFeedback
}

// RtpCodecCapabilityFinalized is the router-finalized form of a codec
// capability: PreferredPayloadType is always present.
type RtpCodecCapabilityFinalized struct {
	MimeType             MimeType
	PreferredPayloadType uint8
	ClockRate            uint32
	Channels             *uint8
	Parameters           Parameters
	RTCPFeedback         []RTCPFeedback
}

// IsRTX reports whether this capability entry is the RTX marker codec.
func (c RtpCodecCapability) IsRTX() bool         { return c.MimeType.IsRTX() }
func (c RtpCodecCapabilityFinalized) IsRTX() bool { return c.MimeType.IsRTX() }

// Clone returns an independent deep copy.
func (c RtpCodecCapability) Clone() RtpCodecCapability {
	out := c
	if c.PreferredPayloadType != nil {
		pt := *c.PreferredPayloadType
		out.PreferredPayloadType = &pt
	}
	if c.Channels != nil {
		ch := *c.Channels
		out.Channels = &ch
	}
	out.Parameters = c.Parameters.Clone()
	out.RTCPFeedback = cloneFeedback(c.RTCPFeedback)
	return out
}

// Clone returns an independent deep copy.
func (c RtpCodecCapabilityFinalized) Clone() RtpCodecCapabilityFinalized {
	out := c
	if c.Channels != nil {
		ch := *c.Channels
		out.Channels = &ch
	}
	out.Parameters = c.Parameters.Clone()
	out.RTCPFeedback = cloneFeedback(c.RTCPFeedback)
	return out
}

// RtpCodecParameters is a codec as it appears on a concrete Producer or
// Consumer's RtpParameters: it carries a fixed PayloadType rather than a
// preferred one (§3).
type RtpCodecParameters struct {
	MimeType     MimeType
	PayloadType  uint8
	ClockRate    uint32
	Channels     *uint8
	Parameters   Parameters
	RTCPFeedback []RTCPFeedback
}

// IsRTX reports whether this codec entry is the RTX marker codec.
func (c RtpCodecParameters) IsRTX() bool { return c.MimeType.IsRTX() }

// Clone returns an independent deep copy.
func (c RtpCodecParameters) Clone() RtpCodecParameters {
	out := c
	if c.Channels != nil {
		ch := *c.Channels
		out.Channels = &ch
	}
	out.Parameters = c.Parameters.Clone()
	out.RTCPFeedback = cloneFeedback(c.RTCPFeedback)
	return out
}

// finalizedToParameters converts a finalized capability codec into the
// concrete RtpCodecParameters form used on consumable/consumer parameters,
// at the given payload type, keeping caller-supplied parameters instead of
// the capability's own (used by the consumable builder, §4.4).
func finalizedToParameters(finalizedCap RtpCodecCapabilityFinalized, payloadType uint8, parameters Parameters, feedback []RTCPFeedback) RtpCodecParameters {
	return RtpCodecParameters{
		MimeType:     finalizedCap.MimeType,
		PayloadType:  payloadType,
		ClockRate:    finalizedCap.ClockRate,
		Channels:     finalizedCap.Channels,
		Parameters:   parameters,
		RTCPFeedback: feedback,
	}
}

// codecToMatch is the flattened "channels: option<u8>" view the matcher
// compares, normalizing RtpCodecCapability / RtpCodecCapabilityFinalized /
// RtpCodecParameters into one shape, per the §9 design note on polymorphism
// over codec kind.
type codecToMatch struct {
	mimeType   MimeType
	clockRate  uint32
	channels   *uint8
	parameters Parameters
}

func matchViewOfCapability(c RtpCodecCapability) codecToMatch {
	return codecToMatch{mimeType: c.MimeType, clockRate: c.ClockRate, channels: c.Channels, parameters: c.Parameters}
}

func matchViewOfFinalized(c RtpCodecCapabilityFinalized) codecToMatch {
	return codecToMatch{mimeType: c.MimeType, clockRate: c.ClockRate, channels: c.Channels, parameters: c.Parameters}
}

func matchViewOfParameters(c RtpCodecParameters) codecToMatch {
	return codecToMatch{mimeType: c.MimeType, clockRate: c.ClockRate, channels: c.Channels, parameters: c.Parameters}
}

func channelsEqual(a, b *uint8) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
