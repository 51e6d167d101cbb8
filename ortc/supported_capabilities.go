package ortc

// supportedVideoFeedback is the stock feedback list every supported-table
// video codec advertises (§4.7). It matches the feedback set the teacher
// library's own RegisterDefaultCodecs wires up for VP8/VP9/H264
// (mediaengine.go's videoRTCPFeedback), reordered to the nack, nack-pli,
// ccm-fir, goog-remb, transport-cc sequence scenario 1 of the spec expects.
func supportedVideoFeedback() []RTCPFeedback {
	return []RTCPFeedback{
		{Type: "nack"},
		{Type: "nack", Parameter: "pli"},
		{Type: "ccm", Parameter: "fir"},
		{Type: "goog-remb"},
		{Type: "transport-cc"},
	}
}

func u8(v uint8) *uint8 { return &v }

// getSupportedRtpCapabilities returns the compile-time "every codec this SFU
// can mediate" table (§2 component 2, §4.7). A fresh value is built on every
// call since RtpCodecCapability embeds a mutable Parameters map; callers
// must not mutate the result.
func getSupportedRtpCapabilities() RtpCapabilities {
	return RtpCapabilities{
		Codecs: []RtpCodecCapability{
			{
				MimeType:  MimeTypeOpus,
				ClockRate: 48000,
				Channels:  u8(2),
				Parameters: ParametersFrom(struct {
					Key   string
					Value ParameterValue
				}{"useinbandfec", NumberParam(1)}),
				RTCPFeedback: []RTCPFeedback{{Type: "transport-cc"}},
			},
			{MimeType: MimeTypePCMU, ClockRate: 8000, Channels: u8(1)},
			{MimeType: MimeTypePCMA, ClockRate: 8000, Channels: u8(1)},
			{MimeType: MimeTypeISAC, ClockRate: 16000, Channels: u8(1)},
			{MimeType: MimeTypeG722, ClockRate: 8000, Channels: u8(1)},
			{MimeType: MimeTypeCN, ClockRate: 8000, Channels: u8(1)},
			{MimeType: MimeTypeCN, ClockRate: 16000, Channels: u8(1)},
			{MimeType: MimeTypeCN, ClockRate: 32000, Channels: u8(1)},
			{MimeType: MimeTypeCN, ClockRate: 48000, Channels: u8(1)},
			{MimeType: MimeTypeTelephoneEvent, ClockRate: 8000, Channels: u8(1)},
			{MimeType: MimeTypeTelephoneEvent, ClockRate: 16000, Channels: u8(1)},
			{MimeType: MimeTypeTelephoneEvent, ClockRate: 48000, Channels: u8(1)},

			{MimeType: MimeTypeVP8, ClockRate: 90000, RTCPFeedback: supportedVideoFeedback()},
			{MimeType: MimeTypeVP9, ClockRate: 90000, RTCPFeedback: supportedVideoFeedback()},
			{MimeType: MimeTypeH265, ClockRate: 90000, RTCPFeedback: supportedVideoFeedback()},
			{
				MimeType:  MimeTypeH264,
				ClockRate: 90000,
				Parameters: ParametersFrom(struct {
					Key   string
					Value ParameterValue
				}{ParamPacketizationMode, NumberParam(1)}),
				RTCPFeedback: supportedVideoFeedback(),
			},
			{
				MimeType:  MimeTypeH264,
				ClockRate: 90000,
				Parameters: ParametersFrom(struct {
					Key   string
					Value ParameterValue
				}{ParamPacketizationMode, NumberParam(0)}),
				RTCPFeedback: supportedVideoFeedback(),
			},
		},
		HeaderExtensions: supportedHeaderExtensions(),
		FecMechanisms:    []string{},
	}
}

func mediaKindPtr(k MediaKind) *MediaKind { return &k }

// supportedHeaderExtensions is the global header extension list shared by
// every router built from the supported table (§4.7, §9 design note: this
// list is identical per router and never mutated after construction).
//
// Every entry carries an explicit Kind: the consumable builder (§4.4) skips
// kind-less ("any") extensions per the spec's open question, so an
// extension meant to be usable by both audio and video streams is listed
// twice, once per kind, at the same preferred ID — the same convention the
// remote capabilities fixture in the original test suite uses for MID.
func supportedHeaderExtensions() []RtpHeaderExtension {
	return []RtpHeaderExtension{
		{Kind: mediaKindPtr(MediaKindAudio), URI: URIMid, PreferredID: 1, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindVideo), URI: URIMid, PreferredID: 1, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindVideo), URI: URIRtpStreamID, PreferredID: 2, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindVideo), URI: URIRepairedRtpStreamID, PreferredID: 3, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindAudio), URI: URIAbsSendTime, PreferredID: 4, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindVideo), URI: URIAbsSendTime, PreferredID: 4, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindAudio), URI: URITransportWideCCDraft1, PreferredID: 5, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindVideo), URI: URITransportWideCCDraft1, PreferredID: 5, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindAudio), URI: URIAudioLevel, PreferredID: 8, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindVideo), URI: URIVideoOrientation, PreferredID: 11, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindAudio), URI: URITimeOffset, PreferredID: 12, Direction: DirectionSendRecv},
		{Kind: mediaKindPtr(MediaKindVideo), URI: URITimeOffset, PreferredID: 12, Direction: DirectionSendRecv},
	}
}
