package ortc

import (
	"fmt"
	"strings"
)

// ProjectConsumer projects a router's consumable parameters into the RTP
// parameters a specific consuming peer should receive, constrained by that
// peer's declared receive capabilities (§4.5).
func ProjectConsumer(consumable RtpParameters, peerCaps RtpCapabilities) (RtpParameters, error) {
	if err := ValidateRtpCapabilities(peerCaps); err != nil {
		return RtpParameters{}, invalidCapabilities(err)
	}

	consumer := RtpParameters{
		Rtcp: consumable.Rtcp,
	}

	var survivors []consumerSurvivor

	for _, codec := range consumable.Codecs {
		if codec.IsRTX() {
			continue
		}

		matchedPeer, found := matchAgainstPeerCapabilities(codec, peerCaps.Codecs)
		if !found {
			continue
		}

		consumerCodec := codec.Clone()
		consumerCodec.RTCPFeedback = cloneFeedback(matchedPeer.RTCPFeedback)

		survivors = append(survivors, consumerSurvivor{consumablePT: codec.PayloadType, consumerCodec: consumerCodec})
		consumer.Codecs = append(consumer.Codecs, consumerCodec)
	}

	if len(consumer.Codecs) == 0 {
		return RtpParameters{}, noCompatibleMediaCodecs()
	}

	hasRTX := false
	for _, codec := range consumable.Codecs {
		if !codec.IsRTX() {
			continue
		}
		apt, ok := stringOrIntApt(codec.Parameters)
		if !ok {
			continue
		}
		s, found := survivorByPT(survivors, uint8(apt))
		if !found {
			continue
		}
		if !peerSupportsRTXFor(peerCaps.Codecs, s.consumerCodec.PayloadType) {
			continue
		}
		consumer.Codecs = append(consumer.Codecs, codec.Clone())
		hasRTX = true
	}

	for _, ext := range consumable.HeaderExtensions {
		if peerDeclaresExtension(peerCaps.HeaderExtensions, ext.URI, ext.ID) {
			consumer.HeaderExtensions = append(consumer.HeaderExtensions, ext)
		}
	}

	switch {
	case hasExtension(consumer.HeaderExtensions, URITransportWideCCDraft1):
		stripFeedback(consumer.Codecs, RTCPFeedback.isGoogRemb)
	case hasExtension(consumer.HeaderExtensions, URIAbsSendTime):
		stripFeedback(consumer.Codecs, RTCPFeedback.isTransportCC)
	default:
		stripFeedback(consumer.Codecs, RTCPFeedback.isGoogRemb)
		stripFeedback(consumer.Codecs, RTCPFeedback.isTransportCC)
	}

	ssrc := generateSSRC()
	encoding := RtpEncodingParameters{SSRC: &ssrc}
	if hasRTX {
		rtxSSRC := generateSSRC()
		encoding.Rtx = &RtpEncodingParametersRtx{SSRC: rtxSSRC}
	}
	encoding.ScalabilityMode = deriveScalabilityMode(consumable.Encodings)
	encoding.MaxBitrate = maxBitrateOf(consumable.Encodings)

	consumer.Encodings = []RtpEncodingParameters{encoding}

	return consumer, nil
}

func matchAgainstPeerCapabilities(codec RtpCodecParameters, peerCodecs []RtpCodecCapability) (RtpCodecCapability, bool) {
	needle := matchViewOfParameters(codec)
	for _, candidate := range peerCodecs {
		if candidate.IsRTX() {
			continue
		}
		if matchCodecs(needle, matchViewOfCapability(candidate), true).matched() {
			return candidate, true
		}
	}
	return RtpCodecCapability{}, false
}

// consumerSurvivor pairs a consumable media codec's original payload type
// with the consumer codec it was projected into, so the RTX sweep can look
// up whether a given media codec survived negotiation.
type consumerSurvivor struct {
	consumablePT  uint8
	consumerCodec RtpCodecParameters
}

func survivorByPT(survivors []consumerSurvivor, pt uint8) (consumerSurvivor, bool) {
	for _, s := range survivors {
		if s.consumablePT == pt {
			return s, true
		}
	}
	return consumerSurvivor{}, false
}

func peerSupportsRTXFor(peerCodecs []RtpCodecCapability, mediaPT uint8) bool {
	for _, c := range peerCodecs {
		if !c.IsRTX() {
			continue
		}
		apt, ok := stringOrIntApt(c.Parameters)
		if ok && uint8(apt) == mediaPT {
			return true
		}
	}
	return false
}

func peerDeclaresExtension(exts []RtpHeaderExtensionCapability, uri string, id uint8) bool {
	for _, e := range exts {
		if e.URI == uri && e.PreferredID == id {
			return true
		}
	}
	return false
}

func hasExtension(exts []RtpHeaderExtensionParameters, uri string) bool {
	for _, e := range exts {
		if e.URI == uri {
			return true
		}
	}
	return false
}

func stripFeedback(codecs []RtpCodecParameters, drop func(RTCPFeedback) bool) {
	for i := range codecs {
		kept := codecs[i].RTCPFeedback[:0]
		for _, fb := range codecs[i].RTCPFeedback {
			if !drop(fb) {
				kept = append(kept, fb)
			}
		}
		codecs[i].RTCPFeedback = kept
	}
}

// deriveScalabilityMode computes the consumer's single-encoding scalability
// mode from the consumable's simulcast layer count (§4.5 step 7): one
// spatial layer per consumable encoding, carrying over the per-encoding
// temporal layer count (from e.g. "L1T3"), unless the consumable itself
// already names a mode (no simulcast).
func deriveScalabilityMode(encodings []RtpEncodingParameters) string {
	if len(encodings) == 0 {
		return ""
	}
	if len(encodings) == 1 {
		return encodings[0].ScalabilityMode
	}
	temporalLayers := temporalLayerCount(encodings[0].ScalabilityMode)
	return fmt.Sprintf("S%dT%d", len(encodings), temporalLayers)
}

// temporalLayerCount extracts the temporal layer count from a scalability
// mode string such as "L1T3" or "S2T1", returning 0 when absent or
// unparseable (§4.5 step 7).
func temporalLayerCount(mode string) int {
	idx := strings.IndexByte(mode, 'T')
	if idx < 0 || idx == len(mode)-1 {
		return 0
	}
	n := 0
	for _, r := range mode[idx+1:] {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func maxBitrateOf(encodings []RtpEncodingParameters) *uint64 {
	var max *uint64
	for _, e := range encodings {
		if e.MaxBitrate == nil {
			continue
		}
		if max == nil || *e.MaxBitrate > *max {
			v := *e.MaxBitrate
			max = &v
		}
	}
	return max
}
