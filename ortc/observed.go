package ortc

import "github.com/pion/logging"

// Negotiator wraps the five pure negotiation entry points with structured
// logging, the way peerconnection.go wraps its state transitions with
// pc.log.Warnf/Debugf calls rather than letting callers log ad hoc (§6). The
// package-level functions remain directly usable and unaffected; Negotiator
// only adds observability around them.
type Negotiator struct {
	log logging.LeveledLogger
}

// Observe returns a Negotiator that logs through logger. Passing a nil
// logger is not supported; callers without a logger should call the
// package-level functions directly.
func Observe(logger logging.LeveledLogger) Negotiator {
	return Negotiator{log: logger}
}

func (n Negotiator) Finalize(mediaCodecs []RtpCodecCapability) (RtpCapabilitiesFinalized, error) {
	n.log.Debugf("finalizing capabilities for %d media codec(s)", len(mediaCodecs))
	caps, err := Finalize(mediaCodecs)
	if err != nil {
		n.log.Warnf("finalize failed: %v", err)
		return RtpCapabilitiesFinalized{}, err
	}
	for _, codec := range caps.Codecs {
		if codec.IsRTX() || len(codec.RTCPFeedback) == 0 {
			continue
		}
		descriptions := make([]string, 0, len(codec.RTCPFeedback))
		for _, fb := range codec.RTCPFeedback {
			descriptions = append(descriptions, DescribeFeedback(fb))
		}
		n.log.Debugf("codec %s supports %v", codec.MimeType, descriptions)
	}
	return caps, nil
}

func (n Negotiator) MapProducer(params RtpParameters, caps RtpCapabilitiesFinalized) (RtpMapping, error) {
	n.log.Debugf("mapping producer with %d codec(s), %d encoding(s)", len(params.Codecs), len(params.Encodings))
	mapping, err := MapProducer(params, caps)
	if err != nil {
		n.log.Warnf("producer mapping failed: %v", err)
		return RtpMapping{}, err
	}
	return mapping, nil
}

func (n Negotiator) BuildConsumable(kind MediaKind, params RtpParameters, caps RtpCapabilitiesFinalized, mapping RtpMapping) RtpParameters {
	n.log.Debugf("building consumable parameters for %s producer", kind)
	return BuildConsumable(kind, params, caps, mapping)
}

func (n Negotiator) ProjectConsumer(consumable RtpParameters, peerCaps RtpCapabilities) (RtpParameters, error) {
	n.log.Debugf("projecting consumer parameters against %d peer codec(s)", len(peerCaps.Codecs))
	consumer, err := ProjectConsumer(consumable, peerCaps)
	if err != nil {
		n.log.Warnf("consumer projection failed: %v", err)
		return RtpParameters{}, err
	}
	return consumer, nil
}

func (n Negotiator) ProjectPipe(consumable RtpParameters, enableRTX bool) RtpParameters {
	n.log.Debugf("projecting pipe parameters (rtx=%t)", enableRTX)
	return ProjectPipe(consumable, enableRTX)
}
