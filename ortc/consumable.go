package ortc

// BuildConsumable projects a producer's own RtpParameters into the router's
// consumable space using its RtpMapping (§4.4). The result is never handed
// directly to a peer; it is the shared basis every Consumer and PipeConsumer
// of this producer is further projected from.
//
// Unlike MapProducer and the matcher, this step cannot fail: every producer
// codec and encoding was already validated against the router's capabilities
// when the mapping was built.
func BuildConsumable(kind MediaKind, params RtpParameters, caps RtpCapabilitiesFinalized, mapping RtpMapping) RtpParameters {
	consumable := RtpParameters{
		Rtcp: RtcpParameters{
			Cname:       params.Rtcp.Cname,
			ReducedSize: true,
			Mux:         true,
		},
	}

	for _, codec := range params.Codecs {
		if codec.IsRTX() {
			continue
		}

		mappedPT, found := mappedPayloadTypeFor(mapping.Codecs, codec.PayloadType)
		if !found {
			continue
		}
		finalizedCap, found := finalizedCodecByPT(caps.Codecs, mappedPT)
		if !found {
			continue
		}

		consumable.Codecs = append(consumable.Codecs, finalizedToParameters(
			finalizedCap, mappedPT, codec.Parameters.Clone(), cloneFeedback(finalizedCap.RTCPFeedback),
		))

		if kind != MediaKindVideo {
			continue
		}
		rtxCap, found := finalizedRTXCompanion(caps.Codecs, mappedPT)
		if !found {
			continue
		}
		rtxParams := NewParameters()
		rtxParams.Set(ParamAPT, NumberParam(int64(mappedPT)))
		consumable.Codecs = append(consumable.Codecs, finalizedToParameters(
			rtxCap, rtxCap.PreferredPayloadType, rtxParams, cloneFeedback(rtxCap.RTCPFeedback),
		))
	}

	for _, ext := range caps.HeaderExtensions {
		if ext.Kind == nil || *ext.Kind != kind {
			continue
		}
		if ext.Direction != DirectionSendRecv && ext.Direction != DirectionSendOnly {
			continue
		}
		consumable.HeaderExtensions = append(consumable.HeaderExtensions, RtpHeaderExtensionParameters{
			URI:     ext.URI,
			ID:      ext.PreferredID,
			Encrypt: ext.PreferredEncrypt,
		})
	}

	for _, encoding := range params.Encodings {
		mapped, found := mappingEncodingFor(mapping.Encodings, encoding)
		if !found {
			continue
		}
		mappedSSRC := mapped.MappedSSRC
		consumable.Encodings = append(consumable.Encodings, RtpEncodingParameters{
			SSRC:            &mappedSSRC,
			Dtx:             encoding.Dtx,
			ScalabilityMode: encoding.ScalabilityMode,
			MaxBitrate:      encoding.MaxBitrate,
		})
	}

	return consumable
}

func finalizedCodecByPT(codecs []RtpCodecCapabilityFinalized, pt uint8) (RtpCodecCapabilityFinalized, bool) {
	for _, c := range codecs {
		if c.PreferredPayloadType == pt {
			return c, true
		}
	}
	return RtpCodecCapabilityFinalized{}, false
}

// finalizedRTXCompanion finds the RTX codec in the finalized table whose apt
// parameter points back at mediaPT.
func finalizedRTXCompanion(codecs []RtpCodecCapabilityFinalized, mediaPT uint8) (RtpCodecCapabilityFinalized, bool) {
	for _, c := range codecs {
		if !c.IsRTX() {
			continue
		}
		apt, ok := stringOrIntApt(c.Parameters)
		if ok && uint8(apt) == mediaPT {
			return c, true
		}
	}
	return RtpCodecCapabilityFinalized{}, false
}

// mappingEncodingFor finds the RtpMapping entry produced for encoding,
// matched first by SSRC and falling back to rid, mirroring how MapProducer
// paired them up in the first place.
func mappingEncodingFor(mappings []RtpMappingEncoding, encoding RtpEncodingParameters) (RtpMappingEncoding, bool) {
	for _, m := range mappings {
		if encoding.SSRC != nil && m.SSRC != nil && *encoding.SSRC == *m.SSRC {
			return m, true
		}
	}
	if encoding.Rid != "" {
		for _, m := range mappings {
			if m.Rid == encoding.Rid {
				return m, true
			}
		}
	}
	return RtpMappingEncoding{}, false
}
