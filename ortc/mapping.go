package ortc

// MapProducer builds the RtpMapping a router uses to translate a producer's
// own payload types and SSRCs into the router's consumable space (§4.3).
//
// Non-RTX codecs are matched against the router's finalized capabilities
// with the strict matcher, so an H.264 codec without a compatible
// profile-level-id is rejected even though the loose finalizer accepted it.
// RTX codecs are resolved afterwards, by following their `apt` back-reference
// to an already-mapped media codec.
func MapProducer(params RtpParameters, caps RtpCapabilitiesFinalized) (RtpMapping, error) {
	mapping := RtpMapping{}

	for _, codec := range params.Codecs {
		if codec.IsRTX() {
			continue
		}

		mappedPT, found := matchAgainstFinalized(codec, caps.Codecs)
		if !found {
			return RtpMapping{}, unsupportedCodecMapping(codec.MimeType, codec.PayloadType)
		}

		mapping.Codecs = append(mapping.Codecs, RtpMappingCodec{
			PayloadType:       codec.PayloadType,
			MappedPayloadType: mappedPT,
		})
	}

	for _, codec := range params.Codecs {
		if !codec.IsRTX() {
			continue
		}

		apt, ok := stringOrIntApt(codec.Parameters)
		if !ok {
			return RtpMapping{}, missingMediaCodecForRTX(codec.PayloadType)
		}

		associatedMappedPT, found := mappedPayloadTypeFor(mapping.Codecs, uint8(apt))
		if !found {
			return RtpMapping{}, missingMediaCodecForRTX(codec.PayloadType)
		}

		rtxMappedPT, found := findCapabilityRTXFor(caps.Codecs, associatedMappedPT)
		if !found {
			return RtpMapping{}, unsupportedRTXCodec(codec.PayloadType)
		}

		mapping.Codecs = append(mapping.Codecs, RtpMappingCodec{
			PayloadType:       codec.PayloadType,
			MappedPayloadType: rtxMappedPT,
		})
	}

	baseSSRC := generateSSRC()
	for i, encoding := range params.Encodings {
		enc := RtpMappingEncoding{
			Rid:             encoding.Rid,
			ScalabilityMode: encoding.ScalabilityMode,
			MappedSSRC:      baseSSRC + uint32(i),
		}
		if encoding.SSRC != nil {
			ssrc := *encoding.SSRC
			enc.SSRC = &ssrc
		}
		mapping.Encodings = append(mapping.Encodings, enc)
	}

	return mapping, nil
}

// matchAgainstFinalized strict-matches codec against every non-RTX entry in
// finalizedCodecs, returning the first match's payload type.
func matchAgainstFinalized(codec RtpCodecParameters, finalizedCodecs []RtpCodecCapabilityFinalized) (uint8, bool) {
	needle := matchViewOfParameters(codec)
	for _, candidate := range finalizedCodecs {
		if candidate.IsRTX() {
			continue
		}
		if matchCodecs(needle, matchViewOfFinalized(candidate), true).matched() {
			return candidate.PreferredPayloadType, true
		}
	}
	return 0, false
}

// stringOrIntApt reads the apt parameter as an integer payload type.
func stringOrIntApt(params Parameters) (int64, bool) {
	v, ok := params.Get(ParamAPT)
	if !ok || v.IsString() {
		return 0, false
	}
	return v.Int(), true
}

func mappedPayloadTypeFor(codecs []RtpMappingCodec, payloadType uint8) (uint8, bool) {
	for _, c := range codecs {
		if c.PayloadType == payloadType {
			return c.MappedPayloadType, true
		}
	}
	return 0, false
}

// findCapabilityRTXFor finds the finalized RTX codec whose apt parameter
// points at mediaMappedPT, the already-mapped payload type of its
// associated media codec.
func findCapabilityRTXFor(finalizedCodecs []RtpCodecCapabilityFinalized, mediaMappedPT uint8) (uint8, bool) {
	for _, candidate := range finalizedCodecs {
		if !candidate.IsRTX() {
			continue
		}
		apt, ok := stringOrIntApt(candidate.Parameters)
		if ok && uint8(apt) == mediaMappedPT {
			return candidate.PreferredPayloadType, true
		}
	}
	return 0, false
}
