package ortc

// dynamicPayloadTypes is the fixed pool the finalizer draws unclaimed
// payload types from, in this exact order (§4.2, §9): 100..127 first, then
// 96..99. Removal preserves the remaining entries' relative order; any
// sequence with O(1) head removal works, a plain slice suffices here.
func dynamicPayloadTypes() []uint8 {
	pool := make([]uint8, 0, 32)
	for pt := uint8(100); pt <= 127; pt++ {
		pool = append(pool, pt)
	}
	for pt := uint8(96); pt <= 99; pt++ {
		pool = append(pool, pt)
	}
	return pool
}

func removePT(pool []uint8, pt uint8) []uint8 {
	for i, v := range pool {
		if v == pt {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}

func popFront(pool []uint8) (uint8, []uint8, bool) {
	if len(pool) == 0 {
		return 0, pool, false
	}
	return pool[0], pool[1:], true
}

// Finalize merges media codecs supplied by a caller with the built-in
// supported RTP capabilities table to produce a router's finalized
// capabilities, allocating payload types and synthesizing RTX companions
// (§4.2).
func Finalize(mediaCodecs []RtpCodecCapability) (RtpCapabilitiesFinalized, error) {
	supported := getSupportedRtpCapabilities()

	pool := dynamicPayloadTypes()

	finalized := RtpCapabilitiesFinalized{
		Codecs:           nil,
		HeaderExtensions: supported.HeaderExtensions,
		FecMechanisms:    supported.FecMechanisms,
	}

	for _, mediaCodec := range mediaCodecs {
		if err := validateAptParamCapability(mediaCodec.Parameters); err != nil {
			return RtpCapabilitiesFinalized{}, err
		}

		supportedCodec, found := findSupportedMatch(mediaCodec, supported.Codecs)
		if !found {
			return RtpCapabilitiesFinalized{}, unsupportedCodecCapability(mediaCodec.MimeType)
		}

		var preferredPT uint8
		switch {
		case mediaCodec.PreferredPayloadType != nil:
			preferredPT = *mediaCodec.PreferredPayloadType
			pool = removePT(pool, preferredPT)
		case supportedCodec.PreferredPayloadType != nil:
			preferredPT = *supportedCodec.PreferredPayloadType
		default:
			pt, rest, ok := popFront(pool)
			if !ok {
				return RtpCapabilitiesFinalized{}, cannotAllocate()
			}
			preferredPT = pt
			pool = rest
		}

		for _, existing := range finalized.Codecs {
			if existing.PreferredPayloadType == preferredPT {
				return RtpCapabilitiesFinalized{}, duplicatedPreferredPayloadType(preferredPT)
			}
		}

		finalizedCodec := RtpCodecCapabilityFinalized{
			MimeType:             supportedCodec.MimeType,
			PreferredPayloadType: preferredPT,
			ClockRate:            supportedCodec.ClockRate,
			Channels:             supportedCodec.Channels,
			Parameters:           supportedCodec.Parameters.Extend(mediaCodec.Parameters),
			RTCPFeedback:         cloneFeedback(supportedCodec.RTCPFeedback),
		}

		finalized.Codecs = append(finalized.Codecs, finalizedCodec)

		if finalizedCodec.MimeType.Kind == MediaKindVideo {
			rtxPT, rest, ok := popFront(pool)
			if !ok {
				return RtpCapabilitiesFinalized{}, cannotAllocate()
			}
			pool = rest

			rtxParams := NewParameters()
			rtxParams.Set(ParamAPT, NumberParam(int64(preferredPT)))

			rtxCodec := RtpCodecCapabilityFinalized{
				MimeType:             MimeTypeRTX,
				PreferredPayloadType: rtxPT,
				ClockRate:            finalizedCodec.ClockRate,
				Parameters:           rtxParams,
			}
			finalized.Codecs = append(finalized.Codecs, rtxCodec)
		}
	}

	return finalized, nil
}

// findSupportedMatch finds the supported-table entry that matches mediaCodec
// under the non-strict matcher (§4.2.b).
func findSupportedMatch(mediaCodec RtpCodecCapability, supportedCodecs []RtpCodecCapability) (RtpCodecCapability, bool) {
	needle := matchViewOfCapability(mediaCodec)
	for _, candidate := range supportedCodecs {
		if matchCodecs(needle, matchViewOfCapability(candidate), false).matched() {
			return candidate, true
		}
	}
	return RtpCodecCapability{}, false
}

// validateAptParamCapability implements §4.2.a / the RtpCapabilitiesError
// validator: any `apt` parameter must be integer-valued.
func validateAptParamCapability(params Parameters) error {
	v, ok := params.Get(ParamAPT)
	if ok && v.IsString() {
		return invalidAptParameterCapability(v.Str())
	}
	return nil
}

// validateAptParamParameters is the RtpParametersError variant used by
// validators operating on concrete RtpCodecParameters (§7).
func validateAptParamParameters(params Parameters) error {
	v, ok := params.Get(ParamAPT)
	if ok && v.IsString() {
		return invalidAptParameter(v.Str())
	}
	return nil
}

// ValidateRtpParameters checks every codec in params for parameter
// validity, used as a precondition by callers before feeding parameters
// into the mapping builder or consumable builder.
func ValidateRtpParameters(params RtpParameters) error {
	for _, codec := range params.Codecs {
		if err := validateAptParamParameters(codec.Parameters); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRtpCapabilities checks every codec in caps for parameter
// validity (§4.5 step 1 uses this).
func ValidateRtpCapabilities(caps RtpCapabilities) *RtpCapabilitiesError {
	for _, codec := range caps.Codecs {
		if err := validateAptParamCapability(codec.Parameters); err != nil {
			return err.(*RtpCapabilitiesError)
		}
	}
	return nil
}
