package ortc

// pipeDroppedHeaderExtensions lists the extensions a pipe transport drops:
// mid and the two send-estimation extensions make no sense once RTP is
// being relayed server-to-server rather than terminated at a browser peer
// (§4.6).
var pipeDroppedHeaderExtensions = map[string]bool{
	URIMid:                   true,
	URIAbsSendTime:           true,
	URITransportWideCCDraft1: true,
}

// ProjectPipe projects a router's consumable parameters for relay to another
// router over a pipe transport (§4.6). Unlike ProjectConsumer this never
// fails: a pipe transport is internal infrastructure, not a negotiated peer,
// so there is no foreign capability set to be incompatible with.
func ProjectPipe(consumable RtpParameters, enableRTX bool) RtpParameters {
	pipe := RtpParameters{Rtcp: consumable.Rtcp}

	for _, codec := range consumable.Codecs {
		if codec.IsRTX() && !enableRTX {
			continue
		}

		out := codec.Clone()
		kept := out.RTCPFeedback[:0]
		for _, fb := range out.RTCPFeedback {
			switch {
			case fb.isNackPli(), fb.isCcmFir():
				kept = append(kept, fb)
			case fb.isNack():
				if enableRTX {
					kept = append(kept, fb)
				}
			}
		}
		out.RTCPFeedback = kept
		pipe.Codecs = append(pipe.Codecs, out)
	}

	for _, ext := range consumable.HeaderExtensions {
		if pipeDroppedHeaderExtensions[ext.URI] {
			continue
		}
		pipe.HeaderExtensions = append(pipe.HeaderExtensions, ext)
	}

	for _, encoding := range consumable.Encodings {
		ssrc := generateSSRC()
		out := RtpEncodingParameters{
			SSRC:            &ssrc,
			Dtx:             encoding.Dtx,
			ScalabilityMode: encoding.ScalabilityMode,
			MaxBitrate:      encoding.MaxBitrate,
		}
		// A fresh RTX SSRC is always drawn, even when RTX ends up disabled
		// for this pipe, to keep SSRC allocation independent of the RTX
		// on/off decision (§9).
		rtxSSRC := generateSSRC()
		if enableRTX {
			out.Rtx = &RtpEncodingParametersRtx{SSRC: rtxSSRC}
		}
		pipe.Encodings = append(pipe.Encodings, out)
	}

	return pipe
}
