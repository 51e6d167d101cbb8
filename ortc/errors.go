package ortc

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can test against with errors.Is, following the
// teacher library's convention of pairing a package-level sentinel with a
// typed wrapper that adds context (see errors.go in the teacher repository).
var (
	ErrInvalidAptParameter     = errors.New("ortc: invalid apt parameter")
	ErrUnsupportedCodec        = errors.New("ortc: unsupported codec")
	ErrCannotAllocate          = errors.New("ortc: cannot allocate more dynamic payload types")
	ErrDuplicatedPreferredPT   = errors.New("ortc: duplicated preferred payload type")
	ErrUnsupportedRTXCodec     = errors.New("ortc: unsupported RTX codec")
	ErrMissingMediaCodecForRTX = errors.New("ortc: missing media codec for RTX")
	ErrInvalidCapabilities     = errors.New("ortc: invalid capabilities")
	ErrNoCompatibleMediaCodecs = errors.New("ortc: no compatible media codecs")
)

// RtpParametersError reports that a concrete RtpCodecParameters value failed
// validation (§7, RtpParametersError).
type RtpParametersError struct {
	Err   error
	Value string
}

func (e *RtpParametersError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Value)
}

func (e *RtpParametersError) Unwrap() error { return e.Err }

func invalidAptParameter(value string) *RtpParametersError {
	return &RtpParametersError{Err: ErrInvalidAptParameter, Value: value}
}

// RtpCapabilitiesError reports that a capability (either the caller's input
// or the finalized result) is invalid (§7, RtpCapabilitiesError).
type RtpCapabilitiesError struct {
	Err         error
	MimeType    MimeType
	HasMime     bool
	PayloadType uint8
	HasPT       bool
	AptValue    string
}

func (e *RtpCapabilitiesError) Error() string {
	switch {
	case e.HasMime:
		return fmt.Sprintf("%v [mimeType:%s]", e.Err, e.MimeType)
	case e.HasPT:
		return fmt.Sprintf("%v [payloadType:%d]", e.Err, e.PayloadType)
	case e.AptValue != "":
		return fmt.Sprintf("%v: %s", e.Err, e.AptValue)
	default:
		return e.Err.Error()
	}
}

func (e *RtpCapabilitiesError) Unwrap() error { return e.Err }

func unsupportedCodecCapability(mime MimeType) *RtpCapabilitiesError {
	return &RtpCapabilitiesError{Err: ErrUnsupportedCodec, MimeType: mime, HasMime: true}
}

func cannotAllocate() *RtpCapabilitiesError {
	return &RtpCapabilitiesError{Err: ErrCannotAllocate}
}

func invalidAptParameterCapability(value string) *RtpCapabilitiesError {
	return &RtpCapabilitiesError{Err: ErrInvalidAptParameter, AptValue: value}
}

func duplicatedPreferredPayloadType(pt uint8) *RtpCapabilitiesError {
	return &RtpCapabilitiesError{Err: ErrDuplicatedPreferredPT, PayloadType: pt, HasPT: true}
}

// RtpParametersMappingError reports a failure building a producer's
// RtpMapping (§7, RtpParametersMappingError).
type RtpParametersMappingError struct {
	Err         error
	MimeType    MimeType
	HasMime     bool
	PayloadType uint8
}

func (e *RtpParametersMappingError) Error() string {
	if e.HasMime {
		return fmt.Sprintf("%v [mimeType:%s, payloadType:%d]", e.Err, e.MimeType, e.PayloadType)
	}
	return fmt.Sprintf("%v [payloadType:%d]", e.Err, e.PayloadType)
}

func (e *RtpParametersMappingError) Unwrap() error { return e.Err }

func unsupportedCodecMapping(mime MimeType, pt uint8) *RtpParametersMappingError {
	return &RtpParametersMappingError{Err: ErrUnsupportedCodec, MimeType: mime, HasMime: true, PayloadType: pt}
}

func unsupportedRTXCodec(preferredPT uint8) *RtpParametersMappingError {
	return &RtpParametersMappingError{Err: ErrUnsupportedRTXCodec, PayloadType: preferredPT}
}

func missingMediaCodecForRTX(pt uint8) *RtpParametersMappingError {
	return &RtpParametersMappingError{Err: ErrMissingMediaCodecForRTX, PayloadType: pt}
}

// ConsumerRtpParametersError reports a failure projecting consumer RTP
// parameters (§7, ConsumerRtpParametersError).
type ConsumerRtpParametersError struct {
	Err   error
	Inner *RtpCapabilitiesError
}

func (e *ConsumerRtpParametersError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%v: %v", e.Err, e.Inner)
	}
	return e.Err.Error()
}

func (e *ConsumerRtpParametersError) Unwrap() error { return e.Err }

func invalidCapabilities(inner *RtpCapabilitiesError) *ConsumerRtpParametersError {
	return &ConsumerRtpParametersError{Err: ErrInvalidCapabilities, Inner: inner}
}

func noCompatibleMediaCodecs() *ConsumerRtpParametersError {
	return &ConsumerRtpParametersError{Err: ErrNoCompatibleMediaCodecs}
}
