package ortc

import "github.com/pion/sfu-ortc/ortc/h264profile"

// matchKind is the verdict of matchCodecs (§4.1).
type matchKind int

const (
	matchMismatch matchKind = iota
	matchNoAugmentation
	matchWithProfileLevelID
)

// codecMatch is the result of comparing two codecs: whether they match and,
// for H.264 in strict mode, the selected answer profile-level-id.
type codecMatch struct {
	kind           matchKind
	profileLevelID string
}

func (m codecMatch) matched() bool { return m.kind != matchMismatch }

// matchCodecs implements the generic preconditions and codec-specific rules
// of §4.1. It is symmetric except for the H.264 augmentation, which is
// always computed from a's perspective (a is "local", b is "remote") per
// §4.1's note on which side the augmentation gets written back into.
func matchCodecs(a, b codecToMatch, strict bool) codecMatch {
	if a.mimeType != b.mimeType {
		return codecMatch{kind: matchMismatch}
	}
	if !channelsEqual(a.channels, b.channels) {
		return codecMatch{kind: matchMismatch}
	}
	if a.clockRate != b.clockRate {
		return codecMatch{kind: matchMismatch}
	}

	switch {
	case a.mimeType == MimeTypeH264:
		return matchH264(a, b, strict)
	case a.mimeType == MimeTypeVP9:
		return matchVP9(a, b, strict)
	default:
		return codecMatch{kind: matchNoAugmentation}
	}
}

func matchH264(a, b codecToMatch, strict bool) codecMatch {
	pmA := intParam(a.parameters, ParamPacketizationMode, 0)
	pmB := intParam(b.parameters, ParamPacketizationMode, 0)
	if pmA != pmB {
		return codecMatch{kind: matchMismatch}
	}

	if !strict {
		return codecMatch{kind: matchNoAugmentation}
	}

	pidA, hasA := stringParam(a.parameters, ParamProfileLevelID)
	pidB, hasB := stringParam(b.parameters, ParamProfileLevelID)

	var pidAPtr, pidBPtr *string
	if hasA {
		pidAPtr = &pidA
	}
	if hasB {
		pidBPtr = &pidB
	}

	normA, normB, same := h264profile.IsSameProfile(pidAPtr, pidBPtr)
	if !same {
		return codecMatch{kind: matchMismatch}
	}

	asymA := boolFlagParam(a.parameters, ParamLevelAsymmetryAllowed)
	asymB := boolFlagParam(b.parameters, ParamLevelAsymmetryAllowed)

	selected, err := h264profile.GenerateProfileLevelIDForAnswer(normA, asymA, normB, asymB)
	if err != nil {
		return codecMatch{kind: matchMismatch}
	}

	return codecMatch{kind: matchWithProfileLevelID, profileLevelID: selected}
}

func matchVP9(a, b codecToMatch, strict bool) codecMatch {
	if !strict {
		return codecMatch{kind: matchNoAugmentation}
	}
	profileA := intParam(a.parameters, ParamProfileID, 0)
	profileB := intParam(b.parameters, ParamProfileID, 0)
	if profileA != profileB {
		return codecMatch{kind: matchMismatch}
	}
	return codecMatch{kind: matchNoAugmentation}
}
