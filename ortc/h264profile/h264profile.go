// Package h264profile implements the RFC 6184 profile-level-id comparison
// and negotiation rules the H.264 matcher case in ortc needs: deciding
// whether two profile-level-id strings name the same profile, and picking
// the level to answer with given each side's level-asymmetry-allowed flag.
//
// Kept as its own package rather than inlined into the matcher, the way the
// reference mediasoup Go port keeps this concern in a sibling h264profile
// package instead of folding it into ortc.go.
package h264profile

import (
	"encoding/hex"
	"fmt"
)

// Profile identifies an H.264 encoding profile (RFC 6184 Table A-1),
// ignoring level.
type Profile int

const (
	ProfileConstrainedBaseline Profile = iota
	ProfileBaseline
	ProfileMain
	ProfileConstrainedHigh
	ProfileHigh
	ProfilePredictiveHigh444
)

// Level identifies an H.264 level. Values equal level*10 (e.g. Level3_1 ==
// 31) except Level1B, which shares level_idc 11 with Level1_1 and is
// disambiguated by the constraint_set3 flag.
type Level int

const (
	Level1B  Level = -1
	Level1   Level = 10
	Level1_1 Level = 11
	Level1_2 Level = 12
	Level1_3 Level = 13
	Level2   Level = 20
	Level2_1 Level = 21
	Level2_2 Level = 22
	Level3   Level = 30
	Level3_1 Level = 31
	Level3_2 Level = 32
	Level4   Level = 40
	Level4_1 Level = 41
	Level4_2 Level = 42
	Level5   Level = 50
	Level5_1 Level = 51
	Level5_2 Level = 52
)

// Constraint-set flags of the profile-iop byte and profile_idc values of
// each profile (RFC 6184 §8.1).
const (
	constraintSet0Flag byte = 0x80
	constraintSet1Flag byte = 0x40
	constraintSet2Flag byte = 0x20
	constraintSet3Flag byte = 0x10
	constraintSet4Flag byte = 0x08
	constraintSet5Flag byte = 0x04

	profileIdcConstrainedBaseline byte = 0x42
	profileIdcBaseline            byte = 0x42
	profileIdcMain                byte = 0x4d
	profileIdcConstrainedHigh     byte = 0x64
	profileIdcHigh                byte = 0x64
	profileIdcPredictiveHigh444   byte = 0xf4
)

// DefaultProfileLevelID is assumed when a side omits profile-level-id
// entirely, matching the conventional H.264 default of Baseline (no
// constraint flags set) at level 1.
const DefaultProfileLevelID = "42000a"

// parsed is a fully decoded profile-level-id.
type parsed struct {
	profile Profile
	level   Level
}

func parseProfileIdc(idc, iop byte) (Profile, error) {
	switch idc {
	case profileIdcBaseline:
		if iop&constraintSet1Flag != 0 {
			return ProfileConstrainedBaseline, nil
		}
		return ProfileBaseline, nil
	case profileIdcMain:
		return ProfileMain, nil
	case profileIdcHigh:
		switch {
		case iop&constraintSet4Flag != 0 && iop&constraintSet5Flag != 0:
			return ProfileConstrainedHigh, nil
		case iop&constraintSet4Flag == 0 && iop&constraintSet5Flag == 0:
			return ProfileHigh, nil
		default:
			return 0, fmt.Errorf("h264profile: invalid constraint flags for High profile_idc")
		}
	case profileIdcPredictiveHigh444:
		if iop&constraintSet0Flag == 0 {
			return ProfilePredictiveHigh444, nil
		}
		return 0, fmt.Errorf("h264profile: invalid constraint flags for PredictiveHigh444 profile_idc")
	default:
		return 0, fmt.Errorf("h264profile: unrecognized profile_idc 0x%02x", idc)
	}
}

func parseLevelIdc(idc byte, constraintSet3 bool) (Level, error) {
	switch idc {
	case 11:
		if constraintSet3 {
			return Level1B, nil
		}
		return Level1_1, nil
	case 10:
		return Level1, nil
	case 12:
		return Level1_2, nil
	case 13:
		return Level1_3, nil
	case 20:
		return Level2, nil
	case 21:
		return Level2_1, nil
	case 22:
		return Level2_2, nil
	case 30:
		return Level3, nil
	case 31:
		return Level3_1, nil
	case 32:
		return Level3_2, nil
	case 40:
		return Level4, nil
	case 41:
		return Level4_1, nil
	case 42:
		return Level4_2, nil
	case 50:
		return Level5, nil
	case 51:
		return Level5_1, nil
	case 52:
		return Level5_2, nil
	default:
		return 0, fmt.Errorf("h264profile: unrecognized level_idc %d", idc)
	}
}

func profileToIdcIop(p Profile) (idc, iop byte, ok bool) {
	switch p {
	case ProfileConstrainedBaseline:
		return profileIdcConstrainedBaseline, constraintSet0Flag | constraintSet1Flag | constraintSet2Flag, true
	case ProfileBaseline:
		return profileIdcBaseline, 0, true
	case ProfileMain:
		return profileIdcMain, 0, true
	case ProfileConstrainedHigh:
		return profileIdcConstrainedHigh, constraintSet4Flag | constraintSet5Flag, true
	case ProfileHigh:
		return profileIdcHigh, 0, true
	case ProfilePredictiveHigh444:
		return profileIdcPredictiveHigh444, 0, true
	default:
		return 0, 0, false
	}
}

func levelToIdc(l Level) (idc byte, constraintSet3 bool) {
	if l == Level1B {
		return 11, true
	}
	return byte(l), false
}

func parse(profileLevelID string) (parsed, error) {
	raw, err := hex.DecodeString(profileLevelID)
	if err != nil || len(raw) != 3 {
		return parsed{}, fmt.Errorf("h264profile: invalid profile-level-id %q", profileLevelID)
	}
	profile, err := parseProfileIdc(raw[0], raw[1])
	if err != nil {
		return parsed{}, err
	}
	level, err := parseLevelIdc(raw[2], raw[1]&constraintSet3Flag != 0)
	if err != nil {
		return parsed{}, err
	}
	return parsed{profile: profile, level: level}, nil
}

// ProfileLevelIDToString encodes a (profile, level) pair back into the
// lower-case 6-hex-digit wire form.
func ProfileLevelIDToString(profile Profile, level Level) (string, error) {
	idc, iop, ok := profileToIdcIop(profile)
	if !ok {
		return "", fmt.Errorf("h264profile: unknown profile %d", profile)
	}
	levelIdc, setC3 := levelToIdc(level)
	if setC3 {
		iop |= constraintSet3Flag
	}
	return hex.EncodeToString([]byte{idc, iop, levelIdc}), nil
}

// IsSameProfile reports whether a and b name the same H.264 profile
// (ignoring level), applying DefaultProfileLevelID to either side that is
// nil or empty. On success it returns the normalized (default-applied)
// profile-level-id strings that were compared.
func IsSameProfile(a, b *string) (normA, normB string, ok bool) {
	normA = DefaultProfileLevelID
	if a != nil && *a != "" {
		normA = *a
	}
	normB = DefaultProfileLevelID
	if b != nil && *b != "" {
		normB = *b
	}

	pa, err := parse(normA)
	if err != nil {
		return "", "", false
	}
	pb, err := parse(normB)
	if err != nil {
		return "", "", false
	}
	return normA, normB, pa.profile == pb.profile
}

// GenerateProfileLevelIDForAnswer picks the level to answer with given both
// sides' level-asymmetry-allowed flags, and returns the encoded
// profile-level-id string for the (shared) profile. When asymmetry is
// allowed by both sides the lower of the two levels is used; otherwise the
// remote's level is used, since the answer describes what the remote side
// (the receiver being negotiated with) will actually get.
func GenerateProfileLevelIDForAnswer(local string, localAsymmetryAllowed bool, remote string, remoteAsymmetryAllowed bool) (string, error) {
	localParsed, err := parse(local)
	if err != nil {
		return "", err
	}
	remoteParsed, err := parse(remote)
	if err != nil {
		return "", err
	}
	if localParsed.profile != remoteParsed.profile {
		return "", fmt.Errorf("h264profile: local and remote profiles differ")
	}

	level := remoteParsed.level
	if localAsymmetryAllowed && remoteAsymmetryAllowed {
		level = localParsed.level
		if remoteParsed.level < level {
			level = remoteParsed.level
		}
	}

	return ProfileLevelIDToString(localParsed.profile, level)
}
