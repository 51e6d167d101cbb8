package ortc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MediaKind is the coarse media type a codec or header extension applies to.
type MediaKind int

const (
	// MediaKindAudio marks an audio codec or extension.
	MediaKindAudio MediaKind = iota
	// MediaKindVideo marks a video codec or extension.
	MediaKindVideo
)

// String returns the lower-case wire form ("audio" / "video").
func (k MediaKind) String() string {
	switch k {
	case MediaKindAudio:
		return "audio"
	case MediaKindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its lower-case wire form.
func (k MediaKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the lower-case wire form back into a MediaKind.
func (k *MediaKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "audio":
		*k = MediaKindAudio
	case "video":
		*k = MediaKindVideo
	default:
		return fmt.Errorf("ortc: unknown media kind %q", s)
	}
	return nil
}

// MimeType is a tagged (kind, name) pair identifying a codec, e.g. "video/H264".
// RTX is a marker mime type: it pairs with a primary video codec via the `apt`
// parameter and is never itself a "media codec".
type MimeType struct {
	Kind MediaKind
	Name string
}

// IsRTX reports whether this mime type is the retransmission marker.
func (m MimeType) IsRTX() bool {
	return m.Kind == MediaKindVideo && strings.EqualFold(m.Name, "rtx")
}

// String renders the mime type in "<kind>/<name>" wire form.
func (m MimeType) String() string {
	return m.Kind.String() + "/" + m.Name
}

// MarshalJSON encodes the mime type as a "<kind>/<name>" string.
func (m MimeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a "<kind>/<name>" string into a MimeType.
func (m *MimeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("ortc: invalid mime type %q", s)
	}
	var kind MediaKind
	switch strings.ToLower(parts[0]) {
	case "audio":
		kind = MediaKindAudio
	case "video":
		kind = MediaKindVideo
	default:
		return fmt.Errorf("ortc: invalid mime type %q", s)
	}
	m.Kind = kind
	m.Name = parts[1]
	return nil
}

// Well-known mime types. Names follow the casing mediasoup/webrtc endpoints
// actually put on the wire (e.g. "H264", not "h264").
var (
	MimeTypeOpus           = MimeType{MediaKindAudio, "opus"}
	MimeTypePCMU           = MimeType{MediaKindAudio, "PCMU"}
	MimeTypePCMA           = MimeType{MediaKindAudio, "PCMA"}
	MimeTypeISAC           = MimeType{MediaKindAudio, "ISAC"}
	MimeTypeG722           = MimeType{MediaKindAudio, "G722"}
	MimeTypeCN             = MimeType{MediaKindAudio, "CN"}
	MimeTypeTelephoneEvent = MimeType{MediaKindAudio, "telephone-event"}

	MimeTypeVP8  = MimeType{MediaKindVideo, "VP8"}
	MimeTypeVP9  = MimeType{MediaKindVideo, "VP9"}
	MimeTypeH264 = MimeType{MediaKindVideo, "H264"}
	MimeTypeH265 = MimeType{MediaKindVideo, "H265"}
	MimeTypeRTX  = MimeType{MediaKindVideo, "rtx"}
)
