package frame

import (
	"iter"
	"strings"
)

// SIP framing markers used by HPA terminals.
const (
	StartTag = "<SIP>"
	EndTag   = "</SIP>"
)

// Split yields every complete SIP frame contained in payload. A gateway may
// concatenate several responses into one payload; splitting on the end tag
// strips it, so each surviving segment is re-framed before it is yielded.
// Segments without a start tag are dropped, and a payload that carries no end
// tag at all yields nothing.
func Split(payload string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !strings.Contains(payload, EndTag) {
			return
		}
		for _, segment := range strings.Split(payload, EndTag) {
			if segment == "" {
				continue
			}
			if !strings.Contains(segment, StartTag) || strings.Contains(segment, EndTag) {
				continue
			}
			if !yield(segment + EndTag) {
				return
			}
		}
	}
}

// Frames collects Split into a slice.
func Frames(payload string) []string {
	var frames []string
	for f := range Split(payload) {
		frames = append(frames, f)
	}
	return frames
}
