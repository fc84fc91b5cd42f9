package frame

import (
	"testing"
)

func TestSplit(t *testing.T) {
	payload := "<SIP><Response>SendSAF</Response></SIP>\n<SIP><Response>ApprovedSAF</Response></SIP>"
	frames := Frames(payload)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %q", len(frames), frames)
	}
	if frames[0] != "<SIP><Response>SendSAF</Response></SIP>" {
		t.Fatalf("unexpected first frame: %q", frames[0])
	}
	if frames[1] != "\n<SIP><Response>ApprovedSAF</Response></SIP>" {
		t.Fatalf("unexpected second frame: %q", frames[1])
	}
}

func TestSplitSkipsJunk(t *testing.T) {
	payload := "garbage</SIP><SIP><Response>Balance</Response></SIP>trailing"
	frames := Frames(payload)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d: %q", len(frames), frames)
	}
	if frames[0] != "<SIP><Response>Balance</Response></SIP>" {
		t.Fatalf("unexpected frame: %q", frames[0])
	}
}

func TestSplitEmpty(t *testing.T) {
	if frames := Frames(""); len(frames) != 0 {
		t.Fatalf("expected no frames, got %q", frames)
	}
}

func TestSplitWithoutEndTag(t *testing.T) {
	if frames := Frames("<SIP><Response>Balance</Response>"); len(frames) != 0 {
		t.Fatalf("expected no frames, got %q", frames)
	}
	if frames := Frames("no markers at all"); len(frames) != 0 {
		t.Fatalf("expected no frames, got %q", frames)
	}
}

func TestSplitTruncatedTail(t *testing.T) {
	// The last response lost its end tag; it is re-framed like the others.
	frames := Frames("<SIP><Response>Balance</Response></SIP><SIP><Response>Balance</Response>")
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %q", len(frames), frames)
	}
	if frames[1] != "<SIP><Response>Balance</Response></SIP>" {
		t.Fatalf("unexpected tail frame: %q", frames[1])
	}
}

func TestSplitStopsEarly(t *testing.T) {
	payload := "<SIP>a</SIP><SIP>b</SIP><SIP>c</SIP>"
	var seen int
	for range Split(payload) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("expected iteration to stop after 2 frames, saw %d", seen)
	}
}
