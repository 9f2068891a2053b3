package stream

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

// collect drains the decoder and returns the content deltas of the first
// choice of each chunk.
func collect(t *testing.T, d *Decoder) []string {
	t.Helper()
	var deltas []string
	for {
		chunk, err := d.Next()
		if err == io.EOF {
			return deltas
		}
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == nil {
			deltas = append(deltas, "")
			continue
		}
		deltas = append(deltas, *chunk.Choices[0].Delta.Content)
	}
}

// TestDecoder_YieldsChunksUntilSentinel verifies the happy path: two data
// events, then the [DONE] sentinel, then a latched io.EOF.
func TestDecoder_YieldsChunksUntilSentinel(t *testing.T) {
	input := "data: {\"id\":\"x\",\"choices\":[{\"index\":0,\"delta\":{\"content\":\"he\"}}]}\n" +
		"data: {\"id\":\"x\",\"choices\":[{\"index\":0,\"delta\":{\"content\":\"llo\"}}]}\n" +
		"data: [DONE]\n"

	d := NewDecoder(strings.NewReader(input))
	deltas := collect(t, d)

	if len(deltas) != 2 || deltas[0] != "he" || deltas[1] != "llo" {
		t.Fatalf("unexpected deltas: %v", deltas)
	}

	// Termination is latched.
	if _, err := d.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF after sentinel, got %v", err)
	}
}

// TestDecoder_SentinelStopsBeforeTrailingInput verifies that nothing after
// the sentinel is produced even when more events follow it.
func TestDecoder_SentinelStopsBeforeTrailingInput(t *testing.T) {
	input := "data: [DONE]\n" +
		"data: {\"id\":\"late\",\"choices\":[{\"delta\":{\"content\":\"no\"}}]}\n"

	d := NewDecoder(strings.NewReader(input))
	if deltas := collect(t, d); len(deltas) != 0 {
		t.Fatalf("expected no chunks after sentinel, got %v", deltas)
	}
}

// TestDecoder_SkipsMalformedEvents verifies the leniency policy: an event
// that is not valid JSON is dropped without error and later events still
// produce chunks.
func TestDecoder_SkipsMalformedEvents(t *testing.T) {
	input := "data: not-json\n" +
		"data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\n" +
		"data: [DONE]\n"

	d := NewDecoder(strings.NewReader(input))
	deltas := collect(t, d)

	if len(deltas) != 1 || deltas[0] != "ok" {
		t.Fatalf("unexpected deltas: %v", deltas)
	}
}

// TestDecoder_IgnoresNonDataLines verifies that blank lines, comments, and
// other SSE fields fail the prefix check and are skipped.
func TestDecoder_IgnoresNonDataLines(t *testing.T) {
	input := "\n" +
		"   \n" +
		": keepalive comment\n" +
		"event: message\n" +
		"data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"hi\"}}]}\n" +
		"data: [DONE]\n"

	d := NewDecoder(strings.NewReader(input))
	deltas := collect(t, d)

	if len(deltas) != 1 || deltas[0] != "hi" {
		t.Fatalf("unexpected deltas: %v", deltas)
	}
}

// TestDecoder_EventSpansMultipleReads verifies that buffering works when an
// event arrives one byte per read.
func TestDecoder_EventSpansMultipleReads(t *testing.T) {
	input := "data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"split\"}}]}\n" +
		"data: [DONE]\n"

	d := NewDecoder(iotest.OneByteReader(strings.NewReader(input)))
	deltas := collect(t, d)

	if len(deltas) != 1 || deltas[0] != "split" {
		t.Fatalf("unexpected deltas: %v", deltas)
	}
}

// TestDecoder_UnterminatedLineNotFlushed verifies that a trailing line with
// no newline stays buffered and is never produced as a chunk.
func TestDecoder_UnterminatedLineNotFlushed(t *testing.T) {
	input := "data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"done\"}}]}\n" +
		"data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"partial\"}}]}" // no newline

	d := NewDecoder(strings.NewReader(input))
	deltas := collect(t, d)

	if len(deltas) != 1 || deltas[0] != "done" {
		t.Fatalf("unexpected deltas: %v", deltas)
	}
}

// TestDecoder_PropagatesReadErrors verifies that non-EOF reader failures
// surface to the caller.
func TestDecoder_PropagatesReadErrors(t *testing.T) {
	d := NewDecoder(iotest.ErrReader(io.ErrUnexpectedEOF))
	if _, err := d.Next(); err != io.ErrUnexpectedEOF {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}
