package stream

import (
	"io"
	"strings"
	"testing"
)

// closeRecorder wraps a reader and records whether Close was called.
type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

// TestStreamAll_YieldsAndCloses verifies that ranging over All produces the
// decoded chunks and releases the connection afterwards.
func TestStreamAll_YieldsAndCloses(t *testing.T) {
	input := "data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"he\"}}]}\n" +
		"data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"llo\"}}]}\n" +
		"data: [DONE]\n"
	body := &closeRecorder{Reader: strings.NewReader(input)}

	s := NewStream(body)
	var got string
	for chunk, err := range s.All() {
		if err != nil {
			t.Fatalf("iterator yielded error: %v", err)
		}
		if content := chunk.Choices[0].Delta.Content; content != nil {
			got += *content
		}
	}

	if got != "hello" {
		t.Fatalf("unexpected assembled content: %q", got)
	}
	if !body.closed {
		t.Fatal("body not closed after iteration")
	}
}

// TestStreamAll_ClosesOnEarlyBreak verifies that abandoning the iterator
// still releases the connection.
func TestStreamAll_ClosesOnEarlyBreak(t *testing.T) {
	input := "data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"a\"}}]}\n" +
		"data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"b\"}}]}\n" +
		"data: [DONE]\n"
	body := &closeRecorder{Reader: strings.NewReader(input)}

	s := NewStream(body)
	for range s.All() {
		break
	}

	if !body.closed {
		t.Fatal("body not closed after early break")
	}
}

// TestStreamNext_PullBased verifies the manual Next/Close consumption path.
func TestStreamNext_PullBased(t *testing.T) {
	input := "data: {\"id\":\"x\",\"choices\":[{\"delta\":{\"content\":\"only\"}}]}\n" +
		"data: [DONE]\n"
	body := &closeRecorder{Reader: strings.NewReader(input)}

	s := NewStream(body)
	chunk, err := s.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if *chunk.Choices[0].Delta.Content != "only" {
		t.Fatalf("unexpected chunk: %+v", chunk)
	}

	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}
