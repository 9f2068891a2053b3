package stream

import (
	"io"
	"iter"

	"github.com/paymodel/paymodel-sdk-go/pkg/model"
)

// Stream is a forward-only, non-restartable sequence of completion chunks
// read from an open gateway response. The caller drives network reads by
// pulling chunks; closing the stream abandons the connection, which is the
// only cancellation signal the gateway protocol has.
type Stream struct {
	dec  *Decoder
	body io.ReadCloser
}

// NewStream wraps an open response body.
func NewStream(body io.ReadCloser) *Stream {
	return &Stream{
		dec:  NewDecoder(body),
		body: body,
	}
}

// Next returns the next chunk, blocking on the network as needed. It returns
// io.EOF when the gateway signals completion.
func (s *Stream) Next() (*model.ChatCompletionChunk, error) {
	return s.dec.Next()
}

// Close releases the underlying connection. Safe to call after io.EOF.
func (s *Stream) Close() error {
	return s.body.Close()
}

// All returns a range-over-func iterator over the remaining chunks. The
// stream is closed when iteration stops, whether by exhaustion, error, or an
// early break. Any yielded error is terminal.
func (s *Stream) All() iter.Seq2[*model.ChatCompletionChunk, error] {
	return func(yield func(*model.ChatCompletionChunk, error) bool) {
		defer func() {
			_ = s.Close()
		}()

		for {
			chunk, err := s.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
}
