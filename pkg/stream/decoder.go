// Package stream decodes the server-sent-event wire format used by the
// Paymodel gateway for streamed chat completions: newline-delimited
// "data: <json>" events terminated by a literal "data: [DONE]" marker.
package stream

import (
	"bytes"
	"io"
	"strings"

	"github.com/paymodel/paymodel-sdk-go/pkg/model"
	"go.uber.org/zap"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// readChunkSize is the size of a single raw read from the underlying stream.
const readChunkSize = 4096

// Decoder turns a raw byte stream into a sequence of chat completion chunks.
// Input is buffered across reads, so one event may legitimately span several
// network reads as long as it ends before a newline is flushed. Lines without
// the "data: " prefix are ignored, the "[DONE]" sentinel terminates the
// sequence even when more input follows, and events that fail to parse as
// JSON are skipped rather than surfaced.
type Decoder struct {
	r    io.Reader
	buf  []byte
	read []byte
	done bool
}

// NewDecoder returns a Decoder consuming events from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:    r,
		read: make([]byte, readChunkSize),
	}
}

// Next returns the next decoded chunk. It returns io.EOF once the sequence
// is terminated, either by the [DONE] sentinel or by the underlying reader
// running out of input; after that it keeps returning io.EOF. A trailing
// line with no newline is never flushed.
func (d *Decoder) Next() (*model.ChatCompletionChunk, error) {
	if d.done {
		return nil, io.EOF
	}

	for {
		line, ok := d.nextLine()
		if !ok {
			if err := d.fill(); err != nil {
				if err == io.EOF {
					d.done = true
				}
				return nil, err
			}
			continue
		}

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		// Sentinel check comes first so [DONE] is never parsed as JSON.
		payload := line[len(dataPrefix):]
		if payload == doneSentinel {
			d.done = true
			return nil, io.EOF
		}

		chunk, err := model.ChunkFromJSON([]byte(payload))
		if err != nil {
			zap.L().Debug("skipping malformed stream event", zap.Error(err))
			continue
		}
		return chunk, nil
	}
}

// nextLine extracts one newline-terminated line from the buffer. Bytes with
// no newline yet stay buffered awaiting more input.
func (d *Decoder) nextLine() (string, bool) {
	i := bytes.IndexByte(d.buf, '\n')
	if i < 0 {
		return "", false
	}
	line := string(d.buf[:i])
	d.buf = d.buf[i+1:]
	return line, true
}

// fill appends the next raw read to the buffer.
func (d *Decoder) fill() error {
	n, err := d.r.Read(d.read)
	if n > 0 {
		d.buf = append(d.buf, d.read[:n]...)
		return nil
	}
	return err
}
