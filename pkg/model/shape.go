package model

import (
	"encoding/json"
	"fmt"
)

const (
	// ObjectCompletion is the object tag of a non-streaming completion.
	ObjectCompletion = "chat.completion"
	// ObjectChunk is the object tag of a streamed completion chunk.
	ObjectChunk = "chat.completion.chunk"
)

// Wire mirrors of the gateway JSON. Pointer fields distinguish absent values
// from zero values so that defaults can be filled explicitly.

type completionWire struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Model   string       `json:"model"`
	Choices []choiceWire `json:"choices"`
	Usage   *Usage       `json:"usage"`
}

type choiceWire struct {
	Index        *int         `json:"index"`
	Message      *messageWire `json:"message"`
	FinishReason *string      `json:"finish_reason"`
}

type messageWire struct {
	Role    *string `json:"role"`
	Content *string `json:"content"`
}

type chunkWire struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []streamChoiceWire `json:"choices"`
}

type streamChoiceWire struct {
	Index        *int    `json:"index"`
	Delta        *Delta  `json:"delta"`
	FinishReason *string `json:"finish_reason"`
}

// ChatCompletionFromJSON builds a ChatCompletion from a raw gateway response
// body. Absent fields are default-filled: Object falls back to
// ObjectCompletion, choice indexes to their position, the message role to
// "assistant", and a missing usage block to zero counters. JSON of the wrong
// shape is reported as a parse error, never a panic. Shaping is pure: the
// same input always yields a field-by-field equal result.
func ChatCompletionFromJSON(data []byte) (*ChatCompletion, error) {
	var w completionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("malformed completion body: %w", err)
	}

	out := &ChatCompletion{
		ID:      w.ID,
		Object:  w.Object,
		Model:   w.Model,
		Choices: make([]Choice, 0, len(w.Choices)),
	}
	if out.Object == "" {
		out.Object = ObjectCompletion
	}

	for i, cw := range w.Choices {
		ch := Choice{
			Index:        i,
			Message:      Message{Role: "assistant"},
			FinishReason: cw.FinishReason,
		}
		if cw.Index != nil {
			ch.Index = *cw.Index
		}
		if cw.Message != nil {
			if cw.Message.Role != nil {
				ch.Message.Role = *cw.Message.Role
			}
			if cw.Message.Content != nil {
				ch.Message.Content = *cw.Message.Content
			}
		}
		out.Choices = append(out.Choices, ch)
	}

	if w.Usage != nil {
		out.Usage = *w.Usage
	}
	return out, nil
}

// ChunkFromJSON builds a ChatCompletionChunk from one decoded stream event
// payload. Object is always ObjectChunk regardless of the payload; choice
// indexes default to their position.
func ChunkFromJSON(data []byte) (*ChatCompletionChunk, error) {
	var w chunkWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("malformed chunk payload: %w", err)
	}

	out := &ChatCompletionChunk{
		ID:      w.ID,
		Object:  ObjectChunk,
		Model:   w.Model,
		Choices: make([]StreamChoice, 0, len(w.Choices)),
	}
	for i, cw := range w.Choices {
		sc := StreamChoice{Index: i, FinishReason: cw.FinishReason}
		if cw.Index != nil {
			sc.Index = *cw.Index
		}
		if cw.Delta != nil {
			sc.Delta = *cw.Delta
		}
		out.Choices = append(out.Choices, sc)
	}
	return out, nil
}
