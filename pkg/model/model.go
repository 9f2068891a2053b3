// Package model defines the data structures exchanged with a Paymodel
// gateway: chat messages, completions, streamed chunks, and token usage.
// All values are constructed once from gateway JSON and never mutated.
package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoAccounting is returned by CostAmount and BalanceAmount when the
// gateway did not include the corresponding accounting header.
var ErrNoAccounting = errors.New("accounting header not present on response")

// ChatMessage is a single conversation message sent to the gateway. The SDK
// does not interpret it; role and content pass through to the model provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message is the assistant message carried by a completion choice.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage reports token accounting for a completion. All counters are zero
// when the gateway omits them.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Choice is one completion alternative. FinishReason is nil until the model
// reports why it stopped.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason *string `json:"finish_reason"`
}

// ChatCompletion is the result of a non-streaming chat completion call.
// Cost and Balance come from the X-Cost / X-Balance response headers rather
// than the JSON body and are empty when the gateway does not report them.
type ChatCompletion struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
	Cost    string   `json:"-"`
	Balance string   `json:"-"`
}

// CostAmount parses the gateway-reported cost of this call as an exact
// decimal. Returns ErrNoAccounting when the header was absent.
func (c *ChatCompletion) CostAmount() (decimal.Decimal, error) {
	if c.Cost == "" {
		return decimal.Zero, ErrNoAccounting
	}
	return decimal.NewFromString(c.Cost)
}

// BalanceAmount parses the gateway-reported remaining balance as an exact
// decimal. Returns ErrNoAccounting when the header was absent.
func (c *ChatCompletion) BalanceAmount() (decimal.Decimal, error) {
	if c.Balance == "" {
		return decimal.Zero, ErrNoAccounting
	}
	return decimal.NewFromString(c.Balance)
}

// Delta is the incremental message fragment carried by a stream choice.
// Role is typically present only on the first chunk of a stream.
type Delta struct {
	Role    *string `json:"role,omitempty"`
	Content *string `json:"content,omitempty"`
}

// StreamChoice is one alternative within a streamed chunk.
type StreamChoice struct {
	Index        int     `json:"index"`
	Delta        Delta   `json:"delta"`
	FinishReason *string `json:"finish_reason"`
}

// ChatCompletionChunk is one incremental unit of a streamed chat completion.
// Object is always ObjectChunk.
type ChatCompletionChunk struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Model   string         `json:"model"`
	Choices []StreamChoice `json:"choices"`
}
