package sdk

import (
	"context"

	"github.com/paymodel/paymodel-sdk-go/pkg/model"
	"github.com/paymodel/paymodel-sdk-go/pkg/stream"
	"github.com/paymodel/paymodel-sdk-go/pkg/transport"
)

const completionsPath = "/v1/chat/completions"

// ChatService groups chat-related calls under client.Chat.
type ChatService struct {
	Completions *CompletionService
}

// CompletionService creates chat completions against the gateway.
type CompletionService struct {
	transport *transport.Client
}

// Create performs a blocking chat completion call and shapes the response
// into a ChatCompletion. The gateway's X-Cost and X-Balance accounting
// headers, when present, are copied onto the result.
func (s *CompletionService) Create(ctx context.Context, req *model.CompletionRequest) (*model.ChatCompletion, error) {
	body, headers, err := s.transport.Post(ctx, completionsPath, req.Body(false))
	if err != nil {
		return nil, err
	}

	completion, err := model.ChatCompletionFromJSON(body)
	if err != nil {
		return nil, err
	}
	completion.Cost = headers.Get(transport.CostHeader)
	completion.Balance = headers.Get(transport.BalanceHeader)
	return completion, nil
}

// CreateStream performs a streaming chat completion call. Chunks are decoded
// lazily as the caller pulls them; the caller must Close the stream (ranging
// over All does this automatically) to release the connection.
func (s *CompletionService) CreateStream(ctx context.Context, req *model.CompletionRequest) (*stream.Stream, error) {
	body, err := s.transport.PostStream(ctx, completionsPath, req.Body(true))
	if err != nil {
		return nil, err
	}
	return stream.NewStream(body), nil
}
