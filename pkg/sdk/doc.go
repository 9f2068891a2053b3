// Package sdk provides the high-level entry point for calling chat models
// through a Paymodel gateway.
//
// Paymodel is an OpenAI-shaped chat completion API gated by crypto payments:
// callers identify themselves with an Ethereum address instead of an API
// key, and every request carries that address in the X-Payer header. The
// client surface mirrors the chat.completions layout of the OpenAI SDK so
// existing code can switch providers with minimal edits.
//
// # Quick Start
//
//	import (
//		"github.com/paymodel/paymodel-sdk-go/pkg/config"
//		"github.com/paymodel/paymodel-sdk-go/pkg/model"
//		"github.com/paymodel/paymodel-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		client, err := sdk.New(&config.Config{
//			Payer: "0xYourAddress",
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		resp, err := client.Chat.Completions.Create(context.Background(),
//			&model.CompletionRequest{
//				Model: "llama-3.3-70b",
//				Messages: []model.ChatMessage{
//					{Role: "user", Content: "Hello!"},
//				},
//			})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(resp.Choices[0].Message.Content)
//	}
//
// # Streaming
//
// CreateStream returns a lazily-decoded, forward-only sequence of chunks:
//
//	s, err := client.Chat.Completions.CreateStream(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for chunk, err := range s.All() {
//		if err != nil {
//			log.Fatal(err)
//		}
//		if content := chunk.Choices[0].Delta.Content; content != nil {
//			fmt.Print(*content)
//		}
//	}
//
// The caller's consumption drives network reads; abandoning the stream
// (Close, or breaking out of All) is the only cancellation signal.
//
// # Account Operations
//
//	balance, err := client.Balance(ctx)               // GET /v1/balance
//	models, err := client.Models(ctx)                 // GET /v1/models
//	usage, err := client.Usage(ctx)                   // GET /v1/usage
//	receipt, err := client.Deposit(ctx, "0x...")      // POST /v1/deposit
//
// These return the gateway's JSON objects as untyped maps; their exact
// fields are gateway-defined.
//
// # Error Handling
//
// Gateway-rejected calls surface as *transport.APIError with the server's
// code and message:
//
//	_, err := client.Chat.Completions.Create(ctx, req)
//	var apiErr *transport.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == "INSUFFICIENT_FUNDS" {
//		// top up and retry at the call site
//	}
//
// The SDK never retries, logs errors for the caller, or enforces timeouts;
// recovery policy belongs to the application. Transport-level failures
// (DNS, TLS, refused connections) propagate as ordinary wrapped errors.
//
// # Thread Safety
//
// A Client is immutable after New and safe to share across goroutines.
package sdk
