// Package sdk exposes the high-level Paymodel client. It wires together the
// validated configuration, the identity-bearing HTTP transport, response
// shaping, and the streamed completion decoder.
package sdk

import (
	"github.com/paymodel/paymodel-sdk-go/pkg/config"
	"github.com/paymodel/paymodel-sdk-go/pkg/transport"
	"go.uber.org/zap"
)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Client is the Paymodel SDK entry point. The payer identity and gateway
// endpoint are fixed at construction. A Client is safe for concurrent use:
// calls share no mutable state and each owns its request/response lifecycle.
type Client struct {
	cfg       *config.Config
	transport *transport.Client

	// Chat mirrors the chat.completions layout of OpenAI-style SDKs so
	// existing call sites can switch providers with minimal edits.
	Chat *ChatService
}

// New validates the configuration and constructs a Client. No network
// activity happens here; a malformed payer address fails immediately with
// an error wrapping config.ErrInvalidPayer.
func New(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Debug {
		zap.L().Debug("paymodel client configured",
			zap.String("payer", cfg.Payer),
			zap.String("base_url", cfg.BaseURL))
	}

	c := &Client{
		cfg:       cfg,
		transport: transport.New(cfg.BaseURL, cfg.Payer, cfg.HTTPClient),
	}
	c.Chat = &ChatService{
		Completions: &CompletionService{transport: c.transport},
	}
	return c, nil
}

// Payer returns the normalized (lowercase) payer address.
func (c *Client) Payer() string {
	return c.cfg.Payer
}

// BaseURL returns the gateway endpoint the client is bound to.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}
