// Package config defines the runtime configuration for the SDK: the payer
// identity, gateway endpoint, debug mode, and an optional custom HTTP client.
// It also provides validation and defaulting helpers.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultBaseURL is the production Paymodel gateway endpoint.
const DefaultBaseURL = "https://paymodel.bflynn4141.workers.dev"

// ErrInvalidPayer is returned by Validate when the payer identity is not an
// Ethereum address of the form 0x followed by 40 hexadecimal characters.
var ErrInvalidPayer = errors.New("payer must be a valid Ethereum address (0x + 40 hex chars)")

// Config holds all SDK settings required to talk to a Paymodel gateway.
// Use Validate to fill implicit defaults and to check for required fields.
type Config struct {
	// Payer is the Ethereum address used in place of an API key (required).
	// Any hex case is accepted; Validate stores the lowercase form.
	Payer string `json:"payer" yaml:"payer"`
	// BaseURL is the gateway endpoint. Trailing slashes are stripped.
	// Default: DefaultBaseURL.
	BaseURL string `json:"base_url" yaml:"base_url"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// HTTPClient overrides the HTTP client used for all requests. When nil,
	// http.DefaultClient is used. The SDK enforces no timeouts of its own;
	// supply a tuned client here to set deadlines.
	HTTPClient *http.Client `json:"-" yaml:"-"`
}

// Validate normalizes the configuration by lowercasing the payer address,
// applying the default BaseURL, and stripping trailing slashes. It verifies
// that the payer matches the 0x + 40 hex address form and returns an error
// wrapping ErrInvalidPayer otherwise. Validation is purely local; no network
// activity happens here.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Payer, "0x") || !common.IsHexAddress(c.Payer) {
		return fmt.Errorf("%w: got %q", ErrInvalidPayer, c.Payer)
	}
	c.Payer = strings.ToLower(c.Payer)

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	return nil
}
