// Package config provides configuration management for the Paymodel SDK.
//
// The minimum required configuration is the payer address:
//
//	cfg := &config.Config{
//		Payer: "0x94d04332C4f5273feF69c4a52D24f42a3aF1F207",
//	}
//
// # Payer Identity
//
// Paymodel gates access by crypto payments instead of API keys. The payer
// field is the Ethereum address whose on-gateway balance funds the calls.
// It must be a 0x-prefixed 40-hex-digit address; any letter case is
// accepted and the address is normalized to lowercase during validation.
//
// # Gateway Endpoint
//
// BaseURL defaults to the production gateway. Point it at a staging or
// self-hosted gateway as needed; trailing slashes are stripped:
//
//	cfg.BaseURL = "https://paymodel.example.com/"
//
// # HTTP Client
//
// The SDK performs no retries and enforces no timeouts. To set deadlines,
// supply a tuned client:
//
//	cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
//
// # Loading From File
//
// Load reads a YAML file into a validated Config:
//
//	cfg, err := config.Load("paymodel.yaml")
//
// with file contents such as:
//
//	payer: "0x94d04332c4f5273fef69c4a52d24f42a3af1f207"
//	base_url: "https://paymodel.example.com"
//	debug: true
//
// # Validation
//
// Always call Validate (sdk.New does it for you) to apply defaults and check
// required fields. An invalid payer fails with an error wrapping
// config.ErrInvalidPayer before any network activity.
//
// # Thread Safety
//
// Config instances should be created once and not modified after passing to
// sdk.New. The Config is read-only during SDK operations.
package config
