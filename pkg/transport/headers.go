// Package transport performs the HTTP calls behind the SDK and normalizes
// gateway failures into typed errors.
package transport

// HTTP headers exchanged with the Paymodel gateway.
const (
	// PayerHeader carries the caller's Ethereum address. It is set on every
	// request and replaces the API key of conventional providers.
	PayerHeader = "X-Payer"
	// CostHeader is set by the gateway on chat completion responses and
	// reports the amount charged for the call. Value is a decimal string.
	CostHeader = "X-Cost"
	// BalanceHeader is set by the gateway on chat completion responses and
	// reports the payer balance remaining after the call. Value is a
	// decimal string.
	BalanceHeader = "X-Balance"
)

const contentTypeJSON = "application/json"
