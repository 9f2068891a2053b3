package transport

import (
	"encoding/json"
	"fmt"
)

// UnknownErrorCode is used when the gateway error body carries no
// machine-readable code or cannot be parsed at all.
const UnknownErrorCode = "UNKNOWN"

// APIError is a non-2xx response from the Paymodel gateway. Code and Message
// come from the error body's "code" and "error" fields; Data holds the full
// parsed body, or nil when the body was not a JSON object. APIErrors are
// surfaced to the caller as-is and never retried by the SDK.
type APIError struct {
	Code    string
	Message string
	Data    map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paymodel: %s (code %s)", e.Message, e.Code)
}

// newAPIError maps an error response body onto an APIError. The status line
// serves as the message of last resort when the body carries none.
func newAPIError(status string, body []byte) *APIError {
	apiErr := &APIError{
		Code:    UnknownErrorCode,
		Message: fmt.Sprintf("gateway returned %s", status),
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil || parsed == nil {
		return apiErr
	}
	apiErr.Data = parsed

	if code, ok := parsed["code"].(string); ok && code != "" {
		apiErr.Code = code
	}
	if msg, ok := parsed["error"].(string); ok && msg != "" {
		apiErr.Message = msg
	}
	return apiErr
}
