package model

// CompletionRequest describes a chat completion call. Extra carries
// provider-specific passthrough options (temperature, max_tokens, ...);
// on a key collision an Extra entry overrides the fixed fields, matching
// the gateway's documented merge order.
type CompletionRequest struct {
	Model    string
	Messages []ChatMessage
	Extra    map[string]any
}

// Body assembles the JSON request body with the given stream flag. Nil
// Messages are sent as an empty array, not null.
func (r *CompletionRequest) Body(stream bool) map[string]any {
	messages := r.Messages
	if messages == nil {
		messages = []ChatMessage{}
	}

	body := map[string]any{
		"model":    r.Model,
		"messages": messages,
		"stream":   stream,
	}
	for k, v := range r.Extra {
		body[k] = v
	}
	return body
}
