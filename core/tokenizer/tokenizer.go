// Package tokenizer counts request tokens locally using the tiktoken
// encoding that matches a model identifier. Resolution is strict: an
// unrecognized model is a configuration error, never silently substituted
// with a default encoding, because a wrong count is worse than a loud
// failure.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"genbridge/genai"
)

// turnSeparator joins turn contents before encoding, so adjacent turns do not
// merge into a single token at the boundary.
const turnSeparator = "\n"

// Counter counts tokens under one model's encoding. A Counter is immutable
// and safe for concurrent use.
type Counter struct {
	model   string
	encoder *tiktoken.Tiktoken
}

// NewCounter resolves the model identifier to its tiktoken encoding.
// Returns an error when the model has no known encoding.
func NewCounter(model string) (*Counter, error) {
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("no token encoding for model %q: %w", model, err)
	}
	return &Counter{model: model, encoder: encoder}, nil
}

// Model returns the model identifier the counter was built for.
func (counter *Counter) Model() string {
	return counter.model
}

// CountText returns the number of tokens in a single text.
func (counter *Counter) CountText(text string) int {
	return len(counter.encoder.Encode(text, nil, nil))
}

// CountContents returns the token count over all turns' text parts, joined in
// turn order with a single separator between turns. The result is
// deterministic for identical input and always >= 0.
func (counter *Counter) CountContents(contents []genai.Content) int {
	var turns []string
	for _, content := range contents {
		var builder strings.Builder
		for _, part := range content.Parts {
			builder.WriteString(part.Text)
		}
		turns = append(turns, builder.String())
	}
	return counter.CountText(strings.Join(turns, turnSeparator))
}
