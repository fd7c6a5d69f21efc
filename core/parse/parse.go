package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// previewLimit caps the payload excerpt embedded in parse errors.
const previewLimit = 200

// ParseArguments decodes a raw tool-call argument payload into a map.
// An empty or whitespace-only payload decodes to an empty map, matching
// providers that stream no argument fragments for zero-argument functions.
//
// Decoding is attempted strictly first. If strict decoding fails the payload
// is run through jsonrepair and decoded again; only when both attempts fail
// is an error returned, carrying a preview of the offending payload.
func ParseArguments(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err == nil {
		return args, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(raw)
	if repairErr != nil {
		return nil, fmt.Errorf("unparseable tool-call arguments (repair failed: %v): %s", repairErr, preview(raw))
	}

	if err := json.Unmarshal([]byte(repaired), &args); err != nil {
		return nil, fmt.Errorf("unparseable tool-call arguments after repair: %w: %s", err, preview(raw))
	}
	return args, nil
}

func preview(raw string) string {
	if len(raw) <= previewLimit {
		return raw
	}
	return raw[:previewLimit] + "..."
}
