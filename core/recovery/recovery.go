package recovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrMalformedResponse is returned when no JSON object can be located in the
// model output by any recovery strategy. It wraps the underlying parse error;
// use [errors.Is] to detect the class.
var ErrMalformedResponse = errors.New("formpipe: malformed model response")

// fence is the markdown code-fence marker.
const fence = "```"

// Object recovers a JSON object from raw model output.
//
// Strategies are attempted in order, first success wins:
//  1. parse the trimmed text directly
//  2. parse the substring inside the first ```json fence
//  3. parse the substring inside the first bare ``` fence
//
// A fence that opens but never closes runs to the end of the text. A parse
// failure inside a located fence is terminal for the call; no further
// strategy is attempted.
func Object(raw string) (map[string]any, error) {
	object, directErr := parseCandidate(strings.TrimSpace(raw))
	if directErr == nil {
		return object, nil
	}

	for _, tag := range []string{"json", ""} {
		candidate, found := extractFenced(raw, tag)
		if !found {
			continue
		}
		object, err := parseCandidate(candidate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return object, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, directErr)
}

// extractFenced returns the substring between the first fence marker carrying
// tag and the next closing fence. An unclosed fence runs to end of text.
func extractFenced(raw, tag string) (string, bool) {
	open := fence + tag
	start := strings.Index(raw, open)
	if start < 0 {
		return "", false
	}
	body := raw[start+len(open):]
	if end := strings.Index(body, fence); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body), true
}

// parseCandidate unmarshals candidate as a JSON object. If plain unmarshaling
// fails, the candidate is run through jsonrepair once and retried, which
// absorbs unquoted keys, single quotes, trailing commas and similar damage.
func parseCandidate(candidate string) (map[string]any, error) {
	var object map[string]any
	err := json.Unmarshal([]byte(candidate), &object)
	if err == nil {
		return object, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(candidate)
	if repairErr != nil {
		return nil, fmt.Errorf("unmarshal failed: %w (repair also failed: %v)", err, repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), &object); err != nil {
		return nil, fmt.Errorf("unmarshal of repaired JSON failed: %w", err)
	}
	return object, nil
}
