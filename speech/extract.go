// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// DefaultPayloadQuery locates the audio in a generateContent REST response.
const DefaultPayloadQuery = ".candidates[0].content.parts[0].inlineData.data"

// ExtractPayload runs a jq query over a JSON response and returns the first
// string it yields. An empty query uses DefaultPayloadQuery.
func ExtractPayload(ctx context.Context, data []byte, query string) (string, error) {
	if query == "" {
		query = DefaultPayloadQuery
	}

	q, err := gojq.Parse(query)
	if err != nil {
		return "", fmt.Errorf("invalid jq expression %q: %w", query, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse JSON: %w", err)
	}

	iter := q.RunWithContext(ctx, doc)
	for {
		v, ok := iter.Next()
		if !ok {
			return "", ErrNoPayload
		}
		if err, ok := v.(error); ok {
			return "", fmt.Errorf("running jq expression %q: %w", query, err)
		}
		if s, ok := v.(string); ok && s != "" {
			return s, nil
		}
	}
}
