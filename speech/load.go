// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// LoadRequest loads a request from a YAML or JSON file
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var req Request
	if err := parseRequest(data, strings.ToLower(filepath.Ext(path)), &req); err != nil {
		return nil, err
	}

	return &req, nil
}

func parseRequest(data []byte, ext string, req *Request) error {
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, req); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, req); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, req); err != nil {
			if err := json.Unmarshal(data, req); err != nil {
				return fmt.Errorf("failed to parse file (tried YAML and JSON): %w", err)
			}
		}
	}

	return nil
}
