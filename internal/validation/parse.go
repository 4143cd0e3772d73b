package validation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a CV file that parsed as YAML but has not been validated yet
type Document struct {
	Path    string
	Content []byte
	Data    map[string]any
}

// ParseFile reads and parses a YAML CV file
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}

	doc, err := Parse(content)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse parses YAML content into a Document. The top level must be a mapping.
func Parse(content []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, &SyntaxError{Message: "failed to parse YAML", Cause: err}
	}
	if raw == nil {
		return nil, &SyntaxError{Message: "document is empty"}
	}

	normalized, err := normalize(raw)
	if err != nil {
		return nil, &SyntaxError{Message: "unsupported YAML structure", Cause: err}
	}

	data, ok := normalized.(map[string]any)
	if !ok {
		return nil, &SyntaxError{Message: fmt.Sprintf("top level must be a mapping, got %T", raw)}
	}

	return &Document{Content: content, Data: data}, nil
}

// normalize converts yaml.v3 output into JSON-compatible values so the schema
// loader can marshal it. Non-string mapping keys are rendered with %v.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprintf("%v", k)] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []byte:
		return nil, fmt.Errorf("binary values are not supported")
	default:
		return val, nil
	}
}
