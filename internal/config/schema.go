package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.schema.json
var configSchemaJSON string

var configSchema = jsonschema.MustCompileString("config.schema.json", configSchemaJSON)

// ValidateDocument checks raw YAML against a compiled JSON schema.
func ValidateDocument(s *jsonschema.Schema, data []byte) error {
	doc, err := yamlToJSONValue(data)
	if err != nil {
		return err
	}
	return s.Validate(doc)
}

// yamlToJSONValue decodes YAML and re-encodes it through encoding/json so
// the validator sees JSON-shaped values.
func yamlToJSONValue(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
