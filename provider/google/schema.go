package google

import (
	"encoding/json"

	"google.golang.org/genai"
)

var schemaTypes = map[string]genai.Type{
	"string":  genai.TypeString,
	"number":  genai.TypeNumber,
	"integer": genai.TypeInteger,
	"boolean": genai.TypeBoolean,
	"array":   genai.TypeArray,
	"object":  genai.TypeObject,
}

// convertSchema translates a JSON Schema document into the genai
// Schema structure. Unsupported keywords are ignored; a schema that
// fails to parse yields nil, letting the API reject the declaration.
func convertSchema(raw json.RawMessage) *genai.Schema {
	if len(raw) == 0 {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return schemaFromMap(doc)
}

func schemaFromMap(doc map[string]any) *genai.Schema {
	if doc == nil {
		return nil
	}

	out := &genai.Schema{}

	if t, ok := doc["type"].(string); ok {
		out.Type = schemaTypes[t]
	}
	if d, ok := doc["description"].(string); ok {
		out.Description = d
	}
	out.Enum = stringSlice(doc["enum"])
	out.Required = stringSlice(doc["required"])

	if props, ok := doc["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if sub, ok := raw.(map[string]any); ok {
				out.Properties[name] = schemaFromMap(sub)
			}
		}
	}
	if items, ok := doc["items"].(map[string]any); ok {
		out.Items = schemaFromMap(items)
	}

	return out
}

func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
