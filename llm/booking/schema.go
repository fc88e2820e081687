package booking

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// SchemaFor renders the JSON schema of v, inlined and indented, for use in
// agent instructions. Decimal fields are described as plain numbers.
func SchemaFor(v any) string {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == decimalType {
				return &jsonschema.Schema{Type: "number"}
			}
			return nil
		},
	}

	s := r.Reflect(v)
	s.Version = ""
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}

// ExtractJSON pulls the JSON document out of a model reply. Replies often wrap
// the payload in a Markdown code fence or add a sentence around it.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if start := strings.Index(text, "```"); start != -1 {
		body := text[start+3:]
		if end := strings.Index(body, "```"); end != -1 {
			body = body[:end]
		}
		// drop a language tag such as "json", on its own line or not
		if i := strings.IndexAny(body, "{[\n"); i != -1 && !strings.ContainsRune(body[:i], '"') {
			body = body[i:]
		}
		return strings.TrimSpace(body)
	}

	open := strings.IndexAny(text, "{[")
	if open == -1 {
		return text
	}
	closer := byte('}')
	if text[open] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(text, closer)
	if end < open {
		return text
	}
	return text[open : end+1]
}
