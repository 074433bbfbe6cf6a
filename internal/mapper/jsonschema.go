package mapper

import (
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Failures flattens a validation error into its leaf causes, in the order the
// validator reported them
func Failures(err *jsonschema.ValidationError) []Failure {
	var out []Failure
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, failureOf(e))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)
	return out
}

func failureOf(e *jsonschema.ValidationError) Failure {
	meta := ErrorMeta{Message: e.ErrorKind.LocalizedString(printer)}
	if path := e.ErrorKind.KeywordPath(); len(path) > 0 {
		meta.Kind = path[len(path)-1]
	}
	switch k := e.ErrorKind.(type) {
	case *kind.AdditionalProperties:
		if len(k.Properties) > 0 {
			meta.Property = k.Properties[0]
		}
	case *kind.Required:
		if len(k.Missing) > 0 {
			meta.Property = k.Missing[0]
		}
	}
	return Failure{Pointer: encodeJSONPointer(e.InstanceLocation), Meta: meta}
}
