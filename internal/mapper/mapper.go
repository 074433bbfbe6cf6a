// Package mapper locates JSON Schema failures in the YAML text they were
// reported against. The validator only knows a JSON pointer; this package
// walks the goccy/go-yaml AST to turn it into a line and column.
package mapper

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// MapErrorToSpans returns candidate spans for a failure at instancePath,
// ordered by confidence. The source must parse as YAML.
func MapErrorToSpans(src []byte, instancePath string, meta ErrorMeta) ([]Span, error) {
	segments, err := decodeJSONPointer(instancePath)
	if err != nil {
		return nil, err
	}

	file, err := parser.ParseBytes(src, 0)
	if err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return []Span{documentSpan()}, nil
	}
	root := file.Docs[0].Body

	node, parent := walk(root, segments)

	switch meta.Kind {
	case "type", "enum", "const", "minimum", "maximum", "minLength", "pattern", "format":
		if node != nil {
			return []Span{nodeSpan(node, 0.95, meta.Kind+": value")}, nil
		}

	case "additionalProperties":
		// The pointer names the object holding the unexpected key
		if node != nil && meta.Property != "" {
			if key := findKey(node, meta.Property); key != nil {
				return []Span{nodeSpan(key, 0.98, "additional property key")}, nil
			}
		}
		if node != nil {
			return []Span{nodeSpan(node, 0.6, "additionalProperties: object")}, nil
		}

	case "required":
		if node != nil {
			return []Span{insertionAnchor(node, meta.Property)}, nil
		}
		if parent != nil {
			return []Span{insertionAnchor(parent, meta.Property)}, nil
		}

	default:
		if node != nil {
			return []Span{nodeSpan(node, 0.8, "generic mapping")}, nil
		}
	}

	if spans := fallback(root, src, segments, meta); len(spans) > 0 {
		return spans, nil
	}
	return []Span{documentSpan()}, nil
}

// Locate returns the best span for f, or a document-level span when the
// source cannot be parsed
func Locate(src []byte, f Failure) Span {
	spans, err := MapErrorToSpans(src, f.Pointer, f.Meta)
	if err != nil || len(spans) == 0 {
		return documentSpan()
	}
	return spans[0]
}

// walk follows segments from root. It returns the node addressed by the
// last segment, nil if the path leaves the document, and the last node that
// was reached.
func walk(root ast.Node, segments []string) (node ast.Node, parent ast.Node) {
	current := root
	for _, segment := range segments {
		parent = current
		switch n := current.(type) {
		case *ast.MappingNode, *ast.MappingValueNode:
			var next ast.Node
			for _, mv := range mappingValues(n) {
				if keyMatches(mv.Key, segment) {
					next = mv.Value
					break
				}
			}
			if next == nil {
				return nil, parent
			}
			current = next
		case *ast.SequenceNode:
			idx := parseIndex(segment)
			if idx < 0 || idx >= len(n.Values) {
				return nil, parent
			}
			current = n.Values[idx]
		default:
			return nil, parent
		}
	}
	return current, parent
}

func mappingValues(n ast.Node) []*ast.MappingValueNode {
	switch m := n.(type) {
	case *ast.MappingNode:
		return m.Values
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{m}
	}
	return nil
}

func keyMatches(key ast.MapKeyNode, segment string) bool {
	switch k := key.(type) {
	case *ast.StringNode:
		return k.Value == segment
	case *ast.MappingKeyNode:
		return k.Value.GetToken().Value == segment
	}
	if tk := key.GetToken(); tk != nil {
		return tk.Value == segment
	}
	return false
}

func findKey(mappingNode ast.Node, key string) ast.Node {
	for _, mv := range mappingValues(mappingNode) {
		if keyMatches(mv.Key, key) {
			return mv.Key
		}
	}
	return nil
}

func nodeSpan(node ast.Node, confidence float64, reason string) Span {
	if tk := node.GetToken(); tk != nil {
		return tokenSpan(tk, confidence, reason)
	}
	return Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 1, Confidence: confidence / 2, Reason: reason + " (no position)"}
}

func tokenSpan(tk *token.Token, confidence float64, reason string) Span {
	pos := tk.Position
	return Span{
		StartLine:  pos.Line,
		StartCol:   pos.Column,
		EndLine:    pos.Line,
		EndCol:     pos.Column + len(tk.Value),
		Confidence: confidence,
		Reason:     reason,
	}
}

// insertionAnchor points below the last key of a mapping, where a missing
// property would be added
func insertionAnchor(mappingNode ast.Node, property string) Span {
	values := mappingValues(mappingNode)
	if len(values) > 0 {
		if tk := values[len(values)-1].Key.GetToken(); tk != nil {
			line, col := tk.Position.Line+1, tk.Position.Column
			return Span{
				StartLine:  line,
				StartCol:   col,
				EndLine:    line,
				EndCol:     col,
				Confidence: 0.75,
				Reason:     fmt.Sprintf("insertion anchor for missing property '%s'", property),
			}
		}
	}
	if tk := mappingNode.GetToken(); tk != nil {
		span := tokenSpan(tk, 0.7, fmt.Sprintf("mapping that lacks '%s'", property))
		span.EndCol = span.StartCol
		return span
	}
	return Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 1, Confidence: 0.3, Reason: "insertion anchor fallback"}
}

// fallback is used when the pointer does not resolve: a textual match for the
// property comes first, then the deepest ancestor that exists
func fallback(root ast.Node, src []byte, segments []string, meta ErrorMeta) []Span {
	var spans []Span
	if meta.Property != "" {
		spans = append(spans, searchText(src, meta.Property)...)
	}
	for depth := len(segments) - 1; depth > 0; depth-- {
		if node, _ := walk(root, segments[:depth]); node != nil {
			spans = append(spans, nodeSpan(node, 0.4, fmt.Sprintf("nearest ancestor at depth %d", depth)))
			break
		}
	}
	return spans
}

func searchText(src []byte, property string) []Span {
	var spans []Span
	for i, line := range strings.Split(string(src), "\n") {
		idx := strings.Index(line, property)
		if idx < 0 {
			continue
		}
		spans = append(spans, Span{
			StartLine:  i + 1,
			StartCol:   idx + 1,
			EndLine:    i + 1,
			EndCol:     idx + len(property) + 1,
			Confidence: 0.6,
			Reason:     fmt.Sprintf("text match for '%s'", property),
		})
	}
	return spans
}

func documentSpan() Span {
	return Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 1, Confidence: 0.2, Reason: "document-level fallback"}
}
