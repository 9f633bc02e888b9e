package prompt

import "strings"

// The custom template micro-syntax, preserved byte-exactly for
// compatibility with templates persisted by older clients:
//
//	{{identifier}}              interpolation
//	{{#if identifier}}...{{/if}} optional block
//
// The parser produces a typed AST so malformed input surfaces as a
// *ParseError instead of silently-wrong output.

// Node is one element of a parsed template.
type Node interface{ node() }

// Literal is a run of plain text.
type Literal struct {
	Text string
}

// Placeholder is a {{identifier}} interpolation slot.
type Placeholder struct {
	Name string
}

// Conditional is a {{#if identifier}}...{{/if}} block.
type Conditional struct {
	Name     string
	Children []Node
}

func (Literal) node()     {}
func (Placeholder) node() {}
func (Conditional) node() {}

const (
	openDelim  = "{{"
	closeDelim = "}}"
	ifPrefix   = "#if"
	endIfTag   = "/if"
)

// Parse tokenizes and parses a template string. A "{{" with no matching
// "}}" is kept as literal text (user templates are hand-edited, and a
// stray brace should not kill the whole preview); unbalanced conditional
// markers and empty identifiers are real errors.
func Parse(template string) ([]Node, error) {
	var root []Node
	// Conditional blocks may nest; the stack tracks open blocks.
	stack := []*Conditional{}

	appendNode := func(n Node) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, n)
			return
		}
		root = append(root, n)
	}

	pos := 0
	for pos < len(template) {
		open := strings.Index(template[pos:], openDelim)
		if open < 0 {
			appendNode(Literal{Text: template[pos:]})
			break
		}
		open += pos
		if open > pos {
			appendNode(Literal{Text: template[pos:open]})
		}

		closing := strings.Index(template[open+len(openDelim):], closeDelim)
		if closing < 0 {
			// No closing delimiter; the rest is literal.
			appendNode(Literal{Text: template[open:]})
			break
		}
		inner := template[open+len(openDelim) : open+len(openDelim)+closing]
		pos = open + len(openDelim) + closing + len(closeDelim)

		tag := strings.TrimSpace(inner)
		switch {
		case tag == endIfTag:
			if len(stack) == 0 {
				return nil, &ParseError{Offset: open, Message: "{{/if}} without matching {{#if}}"}
			}
			done := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			appendNode(*done)
		case strings.HasPrefix(tag, ifPrefix):
			name := strings.TrimSpace(strings.TrimPrefix(tag, ifPrefix))
			if name == "" {
				return nil, &ParseError{Offset: open, Message: "{{#if}} with empty condition"}
			}
			stack = append(stack, &Conditional{Name: name})
		case tag == "":
			return nil, &ParseError{Offset: open, Message: "empty placeholder"}
		default:
			appendNode(Placeholder{Name: tag})
		}
	}

	if len(stack) > 0 {
		return nil, &ParseError{
			Offset:  len(template),
			Message: "unclosed {{#if " + stack[len(stack)-1].Name + "}}",
		}
	}
	return root, nil
}
