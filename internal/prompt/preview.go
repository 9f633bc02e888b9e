package prompt

import "strings"

// Preview compiles a template string against a value map for display in
// the builder. Conditional blocks are stripped, not evaluated: every
// optional section renders with its sample data regardless of truthiness.
// The preview is illustrative; a real run with partial values would elide
// empty optional sections (see Generate). That divergence is deliberate,
// so the builder always shows the complete shape of the template.
func Preview(template string, values map[string]string) (string, error) {
	nodes, err := Parse(template)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	renderNodes(&b, nodes, values)
	return b.String(), nil
}

func renderNodes(b *strings.Builder, nodes []Node, values map[string]string) {
	for _, n := range nodes {
		switch node := n.(type) {
		case Literal:
			b.WriteString(node.Text)
		case Placeholder:
			b.WriteString(values[node.Name])
		case Conditional:
			renderNodes(b, node.Children, values)
		}
	}
}

// SampleValues is the fixed data set the builder previews with when the
// caller supplies none.
func SampleValues() map[string]string {
	return map[string]string{
		"task":        "Write a launch announcement for our new online course",
		"context":     "The course teaches small business owners how to write effective AI prompts. It launches next Monday at $97.",
		"role":        "an experienced marketing copywriter",
		"audience":    "small business owners new to AI tools",
		"tone":        "friendly",
		"format":      "paragraphs",
		"length":      "medium",
		"examples":    "Example: \"Meet your new writing partner. Our course shows you exactly how...\"",
		"constraints": "Avoid hype words. Use US spelling.",
	}
}
