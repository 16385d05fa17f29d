// =============================================================================
// Route to PLN Converter - XML Writer
// =============================================================================
//
// This file renders an in-memory element tree as indented XML. It is a small
// hand-rolled writer rather than encoding/xml marshaling because the .PLN
// format wants a fixed layout (two-space indent, declaration on its own
// line, text content inline with its tags) that is simpler to produce
// directly than to coax out of struct tags.
//
// All attribute values and character data pass through escapeXML, which
// covers the five standard XML special characters.
//
// =============================================================================

package pln

import (
	"bytes"
	"fmt"
)

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the document tree. An element carries either Text or
// Children, not both; an element with neither renders self-closing.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []Element
}

// elem builds an element with text content.
func elem(name, text string) Element {
	return Element{Name: name, Text: text}
}

// render writes the document to a buffer: XML declaration (if requested)
// followed by the root element and its subtree.
func render(root Element, opts Options) []byte {
	var buffer bytes.Buffer

	if opts.IncludeXMLDeclaration {
		buffer.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	}

	writeElement(&buffer, root, opts.Indent, 0)

	return buffer.Bytes()
}

// writeElement writes one element and its subtree at the given nesting level.
func writeElement(buffer *bytes.Buffer, element Element, indent string, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	buffer.WriteString("<")
	buffer.WriteString(element.Name)

	for _, attr := range element.Attrs {
		buffer.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name, escapeXML(attr.Value)))
	}

	if len(element.Children) == 0 && element.Text == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if element.Text != "" {
		buffer.WriteString(escapeXML(element.Text))
	} else {
		buffer.WriteString("\n")

		for _, child := range element.Children {
			writeElement(buffer, child, indent, level+1)
		}

		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(element.Name)
	buffer.WriteString(">\n")
}

// escapeXML escapes the five XML special characters.
func escapeXML(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}
