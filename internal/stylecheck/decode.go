package stylecheck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yacobolo/stylewarn"
	"gopkg.in/yaml.v3"
)

var errNotMapping = errors.New("top level must be a mapping of properties or of style names")

// decodeFile reads a style file and returns its assignments in document order.
func decodeFile(path string) ([]Assignment, error) {
	// #nosec G304 - path comes from configured scan patterns
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return DecodeStyles(path, content)
}

// DecodeStyles decodes a YAML or JSON style document. The document is
// either a mapping of property to value or a mapping of style name to such
// a mapping. Numbers, including .nan and .inf, become Numeric values,
// strings become Text values, and null or boolean values are skipped.
func DecodeStyles(filename string, content []byte) ([]Assignment, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errNotMapping
	}

	d := &decoder{
		filename: filename,
		lines:    strings.Split(string(bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))), "\n"),
	}
	d.walk(root, "", 0)
	return d.assignments, nil
}

type decoder struct {
	filename    string
	lines       []string
	assignments []Assignment
}

func (d *decoder) line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

func (d *decoder) walk(mapping *yaml.Node, style string, depth int) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}

		switch value.Kind {
		case yaml.MappingNode:
			// Style sheets nest one level: name -> properties.
			if depth == 0 {
				d.walk(value, key.Value, depth+1)
			}
			continue
		case yaml.ScalarNode:
		default:
			continue
		}

		v, ok := scalarValue(value)
		if !ok {
			continue
		}

		d.assignments = append(d.assignments, Assignment{
			File:     d.filename,
			Style:    style,
			Name:     key.Value,
			Value:    v,
			NamePos:  Position{Line: key.Line, Column: key.Column},
			ValuePos: Position{Line: value.Line, Column: value.Column},
			NameLine: d.line(key.Line),
			LineText: d.line(value.Line),
		})
	}
}

// scalarValue classifies a scalar the way a script host would see it.
func scalarValue(node *yaml.Node) (stylewarn.Value, bool) {
	switch node.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return stylewarn.Text(node.Value), true
		}
		return stylewarn.Numeric(f), true
	case "!!null", "!!bool":
		return stylewarn.Value{}, false
	}
	if node.Value == "" {
		return stylewarn.Value{}, false
	}
	return stylewarn.Text(node.Value), true
}
