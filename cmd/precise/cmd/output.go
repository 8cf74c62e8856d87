package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solarlune/precise"
	"github.com/solarlune/precise/internal/config"
	"gopkg.in/yaml.v3"
)

// entry is one named line of command output: a number, a tuple of numbers, a string, or a nested group of entries.
type entry struct {
	key    string
	floats []float64
	text   string
	items  []entry
}

func number(key string, f float64) entry {
	return entry{key: key, floats: []float64{f}}
}

func vector(key string, v precise.Vector3) entry {
	return entry{key: key, floats: []float64{v.X, v.Y, v.Z}}
}

func quaternion(key string, q precise.Quaternion) entry {
	return entry{key: key, floats: []float64{q.X, q.Y, q.Z, q.W}}
}

func text(key, value string) entry {
	return entry{key: key, text: value}
}

func group(key string, items ...entry) entry {
	return entry{key: key, items: items}
}

// rotationEntries describes a rotation the three ways the commands print one.
func rotationEntries(q precise.Quaternion) []entry {
	aa := q.ToAxisAngle()
	return []entry{
		quaternion("quaternion", q),
		vector("euler", q.ToEuler()),
		vector("axis", aa.Axis),
		number("angle", aa.Angle),
	}
}

type printer struct {
	out       io.Writer
	precision int
	format    string
}

func (p printer) formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', p.precision, 64)
	// Keep -0.000 from showing up for values that only missed zero by rounding
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

func (p printer) print(entries ...entry) error {
	if p.format == config.FormatYAML {
		return p.printYAML(entries)
	}
	p.printText(entries, "")
	return nil
}

func (p printer) printText(entries []entry, indent string) {

	width := 0
	for _, e := range entries {
		if len(e.key) > width {
			width = len(e.key)
		}
	}

	for _, e := range entries {

		switch {

		case e.items != nil:
			fmt.Fprintf(p.out, "%s%s:\n", indent, e.key)
			p.printText(e.items, indent+"  ")

		case e.floats != nil:
			values := make([]string, len(e.floats))
			for i, f := range e.floats {
				values[i] = p.formatFloat(f)
			}
			value := values[0]
			if len(values) > 1 {
				value = "{" + strings.Join(values, ", ") + "}"
			}
			fmt.Fprintf(p.out, "%s%-*s  %s\n", indent, width, e.key, value)

		default:
			fmt.Fprintf(p.out, "%s%-*s  %s\n", indent, width, e.key, e.text)

		}

	}

}

func (p printer) yamlNode(entries []entry) *yaml.Node {

	mapping := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range entries {

		key := &yaml.Node{Kind: yaml.ScalarNode, Value: e.key}

		var value *yaml.Node

		switch {

		case e.items != nil:
			value = p.yamlNode(e.items)

		case len(e.floats) == 1:
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: p.formatFloat(e.floats[0])}

		case e.floats != nil:
			value = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, f := range e.floats {
				value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: p.formatFloat(f)})
			}

		default:
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.text}

		}

		mapping.Content = append(mapping.Content, key, value)

	}

	return mapping

}

func (p printer) printYAML(entries []entry) error {
	encoder := yaml.NewEncoder(p.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(p.yamlNode(entries)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}
