package tbl

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t *Table, o options) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(t.rows) == 0 {
		doc.Style = yaml.FlowStyle
	}
	for _, row := range t.rows {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, c := range t.columns {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Header},
				yamlScalar(row[i]),
			)
		}
		doc.Content = append(doc.Content, m)
	}

	enc := yaml.NewEncoder(w)
	indent := DefaultYAMLIndent
	if o.indent != "" {
		indent = min(max(len(o.indent), MinYAMLIndent), MaxYAMLIndent)
	}
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// yamlScalar maps a cell onto a tagged scalar. The encoder quotes string
// values that would otherwise resolve to another type.
func yamlScalar(v Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: Text(v)}
	switch v := v.(type) {
	case String:
		n.Tag = "!!str"
	case Integer:
		n.Tag = "!!int"
	case Float:
		n.Tag = "!!float"
		switch f := float64(v); {
		case math.IsNaN(f):
			n.Value = ".nan"
		case math.IsInf(f, 1):
			n.Value = ".inf"
		case math.IsInf(f, -1):
			n.Value = "-.inf"
		}
	case Boolean:
		n.Tag = "!!bool"
	case Null, nil:
		n.Tag = "!!null"
		n.Value = "null"
	default:
		panic(fmt.Sprintf("tbl: unknown value type %T", v))
	}
	return n
}
