package gen

const prefixSize = 2

// FieldLayout describes the wire encoding of one field.
type FieldLayout struct {
	Field    string        `yaml:"field"`
	Type     string        `yaml:"type"`
	Encoding string        `yaml:"encoding"`
	Size     int           `yaml:"size,omitempty"`
	Count    int           `yaml:"count,omitempty"`
	Fields   []FieldLayout `yaml:"fields,omitempty"`
}

// TypeLayout is the positional wire layout of a struct type. MinSize is the
// encoded size with every string and blob empty; it is a lower bound when
// the type nests packables from other packages.
type TypeLayout struct {
	Type    string        `yaml:"type"`
	MinSize int           `yaml:"min_size"`
	Fields  []FieldLayout `yaml:"fields"`
}

// Layout returns the wire layout of typeName.
func (g *Generator) Layout(typeName string) (*TypeLayout, error) {
	plan, err := g.Plan(typeName)
	if err != nil {
		return nil, err
	}
	fields, size := g.layout(plan)
	return &TypeLayout{Type: typeName, MinSize: size, Fields: fields}, nil
}

func (g *Generator) layout(plan *StructPlan) ([]FieldLayout, int) {
	var out []FieldLayout
	total := 0
	for _, fp := range plan.Fields {
		fl := FieldLayout{Field: fp.Name, Type: fp.Type, Count: fp.Len}
		size := 0
		switch fp.Kind {
		case KindFixed:
			fl.Encoding = "fixed"
			fl.Size = fp.Size
			size = fp.Size
		case KindString, KindBytes:
			fl.Encoding = "prefixed"
			fl.Size = prefixSize
			size = prefixSize
		case KindPackable:
			fl.Encoding = "nested"
			if fp.Local != "" {
				fl.Fields, size = g.layout(g.plans[fp.Local])
			}
		}
		if fp.Len > 0 {
			size *= fp.Len
		}
		total += size
		out = append(out, fl)
	}
	return out, total
}
