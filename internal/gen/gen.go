package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"log"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/rawbytedev/minmsg/internal/common"
	"golang.org/x/tools/go/packages"
)

const (
	// ImportPath is the package the generated methods call into.
	ImportPath = "github.com/rawbytedev/minmsg"

	// FileSuffix names generated files, e.g. point_minmsg.go.
	FileSuffix = "_minmsg.go"

	header = "// Code generated by minmsggen. DO NOT EDIT."
)

var ErrUnsupported = errors.New("unsupported field type")

// Field encodings.
const (
	KindFixed    = "fixed"
	KindString   = "string"
	KindBytes    = "bytes"
	KindPackable = "packable"
)

// FieldPlan describes how one struct field is referenced in a shape.
type FieldPlan struct {
	Name string
	Kind string
	// Type is the field type as written relative to the package.
	Type string
	// Basic is the pointer type a named field is converted to, e.g. "*uint8".
	// Empty when the field is referenced as is.
	Basic string
	// Size is the fixed width, or -1.
	Size int
	// Len is the array length when the field is an array, else 0.
	Len int
	// Local is set for packable struct types generated alongside this one.
	Local string
}

// StructPlan is the ordered list of fields of a struct type.
type StructPlan struct {
	Name   string
	Fields []*FieldPlan
	// OwnShape is set when the type already declares Shape by hand; only
	// Pack and Unpack are generated for it.
	OwnShape bool
}

// Load loads the package matching pattern with type information.
func Load(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if pkg.Types == nil {
		if len(pkg.Errors) > 0 {
			return nil, pkg.Errors[0]
		}
		return nil, fmt.Errorf("package %q has no type information", pattern)
	}
	// Type errors are tolerated: the package may reference methods that
	// have not been generated yet.
	for _, e := range pkg.Errors {
		log.Printf("warning: %s", e)
	}
	return pkg, nil
}

// Generator writes Shape, Pack and Unpack methods for struct types of a
// single package.
type Generator struct {
	pkg  *types.Package
	fset *token.FileSet

	plans     map[string]*StructPlan
	bufferMap map[string]*bytes.Buffer
}

// New returns a Generator for pkg. fset, if not nil, is used to tell
// previously generated methods from hand-written ones.
func New(pkg *types.Package, fset *token.FileSet) *Generator {
	return &Generator{
		pkg:       pkg,
		fset:      fset,
		plans:     make(map[string]*StructPlan),
		bufferMap: make(map[string]*bytes.Buffer),
	}
}

// P prints a line of generated code for typeName.
func (g *Generator) P(typeName string, v ...any) {
	buf, ok := g.bufferMap[typeName]
	if !ok {
		buf = new(bytes.Buffer)
		g.bufferMap[typeName] = buf
	}
	fmt.Fprint(buf, v...)
	fmt.Fprintln(buf)
}

// Types returns the names of the generated types in sorted order.
func (g *Generator) Types() []string {
	return slices.Sorted(maps.Keys(g.bufferMap))
}

// FileName returns the output file name for typeName.
func FileName(typeName string) string {
	return strings.ToLower(typeName) + FileSuffix
}

// Source returns the formatted file for typeName.
func (g *Generator) Source(typeName string) []byte {
	buf := new(bytes.Buffer)
	fmt.Fprintln(buf, header)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "package %s\n\n", g.pkg.Name())
	fmt.Fprintf(buf, "import %q\n\n", ImportPath)
	if body, ok := g.bufferMap[typeName]; ok {
		buf.Write(body.Bytes())
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen; compile the output to see the error.
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		return buf.Bytes()
	}
	return src
}

// Plan returns the field plan of typeName, planning nested local struct
// types as well.
func (g *Generator) Plan(typeName string) (*StructPlan, error) {
	if p, ok := g.plans[typeName]; ok {
		return p, nil
	}
	tn, err := g.lookup(typeName)
	if err != nil {
		return nil, err
	}
	s, ok := tn.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %q is not a struct", typeName)
	}

	plan := &StructPlan{Name: typeName}
	if n, ok := tn.Type().(*types.Named); ok {
		plan.OwnShape = g.handWritten(n, "Shape")
	}
	g.plans[typeName] = plan
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		if f.Name() == "_" || reflect.StructTag(s.Tag(i)).Get("minmsg") == "-" {
			continue
		}
		fp, err := g.planField(f.Name(), f.Type())
		if err != nil {
			delete(g.plans, typeName)
			return nil, fmt.Errorf("%s.%s: %w", typeName, f.Name(), err)
		}
		plan.Fields = append(plan.Fields, fp)
	}
	return plan, nil
}

func (g *Generator) lookup(typeName string) (*types.TypeName, error) {
	object := g.pkg.Scope().Lookup(typeName)
	if object == nil {
		return nil, fmt.Errorf("typename %q doesn't exist", typeName)
	}
	tn, ok := object.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%q is not a typename", typeName)
	}
	return tn, nil
}

func (g *Generator) planField(name string, t types.Type) (*FieldPlan, error) {
	t = types.Unalias(t)
	fp := &FieldPlan{Name: name, Type: types.TypeString(t, types.RelativeTo(g.pkg)), Size: -1}
	if arr, ok := t.Underlying().(*types.Array); ok {
		elem, err := g.planField(name, arr.Elem())
		if err != nil {
			return nil, err
		}
		if elem.Len != 0 {
			return nil, fmt.Errorf("%w: nested array %s", ErrUnsupported, fp.Type)
		}
		if _, named := t.(*types.Named); named {
			return nil, fmt.Errorf("%w: named array %s", ErrUnsupported, fp.Type)
		}
		elem.Type = fp.Type
		elem.Len = int(arr.Len())
		return elem, nil
	}

	_, named := t.(*types.Named)
	switch u := t.Underlying().(type) {
	case *types.Basic:
		k, ok := common.KindByName(u.Name())
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, fp.Type)
		case k == reflect.String:
			fp.Kind = KindString
		case common.IsFixedKind(k):
			fp.Kind = KindFixed
			fp.Size = common.FixedSize(k)
		default:
			return nil, fmt.Errorf("%w: %s is platform-sized, use a sized integer", ErrUnsupported, fp.Type)
		}
		if named {
			fp.Basic = "*" + k.String()
		}
	case *types.Slice:
		if !types.Identical(types.Unalias(u.Elem()), types.Typ[types.Byte]) {
			return nil, fmt.Errorf("%w: %s, only []byte slices", ErrUnsupported, fp.Type)
		}
		fp.Kind = KindBytes
		if named {
			fp.Basic = "*[]byte"
		}
	case *types.Struct:
		n, ok := t.(*types.Named)
		if !ok {
			return nil, fmt.Errorf("%w: anonymous struct", ErrUnsupported)
		}
		fp.Kind = KindPackable
		if g.handWritten(n, "Pack", "Unpack") || g.handWritten(n, "Shape") {
			break
		}
		if n.Obj().Pkg() != g.pkg {
			return nil, fmt.Errorf("%w: %s implements neither Pack and Unpack nor Shape", ErrUnsupported, fp.Type)
		}
		fp.Local = n.Obj().Name()
		if _, err := g.Plan(fp.Local); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, fp.Type)
	}
	return fp, nil
}

// handWritten reports whether *n already has every named method and none of
// them was produced by this generator.
func (g *Generator) handWritten(n *types.Named, names ...string) bool {
	mset := types.NewMethodSet(types.NewPointer(n))
	for _, name := range names {
		sel := mset.Lookup(n.Obj().Pkg(), name)
		if sel == nil {
			return false
		}
		if _, ok := sel.Type().(*types.Signature); !ok {
			return false
		}
		if g.fset != nil && n.Obj().Pkg() == g.pkg {
			file := g.fset.Position(sel.Obj().Pos()).Filename
			if strings.HasSuffix(file, FileSuffix) {
				return false
			}
		}
	}
	return true
}

// refs returns the shape expressions for one field.
func (fp *FieldPlan) refs(recv string) []string {
	ref := func(expr string) string {
		if fp.Basic != "" {
			return fmt.Sprintf("(%s)(&%s)", fp.Basic, expr)
		}
		return "&" + expr
	}
	if fp.Len == 0 {
		return []string{ref(recv + "." + fp.Name)}
	}
	out := make([]string, fp.Len)
	for i := range out {
		out[i] = ref(fmt.Sprintf("%s.%s[%d]", recv, fp.Name, i))
	}
	return out
}

// Generate emits the methods for typeName and every local struct type it
// embeds by value.
func (g *Generator) Generate(typeName string) error {
	plan, err := g.Plan(typeName)
	if err != nil {
		return err
	}
	return g.generate(plan)
}

func (g *Generator) generate(plan *StructPlan) error {
	if _, ok := g.bufferMap[plan.Name]; ok {
		return nil
	}
	name := plan.Name
	if !plan.OwnShape {
		g.P(name, "// Shape returns the ordered field references of ", name, ".")
		g.P(name, "func (v *", name, ") Shape() []any {")
		g.P(name, "return []any{")
		for _, fp := range plan.Fields {
			for _, r := range fp.refs("v") {
				g.P(name, r, ",")
			}
		}
		g.P(name, "}")
		g.P(name, "}")
		g.P(name)
	}
	g.P(name, "// Pack writes the fields of ", name, " to w in Shape order.")
	g.P(name, "func (v *", name, ") Pack(w *minmsg.Writer) error {")
	g.P(name, "return minmsg.PackFields(w, v.Shape()...)")
	g.P(name, "}")
	g.P(name)
	g.P(name, "// Unpack reads the fields of ", name, " from r in Shape order.")
	g.P(name, "func (v *", name, ") Unpack(r *minmsg.Reader) error {")
	g.P(name, "return minmsg.UnpackFields(r, v.Shape()...)")
	g.P(name, "}")

	for _, fp := range plan.Fields {
		if fp.Local == "" {
			continue
		}
		if err := g.generate(g.plans[fp.Local]); err != nil {
			return err
		}
	}
	return nil
}
