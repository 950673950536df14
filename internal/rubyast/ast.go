// Package rubyast defines the syntax tree produced by the bundled Ruby
// subset parser. The node set is a closed tagged variant: rules match on
// concrete node types and treat anything they do not recognize as a
// non-match.
package rubyast

// Position is a point in a source file.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number in bytes, starting at 1
}

// Span is a half-open byte range [Start.Offset, End.Offset).
type Span struct {
	Start Position
	End   Position
}

// Node is implemented by every syntax tree node.
type Node interface {
	Span() Span
}

// File is the root of a parsed source file.
type File struct {
	Filename   string
	Source     []byte
	Statements []Node
	Comments   []Comment
}

func (f *File) Span() Span {
	if len(f.Statements) == 0 {
		return Span{}
	}
	return Span{
		Start: f.Statements[0].Span().Start,
		End:   f.Statements[len(f.Statements)-1].Span().End,
	}
}

// Snippet returns the source text covered by the given span.
func (f *File) Snippet(s Span) string {
	if s.Start.Offset < 0 || s.End.Offset > len(f.Source) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return string(f.Source[s.Start.Offset:s.End.Offset])
}

// Comment is a `#` comment. Trailing marks comments that share a line
// with code.
type Comment struct {
	Text     string // text after the leading '#'
	Trailing bool
	Loc      Span
}

func (c Comment) Span() Span { return c.Loc }

// ClassNode is a class declaration. Superclass is nil when the class has
// no explicit base. Name is nil for singleton class bodies (`class << self`).
type ClassNode struct {
	Name       *ConstNode
	Superclass Node
	Body       []Node
	Loc        Span
}

func (n *ClassNode) Span() Span { return n.Loc }

// ModuleNode is a module declaration.
type ModuleNode struct {
	Name *ConstNode
	Body []Node
	Loc  Span
}

func (n *ModuleNode) Span() Span { return n.Loc }

// DefNode is a method definition. Parameters are not modeled; only the
// body statements are kept.
type DefNode struct {
	MethodName string
	Body       []Node
	Loc        Span
}

func (n *DefNode) Span() Span { return n.Loc }

// ConstNode is a constant reference such as `Foo`, `Foo::Bar`, or `::Foo`.
// TopLevel is true when the path is anchored with a leading `::`.
type ConstNode struct {
	TopLevel bool
	Path     []string
	Loc      Span
}

func (n *ConstNode) Span() Span { return n.Loc }

// SimpleName returns the trailing identifier of the constant path.
func (n *ConstNode) SimpleName() string {
	if len(n.Path) == 0 {
		return ""
	}
	return n.Path[len(n.Path)-1]
}

// Bare reports whether the reference is a single identifier, either
// unqualified or top-level-qualified (`Foo` or `::Foo`).
func (n *ConstNode) Bare() bool { return len(n.Path) == 1 }

// SendNode is a method call. Receiver is nil for receiverless calls such
// as `raise Exception`.
type SendNode struct {
	Receiver Node
	Method   string
	Args     []Node
	Loc      Span
}

func (n *SendNode) Span() Span { return n.Loc }

// AssignNode is an assignment statement. Target is a ConstNode for
// constant assignments (`C = Class.new(X)`) or an IdentNode otherwise.
type AssignNode struct {
	Target Node
	Value  Node
	Loc    Span
}

func (n *AssignNode) Span() Span { return n.Loc }

// IdentNode is a bare lowercase identifier used as an expression.
type IdentNode struct {
	Name string
	Loc  Span
}

func (n *IdentNode) Span() Span { return n.Loc }

// LiteralKind distinguishes literal node flavors.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralSymbol
)

// LiteralNode is a string, integer, or symbol literal. Raw holds the
// source spelling including quotes or the leading colon.
type LiteralNode struct {
	Kind LiteralKind
	Raw  string
	Loc  Span
}

func (n *LiteralNode) Span() Span { return n.Loc }
