package rubyast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, code string) *File {
	t.Helper()
	file, err := Parse("test.rb", []byte(code))
	require.NoError(t, err)
	return file
}

func TestParseClassDeclaration(t *testing.T) {
	t.Parallel()

	file := parse(t, "class MyError < Exception\nend")
	require.Len(t, file.Statements, 1)

	class, ok := file.Statements[0].(*ClassNode)
	require.True(t, ok)
	require.NotNil(t, class.Name)
	assert.Equal(t, "MyError", class.Name.SimpleName())

	super, ok := class.Superclass.(*ConstNode)
	require.True(t, ok)
	assert.Equal(t, "Exception", super.SimpleName())
	assert.True(t, super.Bare())
	assert.Equal(t, "Exception", file.Snippet(super.Span()))
}

func TestParseClassWithoutSuperclass(t *testing.T) {
	t.Parallel()

	file := parse(t, "class Plain\nend")
	class := file.Statements[0].(*ClassNode)
	assert.Nil(t, class.Superclass)
}

func TestParseQualifiedConstPath(t *testing.T) {
	t.Parallel()

	file := parse(t, "class C < Gem::Net::LoadError\nend")
	class := file.Statements[0].(*ClassNode)
	super := class.Superclass.(*ConstNode)

	assert.Equal(t, []string{"Gem", "Net", "LoadError"}, super.Path)
	assert.Equal(t, "LoadError", super.SimpleName())
	assert.False(t, super.Bare())
	assert.False(t, super.TopLevel)
	assert.Equal(t, "Gem::Net::LoadError", file.Snippet(super.Span()))
}

func TestParseTopLevelConst(t *testing.T) {
	t.Parallel()

	file := parse(t, "class C < ::Exception\nend")
	super := file.Statements[0].(*ClassNode).Superclass.(*ConstNode)

	assert.True(t, super.TopLevel)
	assert.True(t, super.Bare())
	assert.Equal(t, "::Exception", file.Snippet(super.Span()))
}

func TestParseConstantAssignmentWithCall(t *testing.T) {
	t.Parallel()

	file := parse(t, "MyError = Class.new(Exception)")
	require.Len(t, file.Statements, 1)

	assign, ok := file.Statements[0].(*AssignNode)
	require.True(t, ok)

	target := assign.Target.(*ConstNode)
	assert.Equal(t, "MyError", target.SimpleName())

	send, ok := assign.Value.(*SendNode)
	require.True(t, ok)
	assert.Equal(t, "new", send.Method)

	recv := send.Receiver.(*ConstNode)
	assert.Equal(t, "Class", recv.SimpleName())
	require.Len(t, send.Args, 1)
	arg := send.Args[0].(*ConstNode)
	assert.Equal(t, "Exception", arg.SimpleName())
	assert.Equal(t, "Exception", file.Snippet(arg.Span()))
}

func TestParseCommandCall(t *testing.T) {
	t.Parallel()

	file := parse(t, `raise Exception, "boom"`)
	send, ok := file.Statements[0].(*SendNode)
	require.True(t, ok)

	assert.Nil(t, send.Receiver)
	assert.Equal(t, "raise", send.Method)
	require.Len(t, send.Args, 2)

	assert.IsType(t, &ConstNode{}, send.Args[0])
	lit := send.Args[1].(*LiteralNode)
	assert.Equal(t, LiteralString, lit.Kind)
}

func TestParseNestedDeclarations(t *testing.T) {
	t.Parallel()

	file := parse(t, `module Outer
  class Inner < LoadError
    def message
      "inner"
    end
  end
end`)

	mod := file.Statements[0].(*ModuleNode)
	assert.Equal(t, "Outer", mod.Name.SimpleName())
	require.Len(t, mod.Body, 1)

	class := mod.Body[0].(*ClassNode)
	assert.Equal(t, "Inner", class.Name.SimpleName())
	require.Len(t, class.Body, 1)

	def := class.Body[0].(*DefNode)
	assert.Equal(t, "message", def.MethodName)
	require.Len(t, def.Body, 1)
}

func TestParseSemicolonSeparatedBody(t *testing.T) {
	t.Parallel()

	file := parse(t, "class C < Exception; end")
	class := file.Statements[0].(*ClassNode)
	super := class.Superclass.(*ConstNode)
	assert.Equal(t, "Exception", super.SimpleName())
	assert.Empty(t, class.Body)
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	file := parse(t, `# standalone comment
class C < Exception # trailing comment
end`)

	require.Len(t, file.Comments, 2)
	assert.Equal(t, " standalone comment", file.Comments[0].Text)
	assert.False(t, file.Comments[0].Trailing)
	assert.Equal(t, " trailing comment", file.Comments[1].Text)
	assert.True(t, file.Comments[1].Trailing)
}

func TestParseSkipsUnmodeledBlocks(t *testing.T) {
	t.Parallel()

	file := parse(t, `if production?
  strict = true
end

class C < Exception
end`)

	require.Len(t, file.Statements, 1)
	class := file.Statements[0].(*ClassNode)
	assert.Equal(t, "C", class.Name.SimpleName())
}

func TestParseSingletonClassBody(t *testing.T) {
	t.Parallel()

	file := parse(t, `class << self
  def helper
  end
end`)

	class := file.Statements[0].(*ClassNode)
	assert.Nil(t, class.Name)
	assert.Nil(t, class.Superclass)
	require.Len(t, class.Body, 1)
}

func TestParseUnterminatedString(t *testing.T) {
	t.Parallel()

	_, err := Parse("test.rb", []byte(`raise "oops`))
	assert.Error(t, err)
}

func TestPositions(t *testing.T) {
	t.Parallel()

	file := parse(t, "class C < Exception\nend")
	super := file.Statements[0].(*ClassNode).Superclass.(*ConstNode)

	assert.Equal(t, 10, super.Span().Start.Offset)
	assert.Equal(t, 1, super.Span().Start.Line)
	assert.Equal(t, 11, super.Span().Start.Column)
	assert.Equal(t, 19, super.Span().End.Offset)
}
