package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithDefaults(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte("class C < Exception; end\n"))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Inherit from StandardError instead of Exception.", issues[0].Message)
}

func TestNewWithConfigurationFile(t *testing.T) {
	t.Parallel()

	cfg := `name: rubylint
rules:
  inherit-exception:
    severity: warning
    enforced_style: runtime_error
  raise-exception:
    severity: off
`
	path := filepath.Join(t.TempDir(), ".rubylint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	engine, err := New(path)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte("class C < Exception; end\nraise Exception\n"))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Inherit from RuntimeError instead of Exception.", issues[0].Message)
}

func TestNewWithMissingConfigurationFile(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewWithInvalidStyle(t *testing.T) {
	t.Parallel()

	cfg := `rules:
  inherit-exception:
    severity: warning
    enforced_style: exotic
`
	path := filepath.Join(t.TempDir(), ".rubylint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	_, err := New(path)
	assert.Error(t, err)
}

func TestProcessPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("bad.rb", "class C < Exception\nend\n")
	write("good.rb", "class C < StandardError\nend\n")
	write("ignored.txt", "class C < Exception\nend\n")

	engine, err := New("")
	require.NoError(t, err)

	logger, _ := zap.NewProduction()
	issues, err := ProcessPath(context.Background(), logger, engine, dir, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, filepath.Join(dir, "bad.rb"), issues[0].Filename)
}

func TestProcessFilesSingleFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "errors.rb")
	require.NoError(t, os.WriteFile(path, []byte("raise Exception\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	logger, _ := zap.NewProduction()
	issues, err := ProcessFiles(context.Background(), logger, engine, []string{path}, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)

	sources := [][]byte{
		[]byte("class A < Exception; end\n"),
		[]byte("class B < StandardError; end\n"),
	}
	issues, err := ProcessSources(context.Background(), nil, engine, sources, ProcessSource)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()

	assert.True(t, hasDesiredExtension("lib/errors.rb"))
	assert.True(t, hasDesiredExtension("Rakefile.rake"))
	assert.True(t, hasDesiredExtension("pkg.gemspec"))
	assert.False(t, hasDesiredExtension("main.go"))
	assert.False(t, hasDesiredExtension("README.md"))
}
