package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for declarationWalker:
// - Enumerate top-level functions and classes with names and kinds
// - Emit methods and nested functions as their own descriptors
// - Report accurate 1-based start/end lines
// - Preserve byte-exact body text
// - Return *ParseError for malformed source
// - Handle empty source without declarations

const walkerSource = `import os

def top(x):
    return x + 1

class Greeter:
    def greet(self, name):
        def shout():
            return name.upper()
        return "hi " + shout()

def tail():
    pass
`

func TestWalker_EnumeratesDeclarations(t *testing.T) {
	t.Parallel()

	walker := newDeclarationWalker()
	decls, err := walker.Walk("walker.py", []byte(walkerSource))

	require.NoError(t, err)
	require.Len(t, decls, 5)

	byName := map[string]Declaration{}
	for _, d := range decls {
		byName[d.Name] = d
	}

	top := byName["top"]
	assert.Equal(t, KindFunction, top.Kind)
	assert.Equal(t, 3, top.StartLine)
	assert.Equal(t, 4, top.EndLine)

	greeter := byName["Greeter"]
	assert.Equal(t, KindClass, greeter.Kind)
	assert.Equal(t, 6, greeter.StartLine)
	assert.Equal(t, 10, greeter.EndLine)

	// Nested declarations are emitted in addition to their enclosing ones.
	greet := byName["greet"]
	assert.Equal(t, KindFunction, greet.Kind)
	assert.Equal(t, 7, greet.StartLine)

	shout := byName["shout"]
	assert.Equal(t, KindFunction, shout.Kind)
	assert.Equal(t, 8, shout.StartLine)
	assert.Equal(t, 9, shout.EndLine)
}

func TestWalker_BodyTextIsExact(t *testing.T) {
	t.Parallel()

	walker := newDeclarationWalker()
	decls, err := walker.Walk("walker.py", []byte(walkerSource))

	require.NoError(t, err)

	for _, d := range decls {
		if d.Name == "tail" {
			assert.Equal(t, "def tail():\n    pass", d.Body)
			return
		}
	}
	t.Fatal("tail should be extracted")
}

func TestWalker_MalformedSource(t *testing.T) {
	t.Parallel()

	walker := newDeclarationWalker()
	_, err := walker.Walk("broken.py", []byte("def broken(:\n    pass\n"))

	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "broken.py", parseErr.FilePath)
}

func TestWalker_EmptySource(t *testing.T) {
	t.Parallel()

	walker := newDeclarationWalker()
	decls, err := walker.Walk("empty.py", []byte(""))

	require.NoError(t, err)
	assert.Empty(t, decls)
}
