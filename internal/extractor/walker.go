package extractor

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Declaration is one function or class definition found in a file, with its
// byte-exact body text and 1-based line range in the original source.
type Declaration struct {
	Name      string
	Kind      DeclKind
	StartLine int
	EndLine   int
	Body      string
}

// declarationWalker parses Python source into a tree-sitter tree and
// enumerates every function and class definition, nested ones included.
type declarationWalker struct {
	language *sitter.Language
}

func newDeclarationWalker() *declarationWalker {
	return &declarationWalker{
		language: sitter.NewLanguage(python.Language()),
	}
}

// Walk parses source and returns a flat ordered sequence of declarations in
// document order. Nested functions and classes are each emitted as their own
// entry in addition to their enclosing declaration, so callers can attribute
// a line to the innermost declaration that contains it.
//
// Malformed source yields a *ParseError; the caller decides how to recover.
func (w *declarationWalker) Walk(filePath string, source []byte) ([]Declaration, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(w.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{FilePath: filePath, Err: fmt.Errorf("parser returned no tree")}
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, &ParseError{FilePath: filePath, Err: fmt.Errorf("syntax errors in source")}
	}

	var decls []Declaration
	walkTree(rootNode, func(n *sitter.Node) bool {
		var kind DeclKind
		switch n.Kind() {
		case "function_definition":
			kind = KindFunction
		case "class_definition":
			kind = KindClass
		default:
			return true
		}

		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}

		decls = append(decls, Declaration{
			Name:      nodeText(nameNode, source),
			Kind:      kind,
			StartLine: int(n.StartPosition().Row) + 1,
			EndLine:   int(n.EndPosition().Row) + 1,
			Body:      nodeText(n, source),
		})
		return true
	})

	return decls, nil
}

// nodeText extracts the exact text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false stops descent into that node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

// splitLines splits source into lines without normalizing line endings, so
// snippets stay byte-identical to the file (minus the terminator).
func splitLines(source []byte) []string {
	lines := strings.Split(string(source), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
