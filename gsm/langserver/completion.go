package langserver

import (
	"sort"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
)

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	ls.mu.Lock()
	var prog *ast.Program
	if doc, ok := ls.docs[params.TextDocument.URI]; ok {
		prog = doc.prog
	}
	ls.mu.Unlock()

	var items []protocol.CompletionItem
	keywordKind := protocol.CompletionItemKindKeyword
	for _, name := range ast.Keywords() {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &keywordKind,
		})
	}
	variableKind := protocol.CompletionItemKindVariable
	for _, name := range identifiers(prog) {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &variableKind,
		})
	}
	return items, nil
}

// identCollector gathers every place a name can appear: declaration lists,
// identifier leaves, increment targets and boolean atoms.
type identCollector struct {
	ast.BaseVisitor
	seen map[string]bool
}

func (c *identCollector) VisitDeclaration(n *ast.Declaration) any {
	for _, name := range n.Names {
		c.seen[name] = true
	}
	return nil
}

func (c *identCollector) VisitFinal(n *ast.Final) any {
	if n.Kind == ast.FinalIdent {
		c.seen[n.Text] = true
	}
	return nil
}

func (c *identCollector) VisitUnaryOp(n *ast.UnaryOp) any {
	c.seen[n.Name] = true
	return nil
}

func (c *identCollector) VisitComparison(n *ast.Comparison) any {
	if n.Op == ast.IdentRef {
		c.seen[n.Text] = true
	}
	return nil
}

// identifiers lists the distinct names in the tree, sorted.
func identifiers(prog *ast.Program) []string {
	if prog == nil {
		return nil
	}
	c := &identCollector{seen: make(map[string]bool)}
	ast.Walk(c, prog)

	names := make([]string, 0, len(c.seen))
	for name := range c.seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
