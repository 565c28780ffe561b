// Package langserver exposes the parser over the language server protocol:
// full-sync text documents, one diagnostic per parse failure, and completion
// from keywords plus the names in the last clean parse.
package langserver

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/RozhanMk/Compiler-Project/gsm/ast"
	"github.com/RozhanMk/Compiler-Project/gsm/parser"
)

const lsName = "gsm"

type LSPServer struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger

	mu   sync.Mutex
	docs map[string]*document
}

// document is the server-side state of one open file. prog is the tree from
// the most recent clean parse and survives later failed parses, so
// completion keeps working while the buffer is mid-edit.
type document struct {
	content []byte
	prog    *ast.Program
	err     *parser.SyntaxError
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
		log:     commonlog.GetLogger(lsName + ".langserver"),
		docs:    make(map[string]*document),
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCompletion: ls.textDocumentCompletion,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.log.Infof("%s %s ready", lsName, ls.version)
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.updateDocument(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.updateDocument(ctx, params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.updateDocument(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()
	ls.publish(ctx, params.TextDocument.URI, nil)
	return nil
}

func (ls *LSPServer) updateDocument(ctx *glsp.Context, uri string, content []byte) {
	ls.publish(ctx, uri, ls.applyChange(uri, content))
}

// applyChange reparses the buffer and records the outcome, returning the
// parse error, if any, for diagnostics.
func (ls *LSPServer) applyChange(uri string, content []byte) *parser.SyntaxError {
	path := uri
	if p, err := uriToPath(uri); err == nil {
		path = p
	}
	prog, err := parser.Parse(content, parser.WithFile(path))

	ls.mu.Lock()
	defer ls.mu.Unlock()

	doc, ok := ls.docs[uri]
	if !ok {
		doc = &document{}
		ls.docs[uri] = doc
	}
	doc.content = content
	if err == nil {
		doc.prog = prog
		doc.err = nil
		return nil
	}

	var synErr *parser.SyntaxError
	if !errors.As(err, &synErr) {
		ls.log.Errorf("parse %s: %v", path, err)
		return nil
	}
	doc.err = synErr
	return synErr
}

func (ls *LSPServer) publish(ctx *glsp.Context, uri string, synErr *parser.SyntaxError) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnosticsFor(synErr),
	})
}

// diagnosticsFor maps the single parse error onto protocol diagnostics. The
// slice is empty, never nil, so a clean parse clears stale squiggles on the
// client.
func diagnosticsFor(synErr *parser.SyntaxError) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if synErr == nil {
		return diags
	}

	pos := synErr.Position()
	start := protocol.Position{Line: zeroBased(pos.Line), Character: zeroBased(pos.Column)}
	end := start
	end.Character += uint32(len(synErr.Got.Literal))

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return append(diags, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  synErr.Description(),
	})
}

func zeroBased(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(n - 1)
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
