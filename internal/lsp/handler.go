package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lumen/internal/ast"
	"lumen/internal/parser"
	"lumen/token"
)

var log = commonlog.GetLogger("lumen.lsp")

// document is the last known state of an open file.
type document struct {
	source  string
	program *ast.Program // nil while the file does not parse
	err     error
}

// LumenHandler implements the LSP server handlers for Lumen source files.
type LumenHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

// NewLumenHandler creates and returns a new LumenHandler instance
func NewLumenHandler() *LumenHandler {
	return &LumenHandler{
		docs: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *LumenHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *LumenHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *LumenHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *LumenHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes its diagnostics.
func (h *LumenHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	doc := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertError(doc.source, doc.err))
	return nil
}

// TextDocumentDidChange reparses the document. Only full synchronisation is
// advertised, so the last change carries the whole text.
func (h *LumenHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := lastChangeText(params.ContentChanges)
	if !ok {
		return nil
	}

	doc := h.update(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertError(doc.source, doc.err))
	return nil
}

func (h *LumenHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	// Clear whatever the editor still shows for the file.
	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the language keywords and the functions
// declared in the last successfully parsed version of the document.
func (h *LumenHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := keywordCompletions()

	h.mu.RLock()
	doc := h.docs[params.TextDocument.URI]
	h.mu.RUnlock()

	if doc != nil && doc.program != nil {
		items = append(items, functionCompletions(doc.program)...)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *LumenHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	rawURI := params.TextDocument.URI

	h.mu.RLock()
	doc := h.docs[rawURI]
	h.mu.RUnlock()

	if doc == nil {
		path, err := uriToPath(string(rawURI))
		if err != nil {
			return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		doc = h.update(rawURI, string(content))
		sendDiagnosticNotification(ctx, rawURI, ConvertError(doc.source, doc.err))
	}

	// Tokens scanned before a scanner error are still highlighted.
	tokens, _ := parser.Tokenize(doc.source)
	semantic := collectSemanticTokens(doc.source, tokens, doc.program)

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(semantic),
	}, nil
}

func (h *LumenHandler) update(uri protocol.DocumentUri, source string) *document {
	doc := &document{source: source}

	program, err := parser.ParseSource(string(uri), source)
	if err != nil {
		log.Debugf("parse failed for %s: %s", uri, err)
		doc.err = err
	} else {
		doc.program = program
	}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	return doc
}

func lastChangeText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			return change.Text, true
		}
	}
	return "", false
}

func keywordCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword

	names := append([]string(nil), token.Keywords...)
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, protocol.CompletionItem{Label: name, Kind: &kind})
	}
	return items
}

func functionCompletions(program *ast.Program) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindFunction

	var items []protocol.CompletionItem
	for _, node := range program.Nodes {
		fn, ok := node.(*ast.FnDecl)
		if !ok {
			continue
		}
		detail := fn.String()
		if i := strings.Index(detail, " {"); i >= 0 {
			detail = detail[:i]
		}
		items = append(items, protocol.CompletionItem{
			Label:  fn.Name.Text,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
