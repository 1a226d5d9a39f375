package main

import (
	"context"
	"errors"
	"sync"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/parse"
	"github.com/adf-format/go-adf/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	doc     *adf.Document
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	// lenient parse keeps a usable document plus its problems
	doc, err := parse.Parse([]byte(content))
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		doc:     doc,
		err:     err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.err != nil {
		pos := token.Pos{Line: 1}
		var terr *token.TokenizeErr
		if errors.As(doc.err, &terr) {
			pos = terr.Pos
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    lineRange(doc.content, pos.Line),
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   "adf",
		})
		return diagnostics
	}
	for _, diag := range doc.doc.Diagnostics() {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    lineRange(doc.content, diag.Pos.Line),
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  diag.Err.Error(),
			Source:   "adf",
		})
	}
	return diagnostics
}

// lineRange spans one whole 1-based source line.
func lineRange(content string, line int) protocol.Range {
	if line < 1 {
		line = 1
	}
	length := lineLen(content, line)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line - 1), Character: 0},
		End:   protocol.Position{Line: uint32(line - 1), Character: uint32(length)},
	}
}

func lineLen(content string, line int) int {
	cur, n := 1, 0
	for _, r := range content {
		if r == '\n' {
			if cur == line {
				return n
			}
			cur++
			n = 0
			continue
		}
		n++
	}
	if cur == line {
		return n
	}
	return 0
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// full document replacement
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
