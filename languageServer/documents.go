package languageServer

import (
	"context"
	"net/url"
	"path/filepath"

	"github.com/masm-tools/masmtool/masm"
	"github.com/sourcegraph/jsonrpc2"
)

type document struct {
	uri        DocumentUri
	languageID string
	version    int
	text       string
}

// applyChange applies one content change. Ranges are in protocol positions.
func (d *document) applyChange(change TextDocumentContentChangeEvent) {
	if change.Range == nil {
		d.text = change.Text
		return
	}
	start := masm.OffsetAt(d.text, change.Range.Start)
	end := masm.OffsetAt(d.text, change.Range.End)
	if end < start {
		start, end = end, start
	}
	d.text = d.text[:start] + change.Text + d.text[end:]
}

// uriToPath converts a file URI into a local path; other URIs are returned as is.
func uriToPath(uri DocumentUri) string {
	u, err := url.Parse(string(uri))
	if err != nil || u.Scheme != "file" {
		return string(uri)
	}
	p := u.Path
	// file:///c:/dir/file.asm
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	if u.Host != "" {
		p = "//" + u.Host + p
	}
	return filepath.FromSlash(p)
}

func (s *Server) getDocument(uri DocumentUri) (document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[uri]
	if !ok {
		return document{}, false
	}
	return *doc, true
}

func (s *Server) documentOpenNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidOpenTextDocumentParams{}
	if err := decodeParams(req, &decodedParams); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	item := decodedParams.TextDocument
	s.mu.Lock()
	s.documents[item.URI] = &document{
		uri:        item.URI,
		languageID: item.LanguageID,
		version:    item.Version,
		text:       item.Text,
	}
	s.mu.Unlock()
}

func (s *Server) documentCloseNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidCloseTextDocumentParams{}
	if err := decodeParams(req, &decodedParams); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	s.mu.Lock()
	delete(s.documents, decodedParams.TextDocument.URI)
	// only keep settings for open documents
	delete(s.settingsCache, decodedParams.TextDocument.URI)
	s.mu.Unlock()
}

func (s *Server) documentChangeNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeTextDocumentParams{}
	if err := decodeParams(req, &decodedParams); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[decodedParams.TextDocument.URI]
	if !ok {
		return
	}
	for _, change := range decodedParams.ContentChanges {
		doc.applyChange(change)
	}
	doc.version = decodedParams.TextDocument.Version
}

// documentDiagnostics answers a diagnostics pull. The linter runs outside the
// read loop; unknown documents and disabled diagnostics give an empty report.
func (s *Server) documentDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentDiagnosticsParams{}
	if err := decodeParams(req, &decodedParams); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	doc, ok := s.getDocument(decodedParams.TextDocument.URI)
	if !ok {
		conn.Reply(ctx, req.ID, DocumentDiagnosticsReport{Kind: "full", Items: []masm.Diagnostic{}})
		return
	}

	s.mu.Lock()
	l := s.linter
	s.mu.Unlock()

	go func() {
		ctx := context.Background()
		settings := s.documentSettings(ctx, conn, doc.uri)
		items := []masm.Diagnostic{}
		if settings.EnableDiagnostics {
			items = l.Lint(ctx, string(doc.uri), uriToPath(doc.uri), doc.text, settings.SecondarySeverity())
		}
		conn.Reply(ctx, req.ID, DocumentDiagnosticsReport{Kind: "full", Items: items})
	}()
}
