package languageServer

import (
	"context"
	"encoding/json"

	"github.com/masm-tools/masmtool/masm"
	"github.com/sourcegraph/jsonrpc2"
)

func completionKind(k masm.EntryKind) CompletionItemKind {
	switch k {
	case masm.KindRegister:
		return CompletionItemKindVariable
	case masm.KindOperator:
		return CompletionItemKindOperator
	case masm.KindType:
		return CompletionItemKindTypeParameter
	}
	return CompletionItemKindKeyword
}

func completionItems() []CompletionItem {
	entries := masm.All()
	items := make([]CompletionItem, len(entries))
	for i, e := range entries {
		items[i] = CompletionItem{
			Label:         e.Name,
			Kind:          completionKind(e.Kind),
			Detail:        e.Detail,
			Documentation: e.Documentation,
		}
	}
	return items
}

// the same static list is offered regardless of position
func (s *Server) completionRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	conn.Reply(ctx, req.ID, completionItems())
}

func (s *Server) completionResolveRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var item json.RawMessage
	if err := decodeParams(req, &item); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}
	conn.Reply(ctx, req.ID, item)
}

func (s *Server) hoverRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TextDocumentPositionParams{}
	if err := decodeParams(req, &decodedParams); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	doc, ok := s.getDocument(decodedParams.TextDocument.URI)
	if !ok {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	word := masm.WordAt(doc.text, decodedParams.Position)
	entry, ok := masm.Lookup(word)
	if word == "" || !ok {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	conn.Reply(ctx, req.ID, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: masm.HoverText(entry),
		},
	})
}
