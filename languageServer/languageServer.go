package languageServer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/masm-tools/masmtool/config"
	"github.com/masm-tools/masmtool/linter"
	"github.com/masm-tools/masmtool/util"
	"github.com/sourcegraph/jsonrpc2"
	websocketjsonrpc2 "github.com/sourcegraph/jsonrpc2/websocket"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// Server is the state of one client connection.
type Server struct {
	mu             sync.Mutex
	conn           *jsonrpc2.Conn
	documents      map[DocumentUri]*document
	settingsCache  map[DocumentUri]config.LanguageServerSettings
	globalSettings config.LanguageServerSettings
	linter         *linter.Linter

	hasConfigurationCapability   bool
	hasWorkspaceFolderCapability bool
	shutdown                     bool
}

// NewServer creates a server that lints with lintPath unless the client
// passes its own path in the initialization options.
func NewServer(lintPath string) *Server {
	return &Server{
		documents:      map[DocumentUri]*document{},
		settingsCache:  map[DocumentUri]config.LanguageServerSettings{},
		globalSettings: config.DefaultLanguageServerSettings(),
		linter:         linter.New(lintPath),
	}
}

// Start begins serving the stream. The returned connection is closed by Stop
// or when the client sends "exit".
func (s *Server) Start(stream jsonrpc2.ObjectStream) *jsonrpc2.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = jsonrpc2.NewConn(context.Background(), stream, s)
	return s.conn
}

func (s *Server) Stop() error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	err := conn.Close()
	if errors.Is(err, jsonrpc2.ErrClosed) {
		return nil
	}
	return err
}

// ListenAndServe serves a single client over stdin and stdout.
func ListenAndServe(lintPath string) {
	s := NewServer(lintPath)
	<-s.Start(jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{})).DisconnectNotify()
}

// ListenAndServeTCP accepts any number of clients, each with its own Server,
// so the server can be attached to remotely for debugging.
func ListenAndServeTCP(addr, lintPath string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer lis.Close()

	log.Println("MASM Language Server: listening for TCP connections on", addr)

	connectionCount := 0
	for {
		conn, err := lis.Accept()
		if err != nil {
			return err
		}
		connectionCount = connectionCount + 1
		connectionID := connectionCount
		log.Printf("MASM Language Server: received incoming connection #%d\n", connectionID)

		s := NewServer(lintPath)
		rpcConn := s.Start(jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}))
		go func() {
			<-rpcConn.DisconnectNotify()
			log.Printf("MASM Language Server: connection #%d closed\n", connectionID)
		}()
	}
}

// WebsocketHandler upgrades requests and serves each socket as a client.
func WebsocketHandler(lintPath string) http.Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			util.Warn("websocket upgrade failed: %v", err)
			return
		}
		s := NewServer(lintPath)
		<-s.Start(websocketjsonrpc2.NewObjectStream(ws)).DisconnectNotify()
	})
}

// ListenAndServeWebsocket serves clients connecting to ws://addr/lsp.
func ListenAndServeWebsocket(addr, lintPath string) error {
	mux := http.NewServeMux()
	mux.Handle("/lsp", WebsocketHandler(lintPath))
	log.Println("MASM Language Server: listening for websocket connections on", addr)
	return http.ListenAndServe(addr, mux)
}

func decodeParams(req *jsonrpc2.Request, v interface{}) error {
	if req.Params == nil {
		return errors.New("missing parameters")
	}
	return json.Unmarshal(*req.Params, v)
}

func replyInvalidParams(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		util.LogF("MASM Language Server: invalid parameters for %s", req.Method)
		return
	}
	conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid parameters"})
}

// Handle runs on the connection's read loop, so document updates are applied
// in the order they were sent. Anything that waits on the client or on the
// linter is moved to its own goroutine.
func (s *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	util.LogF("MASM Language Server: received request: %s", req.Method)
	switch req.Method {
	case "initialize":
		s.handleInitialize(ctx, conn, req)
	case "initialized":
		s.registerRemainingCapabilities(conn)
	case "textDocument/didOpen":
		s.documentOpenNotification(ctx, conn, req)
	case "textDocument/didClose":
		s.documentCloseNotification(ctx, conn, req)
	case "textDocument/didChange":
		s.documentChangeNotification(ctx, conn, req)
	case "textDocument/diagnostic":
		s.documentDiagnostics(ctx, conn, req)
	case "textDocument/completion":
		s.completionRequest(ctx, conn, req)
	case "completionItem/resolve":
		s.completionResolveRequest(ctx, conn, req)
	case "textDocument/hover":
		s.hoverRequest(ctx, conn, req)
	case "workspace/didChangeConfiguration":
		s.configurationChangeNotification(ctx, conn, req)
	case "workspace/didChangeWorkspaceFolders", "workspace/didChangeWatchedFiles", "textDocument/didSave", "$/setTrace":
		util.LogF("MASM Language Server: %s event received", req.Method)

	// quitting
	case "shutdown":
		s.mu.Lock()
		s.shutdown = true
		s.mu.Unlock()
		conn.Reply(ctx, req.ID, nil)
	case "exit":
		conn.Close()

	default:
		if !req.Notif {
			conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not supported: " + req.Method})
		}
	}
}

func (s *Server) handleInitialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := InitializeParams{}
	if err := decodeParams(req, &decodedParams); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	s.mu.Lock()
	if ws := decodedParams.Capabilities.Workspace; ws != nil {
		s.hasConfigurationCapability = ws.Configuration
		s.hasWorkspaceFolderCapability = ws.WorkspaceFolders
	}
	if opts := decodedParams.InitializationOptions; opts != nil && opts.MasmLintExePath != "" {
		s.linter = linter.New(opts.MasmLintExePath)
	}
	hasWorkspaceFolders := s.hasWorkspaceFolderCapability
	s.mu.Unlock()

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = TextDocumentSyncIncremental
	result.Capabilities.CompletionProvider = &CompletionOptions{ResolveProvider: true}
	result.Capabilities.HoverProvider = true
	result.Capabilities.DiagnosticProvider = &DiagnosticOptions{}
	if hasWorkspaceFolders {
		result.Capabilities.Workspace = &WorkspaceServerCapabilities{
			WorkspaceFolders: WorkspaceFoldersServerCapabilities{Supported: true},
		}
	}
	conn.Reply(ctx, req.ID, result)
}

func (s *Server) registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	s.mu.Lock()
	hasConfiguration := s.hasConfigurationCapability
	s.mu.Unlock()
	if !hasConfiguration {
		return
	}

	util.LogF("MASM Language Server: registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "workspace/didChangeConfiguration",
				Method: "workspace/didChangeConfiguration",
			},
		},
	}

	go conn.Call(context.Background(), "client/registerCapability", params, nil)
}
