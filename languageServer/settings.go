package languageServer

import (
	"context"
	"encoding/json"

	"github.com/masm-tools/masmtool/config"
	"github.com/masm-tools/masmtool/util"
	"github.com/sourcegraph/jsonrpc2"
)

const settingsSection = "masmLanguageServer"

// documentSettings asks the client for the settings of uri and caches the
// answer while the document is open. Clients without workspace/configuration get the global settings.
func (s *Server) documentSettings(ctx context.Context, conn *jsonrpc2.Conn, uri DocumentUri) config.LanguageServerSettings {
	s.mu.Lock()
	if !s.hasConfigurationCapability {
		defer s.mu.Unlock()
		return s.globalSettings
	}
	if cached, ok := s.settingsCache[uri]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	params := ConfigurationParams{Items: []ConfigurationItem{{ScopeURI: uri, Section: settingsSection}}}
	var result []json.RawMessage
	settings := config.DefaultLanguageServerSettings()
	if err := conn.Call(ctx, "workspace/configuration", params, &result); err != nil {
		util.LogF("MASM Language Server: workspace/configuration failed: %v", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.globalSettings
	}
	if len(result) > 0 {
		if err := json.Unmarshal(result[0], &settings); err != nil {
			util.LogF("MASM Language Server: bad settings for %s: %v", uri, err)
			settings = config.DefaultLanguageServerSettings()
		}
	}

	// the document may have been closed while the client answered
	s.mu.Lock()
	if _, open := s.documents[uri]; open {
		s.settingsCache[uri] = settings
	}
	s.mu.Unlock()
	return settings
}

func (s *Server) configurationChangeNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeConfigurationParams{}
	if err := decodeParams(req, &decodedParams); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	s.mu.Lock()
	if s.hasConfigurationCapability {
		s.settingsCache = map[DocumentUri]config.LanguageServerSettings{}
	} else {
		settings := config.DefaultLanguageServerSettings()
		sections := map[string]json.RawMessage{}
		if err := json.Unmarshal(decodedParams.Settings, &sections); err == nil {
			if raw, ok := sections[settingsSection]; ok {
				if err := json.Unmarshal(raw, &settings); err != nil {
					settings = config.DefaultLanguageServerSettings()
				}
			}
		}
		s.globalSettings = settings
	}
	s.mu.Unlock()

	// ask the client to pull diagnostics again
	go conn.Call(context.Background(), "workspace/diagnostic/refresh", nil, nil)
}
