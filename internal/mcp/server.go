package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Server answers MCP JSON-RPC messages against a tool registry. It is
// transport-agnostic; the stdio and SSE transports both feed raw messages
// into HandleMessage.
type Server struct {
	name     string
	version  string
	registry *Registry
}

// NewServer creates a Server exposing the registry's tools.
func NewServer(name, version string, registry *Registry) *Server {
	return &Server{
		name:     name,
		version:  version,
		registry: registry,
	}
}

// HandleMessage processes one raw JSON-RPC message and returns the response,
// or nil for notifications.
func (s *Server) HandleMessage(ctx context.Context, raw []byte) *Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(nil, codeParseError, fmt.Sprintf("parse error: %v", err))
	}

	if req.IsNotification() {
		// Notifications (e.g. notifications/initialized) get no response.
		return nil
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return resultResponse(req.ID, struct{}{})
	case "tools/list":
		return resultResponse(req.ID, ListToolsResult{Tools: s.registry.List()})
	case "tools/call":
		return s.handleCall(ctx, req)
	default:
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func (s *Server) handleInitialize(req Request) *Response {
	return resultResponse(req.ID, InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    Capabilities{Tools: ToolsCapability{}},
		ServerInfo: ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
	})
}

func (s *Server) handleCall(ctx context.Context, req Request) *Response {
	var params CallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, fmt.Sprintf("invalid params: %v", err))
	}

	log.Printf("tools/call %s", params.Name)

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		return errorResponse(req.ID, codeInvalidParams, err.Error())
	}
	return resultResponse(req.ID, result)
}

func resultResponse(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: jsonRPCVersion, ID: id, Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) *Response {
	if id == nil {
		id = json.RawMessage("null")
	}
	return &Response{JSONRPC: jsonRPCVersion, ID: id, Error: &RPCError{Code: code, Message: message}}
}
