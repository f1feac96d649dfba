package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func testServer() *Server {
	r := NewRegistry()
	r.Register(Tool{
		Name:        "echo",
		Description: "Echo the message back.",
		InputSchema: map[string]any{"type": "object"},
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			if v, ok := args["message"].(string); ok {
				return v, nil
			}
			return "", errors.New("message is required")
		},
	})
	return NewServer("test-server", "0.0.1", r)
}

func TestHandleInitialize(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`))
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(InitializeResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if result.ProtocolVersion != ProtocolVersion {
		t.Fatalf("unexpected protocol version: %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "test-server" || result.ServerInfo.Version != "0.0.1" {
		t.Fatalf("unexpected server info: %+v", result.ServerInfo)
	}
	if string(resp.ID) != "1" {
		t.Fatalf("expected request ID echoed, got %s", resp.ID)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(ListToolsResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(result.Tools) != 1 || result.Tools[0].Name != "echo" {
		t.Fatalf("unexpected tool list: %+v", result.Tools)
	}
}

func TestHandleToolsCall(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{"message":"hello"}}}`))
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(CallResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result)
	}
	if len(result.Content) != 1 || result.Content[0].Text != "hello" {
		t.Fatalf("unexpected content: %+v", result.Content)
	}
}

// TestHandleToolsCallFailure verifies a handler error becomes an isError
// result, not a JSON-RPC error.
func TestHandleToolsCallFailure(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"echo","arguments":{}}}`))
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected a result-carrying response, got %+v", resp)
	}

	result := resp.Result.(CallResult)
	if !result.IsError {
		t.Fatalf("expected isError result, got %+v", result)
	}
	if result.Content[0].Text != "message is required" {
		t.Fatalf("unexpected message: %q", result.Content[0].Text)
	}
}

func TestHandleUnknownTool(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"nope"}}`))
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected JSON-RPC error, got %+v", resp)
	}
	if resp.Error.Code != codeInvalidParams {
		t.Fatalf("unexpected code: %d", resp.Error.Code)
	}
}

func TestHandleUnknownMethod(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":6,"method":"resources/list"}`))
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected JSON-RPC error, got %+v", resp)
	}
	if resp.Error.Code != codeMethodNotFound {
		t.Fatalf("unexpected code: %d", resp.Error.Code)
	}
}

func TestNotificationsGetNoResponse(t *testing.T) {
	s := testServer()
	for _, raw := range []string{
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":null,"method":"notifications/cancelled"}`,
	} {
		if resp := s.HandleMessage(context.Background(), []byte(raw)); resp != nil {
			t.Fatalf("expected no response for %s, got %+v", raw, resp)
		}
	}
}

func TestParseError(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{not json`))
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected parse error, got %+v", resp)
	}
	if resp.Error.Code != codeParseError {
		t.Fatalf("unexpected code: %d", resp.Error.Code)
	}
	if string(resp.ID) != "null" {
		t.Fatalf("expected null ID, got %s", resp.ID)
	}
}

func TestPing(t *testing.T) {
	s := testServer()
	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":7,"method":"ping"}`))
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `{"jsonrpc":"2.0","id":7,"result":{}}` {
		t.Fatalf("unexpected wire form: %s", payload)
	}
}
