package server

import (
	"context"
	"encoding/json"
	"testing"
)

func testDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(testRegistry(t))
}

func dispatchRaw(t *testing.T, d *Dispatcher, raw string) *Response {
	t.Helper()
	resp, reply := d.DispatchRaw(context.Background(), []byte(raw))
	if !reply {
		t.Fatalf("expected a response for %s", raw)
	}
	return resp
}

func TestInitialize(t *testing.T) {
	resp := dispatchRaw(t, testDispatcher(t), `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	if resp.Error != nil {
		t.Fatalf("initialize error: %+v", resp.Error)
	}
	result, ok := resp.Result.(initializeResult)
	if !ok {
		t.Fatalf("result type %T", resp.Result)
	}
	if result.ProtocolVersion != "2024-11-05" {
		t.Fatalf("protocol version = %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "anthromorph" || result.ServerInfo.Version == "" {
		t.Fatalf("server info = %+v", result.ServerInfo)
	}
}

func TestPing(t *testing.T) {
	resp := dispatchRaw(t, testDispatcher(t), `{"jsonrpc":"2.0","id":"p1","method":"ping"}`)
	if resp.Error != nil {
		t.Fatalf("ping error: %+v", resp.Error)
	}
	if string(resp.ID) != `"p1"` {
		t.Fatalf("id = %s", resp.ID)
	}
}

func TestToolsList(t *testing.T) {
	resp := dispatchRaw(t, testDispatcher(t), `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	if resp.Error != nil {
		t.Fatalf("tools/list error: %+v", resp.Error)
	}
	result, ok := resp.Result.(toolsListResult)
	if !ok {
		t.Fatalf("result type %T", resp.Result)
	}
	if len(result.Tools) != 15 {
		t.Fatalf("tools = %d, want 15", len(result.Tools))
	}
}

func TestToolsCallHappyPath(t *testing.T) {
	resp := dispatchRaw(t, testDispatcher(t),
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"list_morphotypes"}}`)
	if resp.Error != nil {
		t.Fatalf("tools/call error: %+v", resp.Error)
	}
	result, ok := resp.Result.(ToolResult)
	if !ok {
		t.Fatalf("result type %T", resp.Result)
	}
	if result.IsError || len(result.Content) == 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestToolsCallDomainFailure(t *testing.T) {
	resp := dispatchRaw(t, testDispatcher(t),
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_morphotype_specifications","arguments":{"morphotype":"morphotype_9"}}}`)
	if resp.Error != nil {
		t.Fatalf("domain failure must not be a protocol error: %+v", resp.Error)
	}
	result := resp.Result.(ToolResult)
	if !result.IsError {
		t.Fatalf("expected isError result, got %+v", result)
	}
}

func TestProtocolErrorCodes(t *testing.T) {
	d := testDispatcher(t)
	cases := []struct {
		name string
		raw  string
		code int
	}{
		{"parse error", `{not json`, CodeParseError},
		{"wrong version", `{"jsonrpc":"1.0","id":1,"method":"ping"}`, CodeInvalidRequest},
		{"missing method", `{"jsonrpc":"2.0","id":1}`, CodeInvalidRequest},
		{"unknown method", `{"jsonrpc":"2.0","id":1,"method":"resources/list"}`, CodeMethodNotFound},
		{"unknown tool", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"summon_kraken"}}`, CodeMethodNotFound},
		{"missing tool name", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{}}`, CodeInvalidParams},
		{"bad params shape", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":"nope"}`, CodeInvalidParams},
		{"missing required arg", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"calculate_size_effects","arguments":{}}}`, CodeInvalidParams},
	}
	for _, tc := range cases {
		resp := dispatchRaw(t, d, tc.raw)
		if resp.Error == nil {
			t.Fatalf("%s: expected protocol error", tc.name)
		}
		if resp.Error.Code != tc.code {
			t.Fatalf("%s: code = %d, want %d", tc.name, resp.Error.Code, tc.code)
		}
	}
}

func TestNotificationsProduceNoResponse(t *testing.T) {
	d := testDispatcher(t)
	_, reply := d.DispatchRaw(context.Background(), []byte(`{"jsonrpc":"2.0","method":"ping"}`))
	if reply {
		t.Fatalf("notification must not produce a response")
	}
	_, reply = d.DispatchRaw(context.Background(), []byte(`{"jsonrpc":"2.0","id":null,"method":"ping"}`))
	if reply {
		t.Fatalf("null-id request must be treated as a notification")
	}
}

func TestParseErrorHasNullID(t *testing.T) {
	resp := dispatchRaw(t, testDispatcher(t), `garbage`)
	if string(resp.ID) != "null" {
		t.Fatalf("parse error id = %s, want null", resp.ID)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round-trip response: %v", err)
	}
	if decoded["jsonrpc"] != "2.0" {
		t.Fatalf("jsonrpc = %v", decoded["jsonrpc"])
	}
}
