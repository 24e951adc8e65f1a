package server

import (
	"context"
	"encoding/json"
	"errors"
)

// ProtocolVersion is the negotiated tool protocol revision.
const ProtocolVersion = "2024-11-05"

// Server identity reported by initialize.
const (
	ServerName    = "anthromorph"
	ServerVersion = "0.3.0"
)

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is one incoming JSON-RPC message. A request without an ID is a
// notification and produces no response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (r Request) isNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// RPCError is the JSON-RPC error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Response is one outgoing JSON-RPC message.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

func resultResponse(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: normalizeID(id), Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) *Response {
	return &Response{JSONRPC: "2.0", ID: normalizeID(id), Error: &RPCError{Code: code, Message: message}}
}

func normalizeID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}

// Dispatcher routes JSON-RPC requests onto a tool registry.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher wraps a registry with the protocol surface.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// initializeResult is the initialize response payload.
type initializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    capabilities `json:"capabilities"`
	ServerInfo      serverInfo   `json:"serverInfo"`
}

type capabilities struct {
	Tools struct{} `json:"tools"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type toolsListResult struct {
	Tools []Tool `json:"tools"`
}

type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// DispatchRaw parses one wire message and dispatches it. The second
// return value is false when no response must be sent (notifications).
func (d *Dispatcher) DispatchRaw(ctx context.Context, raw []byte) (*Response, bool) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(nil, CodeParseError, "parse error"), true
	}
	return d.Dispatch(ctx, req)
}

// Dispatch routes one parsed request.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Response, bool) {
	resp := d.handle(ctx, req)
	if req.isNotification() {
		return nil, false
	}
	return resp, true
}

func (d *Dispatcher) handle(ctx context.Context, req Request) *Response {
	if req.JSONRPC != "2.0" || req.Method == "" {
		return errorResponse(req.ID, CodeInvalidRequest, "invalid request")
	}
	switch req.Method {
	case "initialize":
		return resultResponse(req.ID, initializeResult{
			ProtocolVersion: ProtocolVersion,
			ServerInfo:      serverInfo{Name: ServerName, Version: ServerVersion},
		})
	case "ping":
		return resultResponse(req.ID, struct{}{})
	case "tools/list":
		return resultResponse(req.ID, toolsListResult{Tools: d.registry.List()})
	case "tools/call":
		return d.call(ctx, req)
	default:
		return errorResponse(req.ID, CodeMethodNotFound, "method not found: "+req.Method)
	}
}

func (d *Dispatcher) call(ctx context.Context, req Request) *Response {
	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "invalid tool call params")
	}
	if params.Name == "" {
		return errorResponse(req.ID, CodeInvalidParams, "tool name is required")
	}
	result, err := d.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		var unknownTool *UnknownToolError
		if errors.As(err, &unknownTool) {
			return errorResponse(req.ID, CodeMethodNotFound, err.Error())
		}
		var paramErr *ParamError
		if errors.As(err, &paramErr) {
			return errorResponse(req.ID, CodeInvalidParams, err.Error())
		}
		return errorResponse(req.ID, CodeInternalError, err.Error())
	}
	return resultResponse(req.ID, result)
}
