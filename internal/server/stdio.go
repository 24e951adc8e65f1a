package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// StdioServer serves newline-delimited JSON-RPC over a reader/writer
// pair, one request per line. Responses are written in request order;
// notifications and blank lines produce no output.
type StdioServer struct {
	dispatcher *Dispatcher
	logger     zerolog.Logger
}

// NewStdioServer wraps a dispatcher for stdio framing.
func NewStdioServer(dispatcher *Dispatcher, logger zerolog.Logger) *StdioServer {
	return &StdioServer{dispatcher: dispatcher, logger: logger}
}

// Serve reads requests until EOF or context cancellation. A write failure
// aborts the loop: the peer is gone.
func (s *StdioServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		resp, reply := s.dispatcher.DispatchRaw(ctx, line)
		if !reply {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		if resp.Error != nil {
			s.logger.Warn().
				Int("code", resp.Error.Code).
				Str("message", resp.Error.Message).
				Msg("rpc_error")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}
