package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
)

// maxLineBytes bounds a single stdio message; Overpass argument payloads can
// get long but never near this.
const maxLineBytes = 4 * 1024 * 1024

// ServeStdio runs the newline-delimited JSON-RPC loop over in/out until EOF
// or context cancellation. Diagnostics must go to stderr only; stdout
// carries the protocol stream.
func ServeStdio(ctx context.Context, s *Server, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		resp := s.HandleMessage(ctx, line)
		if resp == nil {
			continue
		}

		payload, err := json.Marshal(resp)
		if err != nil {
			log.Printf("stdio: marshal response: %v", err)
			continue
		}
		if _, err := fmt.Fprintf(out, "%s\n", payload); err != nil {
			return fmt.Errorf("stdio: write response: %w", err)
		}
	}
	return scanner.Err()
}
