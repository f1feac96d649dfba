package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// pingInterval keeps idle SSE connections alive through proxies.
const pingInterval = 15 * time.Second

// SSETransport exposes the MCP server over Server-Sent Events: GET /sse
// opens the stream and announces a per-session message endpoint; POST
// /messages carries the JSON-RPC requests, whose responses flow back on the
// stream.
type SSETransport struct {
	server *Server

	mu       sync.Mutex
	sessions map[string]chan []byte
}

// NewSSETransport creates an SSE transport for the server.
func NewSSETransport(server *Server) *SSETransport {
	return &SSETransport{
		server:   server,
		sessions: make(map[string]chan []byte),
	}
}

// RegisterRoutes wires the SSE handlers into the Fiber app.
func (t *SSETransport) RegisterRoutes(app *fiber.App) {
	app.Get("/sse", t.handleSSE)
	app.Post("/messages", t.handleMessage)
}

func (t *SSETransport) handleSSE(c *fiber.Ctx) error {
	sessionID := uuid.NewString()
	outbound := make(chan []byte, 16)

	t.mu.Lock()
	t.sessions[sessionID] = outbound
	t.mu.Unlock()

	log.Printf("sse: session %s connected", sessionID)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer t.dropSession(sessionID)

		fmt.Fprintf(w, "event: endpoint\ndata: /messages?sessionId=%s\n\n", sessionID)
		if err := w.Flush(); err != nil {
			return
		}

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case msg, ok := <-outbound:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
				if err := w.Flush(); err != nil {
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": ping\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

func (t *SSETransport) handleMessage(c *fiber.Ctx) error {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "sessionId query parameter is required")
	}

	t.mu.Lock()
	outbound, ok := t.sessions[sessionID]
	t.mu.Unlock()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown session")
	}

	resp := t.server.HandleMessage(c.UserContext(), c.Body())
	if resp != nil {
		payload, err := json.Marshal(resp)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to encode response")
		}
		select {
		case outbound <- payload:
		default:
			log.Printf("sse: session %s outbound queue full, dropping response", sessionID)
		}
	}

	return c.SendStatus(fiber.StatusAccepted)
}

func (t *SSETransport) dropSession(sessionID string) {
	t.mu.Lock()
	delete(t.sessions, sessionID)
	t.mu.Unlock()
	log.Printf("sse: session %s disconnected", sessionID)
}
