package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/aaronzipp/douze-points/internal/game"
	"github.com/aaronzipp/douze-points/internal/render"
	"github.com/aaronzipp/douze-points/internal/sse"
)

// HandleSSE handles Server-Sent Events for real-time game updates
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	client := ctx.Hub.Subscribe()
	defer ctx.Hub.Unsubscribe(client)

	log := logger().WithField("client", client.ID)
	log.WithField("clients", ctx.Hub.ClientCount()).Debug("sse client connected")

	// Send the current state so the page renders before the first change
	if g, err := ctx.Store.Load(r.Context()); err == nil {
		if data, err := render.Marshal(g); err == nil {
			writeEvent(w, sse.EventGameUpdate, data)
		}
		writeEvent(w, sse.EventScoreboardUpdate, render.ScoreTable(game.Standings(g)))
	} else {
		log.WithError(err).Debug("no initial game for sse client")
	}
	flusher.Flush()

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			log.Debug("sse client disconnected")
			return
		case msg := <-client.C:
			writeEvent(w, msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}

// writeEvent writes one SSE frame. Each line of data goes into its own data
// field, so a line break in the payload cannot open a new field.
func writeEvent(w io.Writer, event, data string) {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.ReplaceAll(data, "\r", "\n")

	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(event)
	b.WriteString("\n")
	for _, line := range strings.Split(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	io.WriteString(w, b.String())
}
