package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aaronzipp/douze-points/internal/game"
	"github.com/aaronzipp/douze-points/internal/render"
	"github.com/aaronzipp/douze-points/internal/sse"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

// HandleWS streams the same live events as HandleSSE over a websocket.
// Each frame is a JSON object {"event": ..., "data": ...}.
func (ctx *Context) HandleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return ctx.originAllowed(r.Header.Get("Origin"))
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger().WithError(err).Debug("websocket upgrade failed")
		return
	}
	defer conn.Close()

	client := ctx.Hub.Subscribe()
	defer ctx.Hub.Unsubscribe(client)
	log := logger().WithField("client", client.ID)
	log.Debug("websocket client connected")

	// Reader: only needed to notice the peer going away and to take pongs
	closed := make(chan struct{})
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(msg sse.Message) error {
		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		return conn.WriteJSON(msg)
	}

	if g, err := ctx.Store.Load(r.Context()); err == nil {
		if data, err := render.Marshal(g); err == nil {
			if err := send(sse.Message{Event: sse.EventGameUpdate, Data: data}); err != nil {
				return
			}
		}
		if err := send(sse.Message{Event: sse.EventScoreboardUpdate, Data: render.ScoreTable(game.Standings(g))}); err != nil {
			return
		}
	}

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			log.Debug("websocket client disconnected")
			return
		case <-r.Context().Done():
			return
		case msg := <-client.C:
			if err := send(msg); err != nil {
				log.WithError(err).Debug("websocket write failed")
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
