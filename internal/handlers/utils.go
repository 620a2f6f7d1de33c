package handlers

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/aaronzipp/douze-points/internal/game"
	"github.com/aaronzipp/douze-points/internal/models"
	"github.com/aaronzipp/douze-points/internal/render"
	"github.com/aaronzipp/douze-points/internal/sse"
	"github.com/aaronzipp/douze-points/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeDomainError maps domain and store errors to API responses
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrParticipantNotFound):
		render.Error(w, http.StatusNotFound, "participant_not_found", "Participant not found.")
	case errors.Is(err, models.ErrIllegalVote):
		render.Error(w, http.StatusBadRequest, "illegal_vote", "Illegal vote.")
	case errors.Is(err, models.ErrDuplicateParticipant),
		errors.Is(err, models.ErrInvalidParticipant),
		errors.Is(err, models.ErrInvalidGame):
		render.Error(w, http.StatusBadRequest, "invalid_game", err.Error())
	case errors.Is(err, store.ErrGameNotFound):
		render.Error(w, http.StatusNotFound, "game_not_found", "Game not found.")
	default:
		logger().WithError(err).WithField("path", r.URL.Path).Error("request failed")
		render.Error(w, http.StatusInternalServerError, "internal_error", "Internal server error.")
	}
}

// readBody reads a request body up to the document size limit
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, game.MaxDocumentBytes)
	defer body.Close()
	return io.ReadAll(body)
}

// publish pushes the stored game to live clients, preceded by a lead event
// (sse.EventReset or sse.EventVote) when lead is set. It runs off the request
// goroutine. Broadcasts are serialized and each one reloads the game, so the
// last game-update a client sees always matches the store. finished adds a
// final voting-finished event.
func (ctx *Context) publish(lead string, finished bool) {
	if ctx.Hub == nil {
		return
	}
	ctx.pending.Add(1)
	go func() {
		defer ctx.pending.Done()
		ctx.publishMu.Lock()
		defer ctx.publishMu.Unlock()

		g, err := ctx.Store.Load(context.Background())
		if err != nil {
			logger().WithError(err).Warn("loading game for broadcast failed")
			return
		}
		data, err := render.Marshal(g)
		if err != nil {
			logger().WithError(err).Warn("encoding game for broadcast failed")
			return
		}
		scores := render.ScoreTable(game.Standings(g))

		switch lead {
		case sse.EventReset:
			ctx.Hub.Broadcast(sse.EventReset, g.SaveFile)
		case sse.EventVote:
			ctx.Hub.Broadcast(sse.EventVote, render.VoteProgress(votingDone(g), len(g.Participants)))
		}
		ctx.Hub.Broadcast(sse.EventGameUpdate, data)
		ctx.Hub.Broadcast(sse.EventScoreboardUpdate, scores)
		if finished {
			ctx.Hub.Broadcast(sse.EventFinished, scores)
		}
	}()
}

// Wait blocks until every pending broadcast has been sent.
func (ctx *Context) Wait() {
	ctx.pending.Wait()
}

// votingDone counts participants that have spent their whole deck
func votingDone(g *models.Game) int {
	done := 0
	for _, p := range g.Participants {
		if !p.CanVote {
			done++
		}
	}
	return done
}
