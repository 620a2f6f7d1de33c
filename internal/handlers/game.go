package handlers

import (
	"net/http"

	"github.com/aaronzipp/douze-points/internal/game"
	"github.com/aaronzipp/douze-points/internal/models"
	"github.com/aaronzipp/douze-points/internal/render"
	"github.com/aaronzipp/douze-points/internal/sse"
	"github.com/aaronzipp/douze-points/internal/store"
)

// HandleGetGame godoc
// @Summary Get the current game
// @Description Returns the live game document.
// @Tags game
// @Produce json
// @Success 200 {object} models.Game
// @Failure 404 {object} render.ErrorResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /game [get]
func (ctx *Context) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := ctx.Store.Load(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, g)
}

// HandlePostGame godoc
// @Summary Replace the current game
// @Description Stores the posted game document as-is. Votes in the body are not validated.
// @Tags game
// @Accept json
// @Produce json
// @Param game body models.Game true "Game document"
// @Success 200 {object} models.Game
// @Failure 400 {object} render.ErrorResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /game [post]
func (ctx *Context) HandlePostGame(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "invalid_body", "Could not read request body.")
		return
	}
	g, err := store.Decode(data)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "invalid_game", err.Error())
		return
	}

	location := ctx.Store.Location()
	if g.SaveFile != "" && g.SaveFile != location {
		logger().WithField("save_file", g.SaveFile).Warn("rejected game for a foreign save file")
		render.Error(w, http.StatusBadRequest, "invalid_save_file", "save_file must be "+location)
		return
	}
	g.SaveFile = location

	if err := game.CheckConsistency(g); err != nil {
		logger().WithError(err).Warn("storing inconsistent game")
	}
	if err := ctx.Store.Save(r.Context(), g); err != nil {
		writeDomainError(w, r, err)
		return
	}

	logger().WithField("participants", len(g.Participants)).Info("game saved")
	ctx.publish("", false)
	render.JSON(w, http.StatusOK, g)
}

// HandleReset godoc
// @Summary Reset the game
// @Description Replaces the live game with the default template, discarding all votes.
// @Tags game
// @Produce json
// @Success 200 {object} models.Game
// @Failure 500 {object} render.ErrorResponse
// @Router /reset [post]
func (ctx *Context) HandleReset(w http.ResponseWriter, r *http.Request) {
	g, err := game.Reset(r.Context(), ctx.Store, ctx.TemplatePath)
	if err != nil {
		logger().WithError(err).WithField("template", ctx.TemplatePath).Error("reset failed")
		render.Error(w, http.StatusInternalServerError, "reset_failed", "Could not reset the game.")
		return
	}

	ctx.publish(sse.EventReset, false)
	render.JSON(w, http.StatusOK, g)
}

// HandleVote godoc
// @Summary Cast a vote
// @Description Moves one point value from voted_by to voted_for.
// @Tags game
// @Accept json
// @Produce json
// @Param vote body models.Vote true "Vote"
// @Success 200 {object} models.Game
// @Failure 400 {object} render.ErrorResponse
// @Failure 404 {object} render.ErrorResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /vote [post]
func (ctx *Context) HandleVote(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "invalid_body", "Could not read request body.")
		return
	}
	var v models.Vote
	if err := json.Unmarshal(data, &v); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid_vote", "Vote must be an object with voted_by, voted_for and vote.")
		return
	}
	if !models.InDeck(v.Vote) {
		render.Error(w, http.StatusBadRequest, "illegal_vote", "Illegal vote.")
		return
	}

	g, err := game.Vote(r.Context(), ctx.Store, v)
	if err != nil {
		logger().WithError(err).WithField("voted_by", v.VotedBy).WithField("voted_for", v.VotedFor).Info("vote rejected")
		writeDomainError(w, r, err)
		return
	}

	finished := g.Status() == models.StatusFinished
	if finished {
		logger().WithField("participants", len(g.Participants)).Info("voting finished")
	}
	ctx.publish(sse.EventVote, finished)
	render.JSON(w, http.StatusOK, g)
}

// HandleGetParticipant godoc
// @Summary Get one participant
// @Tags game
// @Produce json
// @Param name path string true "Participant name"
// @Success 200 {object} models.Participant
// @Failure 404 {object} render.ErrorResponse
// @Router /participants/{name} [get]
func (ctx *Context) HandleGetParticipant(w http.ResponseWriter, r *http.Request) {
	g, err := ctx.Store.Load(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	p, err := g.FindParticipant(r.PathValue("name"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, p)
}

// HandleStandings godoc
// @Summary Get the scoreboard
// @Description Participants ranked by points; ties share a rank.
// @Tags game
// @Produce json
// @Success 200 {array} game.Standing
// @Failure 404 {object} render.ErrorResponse
// @Router /standings [get]
func (ctx *Context) HandleStandings(w http.ResponseWriter, r *http.Request) {
	g, err := ctx.Store.Load(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	render.JSON(w, http.StatusOK, game.Standings(g))
}
