package game

import (
	"context"

	"github.com/pkg/errors"

	"github.com/aaronzipp/douze-points/internal/logging"
	"github.com/aaronzipp/douze-points/internal/models"
	"github.com/aaronzipp/douze-points/internal/store"
)

// ApplyVote resolves both participants of v by name and casts the vote.
// It returns the participant that received the points.
func ApplyVote(g *models.Game, v models.Vote) (*models.Participant, error) {
	caster, err := g.FindParticipant(v.VotedBy)
	if err != nil {
		return nil, errors.Wrap(err, "voter")
	}
	target, err := g.FindParticipant(v.VotedFor)
	if err != nil {
		return nil, errors.Wrap(err, "vote target")
	}
	if err := caster.CastVote(target, v.Vote); err != nil {
		return nil, err
	}
	return target, nil
}

// Vote applies v to the stored game as one locked load-mutate-save.
func Vote(ctx context.Context, s store.Store, v models.Vote) (*models.Game, error) {
	g, err := s.WithLock(ctx, func(g *models.Game) error {
		_, err := ApplyVote(g, v)
		return err
	})
	if err != nil {
		return nil, err
	}
	logging.For("game").WithField("voted_by", v.VotedBy).
		WithField("voted_for", v.VotedFor).
		WithField("vote", v.Vote).
		WithField("total_points", TotalPoints(g)).
		Info("vote registered")
	return g, nil
}

// Reset replaces the stored game with the template at templatePath. Prior
// votes and points are discarded, and a missing live game is not an error.
func Reset(ctx context.Context, s store.Store, templatePath string) (*models.Game, error) {
	g, err := store.LoadFile(templatePath)
	if err != nil {
		return nil, errors.Wrap(err, "loading reset template")
	}
	g.SaveFile = s.Location()
	if err := s.Save(ctx, g); err != nil {
		return nil, errors.Wrap(err, "saving reset game")
	}
	logging.For("game").WithField("template", templatePath).
		WithField("participants", len(g.Participants)).
		Info("game reset")
	return g, nil
}
