package store

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/aaronzipp/douze-points/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode parses a game document in either the list or the object form.
func Decode(data []byte) (*models.Game, error) {
	var g models.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(err, "decoding game document")
	}
	return &g, nil
}

// Encode renders g in the object form, indented by two spaces.
func Encode(g *models.Game) ([]byte, error) {
	if g == nil {
		return nil, errors.Wrap(models.ErrInvalidGame, "nil game")
	}
	if g.Participants == nil {
		g.Participants = []*models.Participant{}
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding game document")
	}
	return data, nil
}

// Clone deep-copies g through the codec.
func Clone(g *models.Game) (*models.Game, error) {
	data, err := Encode(g)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
