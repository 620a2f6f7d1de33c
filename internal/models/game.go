package models

import (
	"bytes"

	"github.com/pkg/errors"
)

// Game is the full state of one round. It is the single aggregate that gets
// loaded, mutated and saved as one JSON document.
type Game struct {
	Participants []*Participant `json:"participants"`
	SaveFile     string         `json:"save_file"`
	AudioName    *string        `json:"audio_name"`
	PlayerName   *string        `json:"player_name"`
	Voter        *Participant   `json:"voter"`    // participant currently voting, client scratch state
	VoteBuff     map[string]any `json:"vote_buff"` // staged vote, client scratch state

	index map[string]int // participant name -> position in Participants
}

// gameDocument is the object form of a persisted game.
type gameDocument struct {
	Participants []*Participant `json:"participants"`
	SaveFile     string         `json:"save_file"`
	AudioName    *string        `json:"audio_name"`
	PlayerName   *string        `json:"player_name"`
	Voter        *Participant   `json:"voter"`
	VoteBuff     map[string]any `json:"vote_buff"`
}

// NewGame builds a game from an ordered participant list. Names must be
// non-empty and unique.
func NewGame(participants []*Participant) (*Game, error) {
	g := &Game{Participants: participants}
	if err := g.Reindex(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reindex rebuilds the name lookup after Participants has been replaced.
func (g *Game) Reindex() error {
	index := make(map[string]int, len(g.Participants))
	for i, p := range g.Participants {
		if p == nil || p.Name == "" {
			return errors.Wrapf(ErrInvalidParticipant, "participant #%d has no name", i)
		}
		if _, dup := index[p.Name]; dup {
			return errors.Wrapf(ErrDuplicateParticipant, "%q", p.Name)
		}
		index[p.Name] = i
	}
	g.index = index
	return nil
}

// FindParticipant returns the participant with the given name.
func (g *Game) FindParticipant(name string) (*Participant, error) {
	if p := g.lookup(name); p != nil {
		return p, nil
	}
	// Participants may have been replaced since the index was built
	if err := g.Reindex(); err != nil {
		return nil, err
	}
	if p := g.lookup(name); p != nil {
		return p, nil
	}
	return nil, errors.Wrapf(ErrParticipantNotFound, "%q", name)
}

func (g *Game) lookup(name string) *Participant {
	i, ok := g.index[name]
	if !ok || i >= len(g.Participants) {
		return nil
	}
	if p := g.Participants[i]; p != nil && p.Name == name {
		return p
	}
	return nil
}

// AddParticipant appends p, rejecting a name already in the game.
func (g *Game) AddParticipant(p *Participant) error {
	if p == nil || p.Name == "" {
		return errors.Wrap(ErrInvalidParticipant, "participant has no name")
	}
	if _, err := g.FindParticipant(p.Name); err == nil {
		return errors.Wrapf(ErrDuplicateParticipant, "%q", p.Name)
	} else if !errors.Is(err, ErrParticipantNotFound) {
		return err
	}
	g.Participants = append(g.Participants, p)
	g.index[p.Name] = len(g.Participants) - 1
	return nil
}

// UnmarshalJSON accepts either a bare list of participant records or the
// object form with participants and the metadata fields.
func (g *Game) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	var doc gameDocument

	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return errors.Wrap(ErrInvalidGame, "empty document")
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &doc.Participants); err != nil {
			return errors.Wrap(err, "decoding participant list")
		}
	case trimmed[0] == '{':
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return errors.Wrap(err, "decoding game")
		}
	default:
		return errors.Wrap(ErrInvalidGame, "expected a list or an object")
	}

	if doc.Participants == nil {
		doc.Participants = []*Participant{}
	}
	*g = Game{
		Participants: doc.Participants,
		SaveFile:     doc.SaveFile,
		AudioName:    doc.AudioName,
		PlayerName:   doc.PlayerName,
		Voter:        doc.Voter,
		VoteBuff:     doc.VoteBuff,
	}
	return g.Reindex()
}
