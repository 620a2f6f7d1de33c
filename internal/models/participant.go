package models

import (
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Participant is one player in a round: the votes they still hold, the votes
// they have cast and received, and the points those votes add up to.
type Participant struct {
	Name           string         `json:"name"`
	Avatar         *string        `json:"avatar"`
	Points         int            `json:"points"`
	J75Played      bool           `json:"j_75_played"`
	J100Played     bool           `json:"j_100_played"`
	AvailableVotes []int          `json:"available_votes"`
	VotedFor       map[string]int `json:"voted_for"`
	VotedBy        map[string]int `json:"voted_by"`
	CanVote        bool           `json:"can_vote"`
	IsChecked      bool           `json:"is_checked"`
}

// participantRecord mirrors the persisted record; pointer fields tell an
// absent value apart from an explicit one.
type participantRecord struct {
	Name           *string        `json:"name"`
	Avatar         *string        `json:"avatar"`
	Points         int            `json:"points"`
	J75Played      bool           `json:"j_75_played"`
	J100Played     bool           `json:"j_100_played"`
	AvailableVotes *[]int         `json:"available_votes"`
	VotedFor       map[string]int `json:"voted_for"`
	VotedBy        map[string]int `json:"voted_by"`
	IsChecked      bool           `json:"is_checked"`
}

// NewParticipant returns a participant holding a full deck.
func NewParticipant(name string) *Participant {
	return &Participant{
		Name:           name,
		AvailableVotes: NewDeck(),
		VotedFor:       make(map[string]int),
		VotedBy:        make(map[string]int),
		CanVote:        true,
	}
}

// UnmarshalJSON applies the record defaults: a fresh deck when
// available_votes is absent, empty vote maps, and a recomputed can_vote.
func (p *Participant) UnmarshalJSON(data []byte) error {
	var rec participantRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "decoding participant")
	}
	if rec.Name == nil || strings.TrimSpace(*rec.Name) == "" {
		return errors.Wrap(ErrInvalidParticipant, "name is required")
	}
	if strings.ContainsFunc(*rec.Name, unicode.IsControl) {
		return errors.Wrapf(ErrInvalidParticipant, "name %q contains control characters", *rec.Name)
	}

	*p = Participant{
		Name:       *rec.Name,
		Avatar:     rec.Avatar,
		Points:     rec.Points,
		J75Played:  rec.J75Played,
		J100Played: rec.J100Played,
		VotedFor:   rec.VotedFor,
		VotedBy:    rec.VotedBy,
		IsChecked:  rec.IsChecked,
	}
	if rec.AvailableVotes == nil {
		p.AvailableVotes = NewDeck()
	} else {
		p.AvailableVotes = append(make([]int, 0, len(*rec.AvailableVotes)), *rec.AvailableVotes...)
	}
	if p.VotedFor == nil {
		p.VotedFor = make(map[string]int)
	}
	if p.VotedBy == nil {
		p.VotedBy = make(map[string]int)
	}
	p.refreshCanVote()
	return nil
}

// CastVote spends value from p's available votes on target.
//
// The value must still be held by p and p must not have voted for target
// before. Every check runs before the first write, so a rejected vote leaves
// both participants untouched.
func (p *Participant) CastVote(target *Participant, value int) error {
	if target == nil {
		return errors.Wrap(ErrParticipantNotFound, "vote target is nil")
	}
	idx := p.voteIndex(value)
	if idx < 0 {
		return errors.Wrapf(ErrIllegalVote, "%s has no %d left to cast", p.Name, value)
	}
	if prev, ok := p.VotedFor[target.Name]; ok {
		return errors.Wrapf(ErrIllegalVote, "%s already gave %d to %s", p.Name, prev, target.Name)
	}

	p.AvailableVotes = append(p.AvailableVotes[:idx], p.AvailableVotes[idx+1:]...)
	if p.VotedFor == nil {
		p.VotedFor = make(map[string]int)
	}
	p.VotedFor[target.Name] = value
	target.receiveVote(p.Name, value)
	p.refreshCanVote()
	return nil
}

func (p *Participant) receiveVote(from string, value int) {
	if p.VotedBy == nil {
		p.VotedBy = make(map[string]int)
	}
	p.VotedBy[from] = value
	p.Points += value
}

func (p *Participant) voteIndex(value int) int {
	for i, v := range p.AvailableVotes {
		if v == value {
			return i
		}
	}
	return -1
}

func (p *Participant) refreshCanVote() {
	p.CanVote = len(p.AvailableVotes) > 0
}
