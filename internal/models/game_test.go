package models

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewGameRejectsDuplicateNames(t *testing.T) {
	_, err := NewGame([]*Participant{NewParticipant("A"), NewParticipant("B"), NewParticipant("A")})
	if !errors.Is(err, ErrDuplicateParticipant) {
		t.Fatalf("expected ErrDuplicateParticipant, got %v", err)
	}

	_, err = NewGame([]*Participant{NewParticipant("")})
	if !errors.Is(err, ErrInvalidParticipant) {
		t.Fatalf("expected ErrInvalidParticipant, got %v", err)
	}
}

func TestFindParticipant(t *testing.T) {
	g, err := NewGame([]*Participant{NewParticipant("A"), NewParticipant("B")})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	b, err := g.FindParticipant("B")
	if err != nil {
		t.Fatalf("find B: %v", err)
	}
	if b != g.Participants[1] {
		t.Fatalf("expected the participant stored in the game, got a copy")
	}

	if _, err := g.FindParticipant("Nobody"); !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestFindParticipantAfterParticipantsReplaced(t *testing.T) {
	g, err := NewGame([]*Participant{NewParticipant("A")})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.Participants = []*Participant{NewParticipant("X"), NewParticipant("Y")}

	if _, err := g.FindParticipant("Y"); err != nil {
		t.Fatalf("find after replace: %v", err)
	}
	if _, err := g.FindParticipant("A"); !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("stale index entry for A: %v", err)
	}
}

func TestAddParticipant(t *testing.T) {
	g, err := NewGame(nil)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if err := g.AddParticipant(NewParticipant("A")); err != nil {
		t.Fatalf("add A: %v", err)
	}
	if err := g.AddParticipant(NewParticipant("A")); !errors.Is(err, ErrDuplicateParticipant) {
		t.Fatalf("expected ErrDuplicateParticipant, got %v", err)
	}
	if _, err := g.FindParticipant("A"); err != nil {
		t.Fatalf("find A: %v", err)
	}
}

func TestGameUnmarshalListForm(t *testing.T) {
	var g Game
	err := g.UnmarshalJSON([]byte(`[{"name":"A","avatar":"a.png"},{"name":"B","points":3}]`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(g.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(g.Participants))
	}
	a, err := g.FindParticipant("A")
	if err != nil {
		t.Fatalf("find A: %v", err)
	}
	if a.Avatar == nil || *a.Avatar != "a.png" {
		t.Fatalf("avatar = %v", a.Avatar)
	}
	if len(a.AvailableVotes) != DeckSize {
		t.Fatalf("expected default deck, got %v", a.AvailableVotes)
	}

	// Each decoded participant owns its deck
	a.AvailableVotes[0] = 0
	if g.Participants[1].AvailableVotes[0] != 12 {
		t.Fatalf("decks aliased after decoding")
	}
}

func TestGameUnmarshalObjectForm(t *testing.T) {
	var g Game
	doc := `{
		"participants": [{"name":"A"}],
		"save_file": "game.json",
		"audio_name": "song.mp3",
		"player_name": null,
		"voter": {"name":"A"},
		"vote_buff": {"voted_for":"A","vote":12}
	}`
	if err := g.UnmarshalJSON([]byte(doc)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.SaveFile != "game.json" {
		t.Fatalf("save_file = %q", g.SaveFile)
	}
	if g.AudioName == nil || *g.AudioName != "song.mp3" {
		t.Fatalf("audio_name = %v", g.AudioName)
	}
	if g.PlayerName != nil {
		t.Fatalf("player_name = %v, want nil", *g.PlayerName)
	}
	if g.Voter == nil || g.Voter.Name != "A" {
		t.Fatalf("voter = %+v", g.Voter)
	}
	if g.VoteBuff["voted_for"] != "A" {
		t.Fatalf("vote_buff = %v", g.VoteBuff)
	}
}

func TestGameUnmarshalRejectsBadDocuments(t *testing.T) {
	var g Game
	if err := g.UnmarshalJSON([]byte(`42`)); !errors.Is(err, ErrInvalidGame) {
		t.Fatalf("expected ErrInvalidGame, got %v", err)
	}
	if err := g.UnmarshalJSON([]byte(`null`)); !errors.Is(err, ErrInvalidGame) {
		t.Fatalf("expected ErrInvalidGame for null, got %v", err)
	}
	if err := g.UnmarshalJSON([]byte(`[{"name":"A"},{"name":"A"}]`)); !errors.Is(err, ErrDuplicateParticipant) {
		t.Fatalf("expected ErrDuplicateParticipant, got %v", err)
	}
	if err := g.UnmarshalJSON([]byte(`[{"points":1}]`)); err == nil {
		t.Fatalf("expected an error for a nameless participant")
	}
}

func TestInDeck(t *testing.T) {
	for _, v := range NewDeck() {
		if !InDeck(v) {
			t.Fatalf("%d should be in the deck", v)
		}
	}
	for _, v := range []int{0, 9, 11, 13} {
		if InDeck(v) {
			t.Fatalf("%d should not be in the deck", v)
		}
	}
}

func TestFindParticipantAfterSameSizeReplace(t *testing.T) {
	g, err := NewGame([]*Participant{NewParticipant("A")})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.Participants = []*Participant{NewParticipant("X")}

	if _, err := g.FindParticipant("A"); !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound for replaced A, got %v", err)
	}
	x, err := g.FindParticipant("X")
	if err != nil || x.Name != "X" {
		t.Fatalf("find X: %v %v", x, err)
	}
}

func TestGameStatus(t *testing.T) {
	empty, _ := NewGame(nil)
	if got := empty.Status(); got != StatusWaiting {
		t.Fatalf("empty game status = %q", got)
	}

	a, b := NewParticipant("A"), NewParticipant("B")
	g, err := NewGame([]*Participant{a, b})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if got := g.Status(); got != StatusWaiting {
		t.Fatalf("status = %q, want waiting", got)
	}

	if err := a.CastVote(b, 12); err != nil {
		t.Fatalf("cast: %v", err)
	}
	if got := g.Status(); got != StatusVoting {
		t.Fatalf("status = %q, want voting", got)
	}

	a.AvailableVotes = []int{}
	a.CanVote = false
	b.AvailableVotes = []int{}
	b.CanVote = false
	if got := g.Status(); got != StatusFinished {
		t.Fatalf("status = %q, want finished", got)
	}
}
