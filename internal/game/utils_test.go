package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/aaronzipp/douze-points/internal/models"
	"github.com/aaronzipp/douze-points/internal/store"
)

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "default.game.json")
	doc := `[{"name":"A"},{"name":"B"},{"name":"C"}]`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func TestResetWithoutLiveGame(t *testing.T) {
	s := store.NewMemoryStore("game.json")
	g, err := Reset(context.Background(), s, writeTemplate(t))
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if g.SaveFile != "game.json" || len(g.Participants) != 3 {
		t.Fatalf("reset game = %+v", g)
	}
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("reset did not save: %v", err)
	}
}

func TestResetDiscardsProgress(t *testing.T) {
	template := writeTemplate(t)
	s := store.NewFileStore(filepath.Join(t.TempDir(), "game.json"))
	ctx := context.Background()

	if _, err := Reset(ctx, s, template); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := Vote(ctx, s, models.Vote{VotedBy: "A", VotedFor: "B", Vote: 12}); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if _, err := Reset(ctx, s, template); err != nil {
		t.Fatalf("second reset: %v", err)
	}

	g, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if TotalPoints(g) != 0 {
		t.Fatalf("points survived reset")
	}
	a, _ := g.FindParticipant("A")
	if len(a.AvailableVotes) != models.DeckSize || len(a.VotedFor) != 0 {
		t.Fatalf("A not reset: %+v", a)
	}
	if g.SaveFile != s.Location() {
		t.Fatalf("save_file = %q, want %q", g.SaveFile, s.Location())
	}
}

func TestResetMissingTemplate(t *testing.T) {
	s := store.NewMemoryStore("game.json")
	_, err := Reset(context.Background(), s, filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, store.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if _, err := s.Load(context.Background()); !errors.Is(err, store.ErrGameNotFound) {
		t.Fatalf("failed reset saved a game: %v", err)
	}
}

func TestVoteRejectedLeavesStoreUnchanged(t *testing.T) {
	s := store.NewMemoryStore("game.json")
	ctx := context.Background()
	if _, err := Reset(ctx, s, writeTemplate(t)); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := Vote(ctx, s, models.Vote{VotedBy: "A", VotedFor: "B", Vote: 11}); !errors.Is(err, models.ErrIllegalVote) {
		t.Fatalf("expected ErrIllegalVote, got %v", err)
	}
	if _, err := Vote(ctx, s, models.Vote{VotedBy: "A", VotedFor: "Nobody", Vote: 12}); !errors.Is(err, models.ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}

	g, _ := s.Load(ctx)
	if err := CheckConsistency(g); err != nil {
		t.Fatalf("consistency: %v", err)
	}
	a, _ := g.FindParticipant("A")
	if len(a.AvailableVotes) != models.DeckSize {
		t.Fatalf("rejected vote spent a value: %v", a.AvailableVotes)
	}
}
