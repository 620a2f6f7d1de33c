package models

// GameStatus is the voting phase of a game, derived from the participants'
// decks. It is never stored.
type GameStatus string

const (
	StatusWaiting  GameStatus = "waiting"
	StatusVoting   GameStatus = "voting"
	StatusFinished GameStatus = "finished"
)

// Status reports waiting until the first vote is cast and finished once every
// participant has spent their whole deck.
func (g *Game) Status() GameStatus {
	if len(g.Participants) == 0 {
		return StatusWaiting
	}
	started, done := false, 0
	for _, p := range g.Participants {
		if len(p.VotedFor) > 0 {
			started = true
		}
		if !p.CanVote {
			done++
		}
	}
	switch {
	case done == len(g.Participants):
		return StatusFinished
	case started:
		return StatusVoting
	default:
		return StatusWaiting
	}
}
