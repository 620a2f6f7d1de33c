package game

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/aaronzipp/douze-points/internal/models"
)

// ErrInconsistentGame reports a game whose points and vote records disagree.
var ErrInconsistentGame = errors.New("inconsistent game state")

// Standing is one row of the scoreboard.
type Standing struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar,omitempty"`
	Points      int    `json:"points"`
	VotesLeft   int    `json:"votes_left"`
	VotesGotten int    `json:"votes_received"`
}

// Standings ranks participants by points, highest first. Ties share a rank
// and are listed by name.
func Standings(g *models.Game) []Standing {
	rows := make([]Standing, 0, len(g.Participants))
	for _, p := range g.Participants {
		row := Standing{
			Name:        p.Name,
			Points:      p.Points,
			VotesLeft:   len(p.AvailableVotes),
			VotesGotten: len(p.VotedBy),
		}
		if p.Avatar != nil {
			row.Avatar = *p.Avatar
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Name < rows[j].Name
	})

	for i := range rows {
		if i > 0 && rows[i].Points == rows[i-1].Points {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}
	return rows
}

// CheckConsistency verifies that every vote is recorded on both sides, that
// points match the votes received, that no participant holds more than a
// deck, and that can_vote matches the remaining votes. All problems are
// reported together.
func CheckConsistency(g *models.Game) error {
	var problems []string
	for _, p := range g.Participants {
		sum := 0
		for voter, value := range p.VotedBy {
			sum += value
			caster, err := g.FindParticipant(voter)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s received a vote from unknown %q", p.Name, voter))
				continue
			}
			if got, ok := caster.VotedFor[p.Name]; !ok || got != value {
				problems = append(problems, fmt.Sprintf("%s.voted_by[%s]=%d has no matching voted_for", p.Name, voter, value))
			}
		}
		if sum != p.Points {
			problems = append(problems, fmt.Sprintf("%s has %d points but received %d", p.Name, p.Points, sum))
		}

		for target, value := range p.VotedFor {
			recipient, err := g.FindParticipant(target)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s voted for unknown %q", p.Name, target))
				continue
			}
			if got, ok := recipient.VotedBy[p.Name]; !ok || got != value {
				problems = append(problems, fmt.Sprintf("%s.voted_for[%s]=%d has no matching voted_by", p.Name, target, value))
			}
		}

		if held := len(p.AvailableVotes) + len(p.VotedFor); held != models.DeckSize {
			problems = append(problems, fmt.Sprintf("%s holds %d votes, want %d", p.Name, held, models.DeckSize))
		}
		if p.CanVote != (len(p.AvailableVotes) > 0) {
			problems = append(problems, fmt.Sprintf("%s can_vote=%t with %d votes left", p.Name, p.CanVote, len(p.AvailableVotes)))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Wrapf(ErrInconsistentGame, "%v", problems)
}

// TotalPoints sums the points of all participants.
func TotalPoints(g *models.Game) int {
	total := 0
	for _, p := range g.Participants {
		total += p.Points
	}
	return total
}
