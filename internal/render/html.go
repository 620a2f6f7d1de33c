package render

import (
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/douze-points/internal/game"
)

// ScoreTable generates HTML for the scoreboard
func ScoreTable(standings []game.Standing) string {
	if len(standings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<h2>Scores</h2><table class="score-table" aria-label="Scoreboard sorted by points"><thead><tr><th>#</th><th>Participant</th><th aria-sort="descending" title="Sorted by points (desc)">Points ↓</th><th>Votes left</th></tr></thead><tbody>`)
	for _, s := range standings {
		b.WriteString(`<tr><td class="score-rank">`)
		b.WriteString(strconv.Itoa(s.Rank))
		b.WriteString(`</td><td class="score-player">`)
		if s.Avatar != "" {
			b.WriteString(`<img class="avatar" alt="" src="`)
			b.WriteString(htmlpkg.EscapeString(s.Avatar))
			b.WriteString(`">`)
		}
		b.WriteString(htmlpkg.EscapeString(s.Name))
		b.WriteString(`</td><td><span class="badge-pill badge-points">`)
		b.WriteString(strconv.Itoa(s.Points))
		b.WriteString(`</span></td><td>`)
		b.WriteString(strconv.Itoa(s.VotesLeft))
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// VoteProgress generates HTML for the "who is done voting" counter
func VoteProgress(done, total int) string {
	var b strings.Builder
	b.WriteString(`<p class="ready-count">`)
	b.WriteString(strconv.Itoa(done))
	b.WriteString(`/`)
	b.WriteString(strconv.Itoa(total))
	b.WriteString(` participants have voted</p>`)
	return b.String()
}
