package sse

// Live event type constants
const (
	EventGameUpdate       = "game-update"
	EventScoreboardUpdate = "scoreboard-update"
	EventReset            = "reset"
	EventVote             = "vote"
	EventFinished         = "voting-finished"
)
