package chat

// Heuristic adjusts the difficulty level from the length of the bot's
// reply. A short reply is read as the user being on track (level up); a
// long reply as the bot over-explaining (level down). The thresholds are
// deliberate proxies carried over unchanged; tune them here, not inline.
type Heuristic struct {
	// ShortMax: replies shorter than this raise the level.
	ShortMax int
	// LongMin: replies longer than this lower the level.
	LongMin int
}

// DefaultHeuristic returns the standard 100/200 character thresholds.
func DefaultHeuristic() Heuristic {
	return Heuristic{ShortMax: 100, LongMin: 200}
}

// Adjust nudges the conversation level based on the reply length.
// Hint turns never move the level; the hint fragment makes replies short
// by instruction, not because the user is doing well.
func (h Heuristic) Adjust(c *Conversation, reply string, hintRequested bool) {
	if hintRequested {
		return
	}
	switch {
	case len(reply) < h.ShortMax:
		c.SetLevel(c.Level() + 1)
	case len(reply) > h.LongMin:
		c.SetLevel(c.Level() - 1)
	}
}

// NudgeUp raises the level by one step, clamped. Used when an answer to a
// multiple-choice question is correct.
func NudgeUp(c *Conversation) {
	c.SetLevel(c.Level() + 1)
}

// NudgeDown lowers the level by one step, clamped. Used when an answer to
// a multiple-choice question is wrong.
func NudgeDown(c *Conversation) {
	c.SetLevel(c.Level() - 1)
}
