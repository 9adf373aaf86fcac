package telegram

// Gate is the allow-list deciding which Telegram users reach the handlers.
type Gate struct {
	allowed map[int64]struct{}
}

// NewGate creates a gate from the configured user ids.
func NewGate(userIDs []int64) *Gate {
	allowed := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		allowed[id] = struct{}{}
	}
	return &Gate{allowed: allowed}
}

// Allows reports whether the user may use the bot.
func (g *Gate) Allows(userID int64) bool {
	_, ok := g.allowed[userID]
	return ok
}
