package domain

// SessionState is the per-chat feedback memory. The telegram router
// serializes all updates of one chat, so fields need no locking.
type SessionState struct {
	CorrelationID string

	// PendingTrailerKey is the trailer awaiting /wrong feedback,
	// empty when no trailer was offered since the last query.
	PendingTrailerKey string

	// FeedbackStreak counts consecutive /wrong calls that had nothing
	// to act on. Reset by any handled feedback or a new query.
	FeedbackStreak int

	// PromptID scopes Candidates to the selection prompt that produced
	// them, so stale or foreign callbacks cannot pick a film.
	PromptID   string
	Candidates []Film
}

// ClearPrompt drops an open selection prompt, if any.
func (s *SessionState) ClearPrompt() {
	s.PromptID = ""
	s.Candidates = nil
}
