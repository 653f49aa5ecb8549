package sessionState

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vovaf709/cinema-bot/internal/domain"
)

// SessionStates keeps one SessionState per chat for the process lifetime.
// The mutex guards the map only; state fields are owned by the chat's
// serialized handler task.
type SessionStates struct {
	states map[int64]*domain.SessionState
	mu     sync.Mutex
}

func NewSessionStates() *SessionStates {
	return &SessionStates{
		states: make(map[int64]*domain.SessionState),
	}
}

// GetStateByID returns the chat's state, creating it on first interaction.
func (s *SessionStates) GetStateByID(chatID int64) *domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[chatID]
	if !ok {
		state = &domain.SessionState{
			CorrelationID: uuid.New().String(),
		}
		s.states[chatID] = state
	}
	return state
}

func (s *SessionStates) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}

// ActiveChats lists chats that have a live state.
func (s *SessionStates) ActiveChats() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats := make([]int64, 0, len(s.states))
	for chatID := range s.states {
		chats = append(chats, chatID)
	}
	return chats
}
