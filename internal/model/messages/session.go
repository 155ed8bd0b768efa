package messages

import "sync"

// state is what the bot expects as the user's next plain-text message.
type state int

const (
	stateIdle state = iota
	stateAwaitingNewPin
	stateAwaitingPin
	stateAwaitingExpense
	stateAwaitingRecurring
	stateAwaitingLimit
	stateAwaitingBudget
	stateAwaitingEmail
	stateAwaitingCurrency
	stateAwaitingReceipt
)

type session struct {
	state    state
	unlocked bool
}

// sessions live in memory only; a restart locks everyone again.
type sessions struct {
	mu     sync.Mutex
	byUser map[int64]session
}

func newSessions() *sessions {
	return &sessions{byUser: make(map[int64]session)}
}

func (s *sessions) get(userID int64) session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byUser[userID]
}

func (s *sessions) set(userID int64, sess session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = sess
}

func (s *sessions) setState(userID int64, st state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.byUser[userID]
	sess.state = st
	s.byUser[userID] = sess
}

func (s *sessions) unlock(userID int64) {
	s.set(userID, session{state: stateIdle, unlocked: true})
}
