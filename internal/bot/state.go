package bot

import "sync"

// Conversation states. A state is set when the bot asks the user a
// question and cleared once the answer arrives.
const (
	stateNone             = ""
	stateAwaitingAmount   = "withdraw_amount"
	stateAwaitingDetails  = "withdraw_details"
	stateAwaitingSupport  = "support_message"
	stateAwaitingBalance  = "admin_balance_edit"
	stateAwaitingNewsText = "admin_broadcast"
)

type conversation struct {
	state  string
	amount int64
}

// stateStore keeps per-user conversation state in memory. Losing it on
// restart only aborts an unfinished dialog, nothing durable depends on it.
type stateStore struct {
	mu    sync.Mutex
	convs map[int64]conversation
}

func newStateStore() *stateStore {
	return &stateStore{convs: make(map[int64]conversation)}
}

func (s *stateStore) get(userID int64) conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.convs[userID]
}

func (s *stateStore) set(userID int64, conv conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[userID] = conv
}

func (s *stateStore) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.convs, userID)
}
