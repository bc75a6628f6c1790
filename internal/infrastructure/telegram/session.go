package telegram

import "sync"

// Action is the pending input a user's next text message answers.
type Action string

const (
	ActionNone          Action = ""
	ActionSearchRecipes Action = "search_recipes"
	ActionAskDietician  Action = "ask_dietician"
	ActionComparePrices Action = "compare_prices"
	ActionFindShops     Action = "find_shops"
	ActionAddToShopping Action = "add_to_shopping"
)

// SessionStore keeps per-user conversation state in memory. State is only a
// navigation aid; losing it on restart drops users back to the main menu,
// nothing else.
type SessionStore struct {
	mu      sync.RWMutex
	actions map[int64]Action
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{actions: make(map[int64]Action)}
}

// Set records the pending action for a user.
func (s *SessionStore) Set(telegramID int64, action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions[telegramID] = action
}

// Get returns the pending action for a user, ActionNone when there is none.
func (s *SessionStore) Get(telegramID int64) Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actions[telegramID]
}

// Clear removes the pending action for a user.
func (s *SessionStore) Clear(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.actions, telegramID)
}
