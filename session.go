package teller

import "fmt"

// Session is the handle a caller threads through every operation. It owns
// the loaded record collection and the store it came from, and it applies
// the validate-mutate-persist sequence for every state-changing operation:
// the whole collection is rewritten after each successful mutation.
//
// A Session serves one user interaction at a time; there is no locking
// because only one session is ever active.
type Session struct {
	store    Store
	registry *Registry
	user     int // index of the authenticated record, -1 when logged out
}

// Open loads the whole record collection from the store and returns a
// logged-out session over it.
func Open(store Store) (*Session, error) {
	records, err := store.LoadAll()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, registry: NewRegistry(records), user: -1}, nil
}

// Registry exposes the session's record collection.
func (s *Session) Registry() *Registry { return s.registry }

// Login authenticates the credentials and remembers the matched record.
func (s *Session) Login(identifierRaw, passwordRaw string) (*Account, error) {
	i, err := Resolve(s.registry.Records(), identifierRaw, passwordRaw)
	if err != nil {
		return nil, err
	}
	s.user = i
	return s.registry.Account(i), nil
}

// Logout forgets the authenticated record.
func (s *Session) Logout() { s.user = -1 }

// Account returns the authenticated record, or nil when logged out.
func (s *Session) Account() *Account {
	if s.user < 0 {
		return nil
	}
	return s.registry.Account(s.user)
}

// CreateUser registers a new identity and persists the collection.
func (s *Session) CreateUser(profile UserProfile) (*Account, error) {
	account, err := s.registry.CreateUser(profile)
	if err != nil {
		return nil, err
	}
	if err := s.persist(); err != nil {
		return account, err
	}
	return account, nil
}

// OpenAccount opens a new account for an identity and persists the
// collection. It returns the assigned branch and account number.
func (s *Session) OpenAccount(identifierRaw string) (branch, number string, err error) {
	branch, number, err = s.registry.OpenAccount(identifierRaw)
	if err != nil {
		return "", "", err
	}
	return branch, number, s.persist()
}

// Deposit applies a deposit to the authenticated account and persists the
// collection.
func (s *Session) Deposit(amount Money) error {
	if s.user < 0 {
		return ErrNotLoggedIn
	}
	if err := s.registry.Account(s.user).Deposit(amount); err != nil {
		return err
	}
	return s.persist()
}

// Withdraw applies a withdrawal to the authenticated account and persists
// the collection.
func (s *Session) Withdraw(amount Money) error {
	if s.user < 0 {
		return ErrNotLoggedIn
	}
	if err := s.registry.Account(s.user).Withdraw(amount); err != nil {
		return err
	}
	return s.persist()
}

// Statement renders the authenticated account's statement. Pure read.
func (s *Session) Statement() (string, error) {
	if s.user < 0 {
		return "", ErrNotLoggedIn
	}
	return s.registry.Account(s.user).StatementText(), nil
}

// persist overwrites the store with the whole collection. On failure the
// in-memory mutation is kept but the caller is told the state is not
// durably saved.
func (s *Session) persist() error {
	if err := s.store.SaveAll(s.registry.Records()); err != nil {
		return fmt.Errorf("record store: mutation not durably saved: %w", err)
	}
	return nil
}
