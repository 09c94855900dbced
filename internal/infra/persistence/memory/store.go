// Package memory is an in-process implementation of the persistence layer.
// It backs local runs and tests; state is lost on restart.
package memory

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"vidgate/internal/domain/entity"
	"vidgate/internal/domain/repository"
)

// Store owns all state. Transactions work on a copy that replaces the state on commit.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

type state struct {
	accounts   map[int64]*entity.Account
	items      []*entity.ItemRef
	seen       map[int64]map[int64]struct{}
	nextItemID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		state: &state{
			accounts:   make(map[int64]*entity.Account),
			seen:       make(map[int64]map[int64]struct{}),
			nextItemID: 1,
		},
		now: time.Now,
	}
}

// NewAccountRepository returns the account repository view of s.
func NewAccountRepository(s *Store) repository.AccountRepository {
	return &accountRepository{store: s}
}

// NewCatalogRepository returns the catalog repository view of s.
func NewCatalogRepository(s *Store) repository.CatalogRepository {
	return &catalogRepository{store: s}
}

// NewTransactionManager returns a transaction manager over s.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

// do runs fn against the live state, or against tx when bound to a transaction.
func (s *Store) do(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.state)
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	tx    *state
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) CatalogRepo() repository.CatalogRepository {
	return &catalogRepository{store: f.store, tx: f.tx}
}

// Execute runs fn on a copy of the state and swaps it in when fn succeeds.
// fn must only use the repositories handed to it; the store stays locked meanwhile.
func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := tm.store.state.clone()
	if err := fn(&repositoryFactory{store: tm.store, tx: tx}); err != nil {
		return err
	}

	tm.store.state = tx

	return nil
}

func (st *state) clone() *state {
	out := &state{
		accounts:   make(map[int64]*entity.Account, len(st.accounts)),
		items:      make([]*entity.ItemRef, len(st.items)),
		seen:       make(map[int64]map[int64]struct{}, len(st.seen)),
		nextItemID: st.nextItemID,
	}

	for id, account := range st.accounts {
		copied := *account
		out.accounts[id] = &copied
	}

	copy(out.items, st.items)

	for userID, items := range st.seen {
		set := make(map[int64]struct{}, len(items))
		for itemID := range items {
			set[itemID] = struct{}{}
		}
		out.seen[userID] = set
	}

	return out
}

// account returns the user's account, creating it when missing.
func (st *state) account(userID int64, now time.Time) *entity.Account {
	account, ok := st.accounts[userID]
	if !ok {
		account = &entity.Account{ID: userID, CreatedAt: now, UpdatedAt: now}
		st.accounts[userID] = account
	}

	return account
}

func pick(items []*entity.ItemRef) *entity.ItemRef {
	item := *items[rand.IntN(len(items))]

	return &item
}
