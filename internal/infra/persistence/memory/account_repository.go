package memory

import (
	"context"
	"slices"
	"time"

	"vidgate/internal/domain/entity"
	"vidgate/internal/domain/repository"
)

type accountRepository struct {
	store *Store
	tx    *state
}

func (repo *accountRepository) EnsureAccount(_ context.Context, userID int64, displayName string) error {
	now := repo.store.now()

	return repo.store.do(repo.tx, func(st *state) error {
		account := st.account(userID, now)
		if displayName != "" && account.DisplayName != displayName {
			account.DisplayName = displayName
			account.UpdatedAt = now
		}

		return nil
	})
}

func (repo *accountRepository) GetAccount(_ context.Context, userID int64) (*entity.Account, error) {
	var out *entity.Account
	err := repo.store.do(repo.tx, func(st *state) error {
		account, ok := st.accounts[userID]
		if !ok {
			return repository.ErrAccountNotFound
		}

		copied := *account
		copied.Credential = slices.Clone(account.Credential)
		out = &copied

		return nil
	})

	return out, err
}

func (repo *accountRepository) GetCredential(_ context.Context, userID int64) ([]byte, error) {
	var out []byte
	err := repo.store.do(repo.tx, func(st *state) error {
		if account, ok := st.accounts[userID]; ok {
			out = slices.Clone(account.Credential)
		}

		return nil
	})

	return out, err
}

func (repo *accountRepository) SetCredential(_ context.Context, userID int64, credential []byte) error {
	now := repo.store.now()

	return repo.store.do(repo.tx, func(st *state) error {
		account := st.account(userID, now)
		account.Credential = slices.Clone(credential)
		account.UpdatedAt = now

		return nil
	})
}

func (repo *accountRepository) DeleteCredential(_ context.Context, userID int64) error {
	now := repo.store.now()

	return repo.store.do(repo.tx, func(st *state) error {
		if account, ok := st.accounts[userID]; ok {
			account.Credential = nil
			account.UpdatedAt = now
		}

		return nil
	})
}

func (repo *accountRepository) GetUsage(_ context.Context, userID int64) (*entity.Usage, error) {
	usage := &entity.Usage{}
	err := repo.store.do(repo.tx, func(st *state) error {
		if account, ok := st.accounts[userID]; ok {
			usage = account.Usage()
		}

		return nil
	})

	return usage, err
}

func (repo *accountRepository) IncrementUsage(_ context.Context, userID int64, limit int) (bool, error) {
	if limit <= 0 {
		return false, nil
	}

	now := repo.store.now()
	applied := false
	err := repo.store.do(repo.tx, func(st *state) error {
		account := st.account(userID, now)
		if account.DailyUsed >= limit {
			return nil
		}
		account.DailyUsed++
		account.UpdatedAt = now
		applied = true

		return nil
	})

	return applied, err
}

func (repo *accountRepository) TrySetTempPremiumGrant(_ context.Context, userID int64, expiry time.Time) (bool, error) {
	now := repo.store.now()
	applied := false

	err := repo.store.do(repo.tx, func(st *state) error {
		account := st.account(userID, now)
		if account.TempPremiumGranted {
			return nil
		}

		account.TempPremiumGranted = true
		account.TempPremiumExpiry = &expiry
		account.UpdatedAt = now
		applied = true

		return nil
	})

	return applied, err
}

func (repo *accountRepository) ResetDailyUsage(_ context.Context) (int64, error) {
	now := repo.store.now()
	var rows int64

	err := repo.store.do(repo.tx, func(st *state) error {
		for _, account := range st.accounts {
			if account.DailyUsed == 0 {
				continue
			}

			account.DailyUsed = 0
			account.UpdatedAt = now
			rows++
		}

		return nil
	})

	return rows, err
}
