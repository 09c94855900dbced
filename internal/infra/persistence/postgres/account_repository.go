package postgres

import (
	"context"
	"time"

	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/repository"
	"vidgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Every mutation below is one statement, so it is atomic per user without an
// explicit transaction. Missing rows are created by the upsert itself.
const (
	ensureAccountSQL = `INSERT INTO accounts (id, display_name, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name, updated_at = EXCLUDED.updated_at
WHERE EXCLUDED.display_name <> '' AND accounts.display_name <> EXCLUDED.display_name`

	setCredentialSQL = `INSERT INTO accounts (id, credential, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET credential = EXCLUDED.credential, updated_at = EXCLUDED.updated_at`

	deleteCredentialSQL = `UPDATE accounts SET credential = NULL, updated_at = ? WHERE id = ?`

	// The increment is capped at the limit the caller decided against.
	incrementUsageSQL = `INSERT INTO accounts (id, daily_used, created_at, updated_at)
VALUES (?, 1, ?, ?)
ON CONFLICT (id) DO UPDATE SET daily_used = accounts.daily_used + 1, updated_at = EXCLUDED.updated_at
WHERE accounts.daily_used < ?`

	// The WHERE on the conflict branch makes the grant a compare-and-set on temp_premium_granted.
	grantTempPremiumSQL = `INSERT INTO accounts (id, temp_premium_expiry, temp_premium_granted, created_at, updated_at)
VALUES (?, ?, TRUE, ?, ?)
ON CONFLICT (id) DO UPDATE SET temp_premium_expiry = EXCLUDED.temp_premium_expiry,
	temp_premium_granted = TRUE, updated_at = EXCLUDED.updated_at
WHERE accounts.temp_premium_granted = FALSE`

	resetDailyUsageSQL = `UPDATE accounts SET daily_used = 0, updated_at = ? WHERE daily_used <> 0`
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db:  db,
		now: time.Now,
	}
}

func (repo *accountRepository) EnsureAccount(ctx context.Context, userID int64, displayName string) error {
	now := repo.now().UTC()
	if err := repo.db.WithContext(ctx).Exec(ensureAccountSQL, userID, displayName, now, now).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure account")
	}

	return nil
}

func (repo *accountRepository) GetAccount(ctx context.Context, userID int64) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Where("id = ?", userID).Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

func (repo *accountRepository) GetCredential(ctx context.Context, userID int64) ([]byte, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Select("credential").Where("id = ?", userID).Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	return accountM.Credential, nil
}

func (repo *accountRepository) SetCredential(ctx context.Context, userID int64, credential []byte) error {
	now := repo.now().UTC()
	if err := repo.db.WithContext(ctx).Exec(setCredentialSQL, userID, credential, now, now).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store credential")
	}

	return nil
}

func (repo *accountRepository) DeleteCredential(ctx context.Context, userID int64) error {
	if err := repo.db.WithContext(ctx).Exec(deleteCredentialSQL, repo.now().UTC(), userID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete credential")
	}

	return nil
}

func (repo *accountRepository) GetUsage(ctx context.Context, userID int64) (*entity.Usage, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Select("daily_used", "is_premium", "temp_premium_expiry", "temp_premium_granted").
		Where("id = ?", userID).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Usage{}, nil
		}

		return nil, errors.Wrap(err, "failed to load usage")
	}

	return toAccountDomain(&accountM).Usage(), nil
}

func (repo *accountRepository) IncrementUsage(ctx context.Context, userID int64, limit int) (bool, error) {
	if limit <= 0 {
		return false, nil
	}

	now := repo.now().UTC()
	result := repo.db.WithContext(ctx).Exec(incrementUsageSQL, userID, now, now, limit)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment usage")
	}

	return result.RowsAffected > 0, nil
}

func (repo *accountRepository) TrySetTempPremiumGrant(ctx context.Context, userID int64, expiry time.Time) (bool, error) {
	now := repo.now().UTC()
	result := repo.db.WithContext(ctx).Exec(grantTempPremiumSQL, userID, expiry.UTC(), now, now)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to grant temp premium")
	}

	return result.RowsAffected == 1, nil
}

func (repo *accountRepository) ResetDailyUsage(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(resetDailyUsageSQL, repo.now().UTC())
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reset daily usage")
	}

	return result.RowsAffected, nil
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:                 accountM.ID,
		DisplayName:        accountM.DisplayName,
		DailyUsed:          accountM.DailyUsed,
		IsPremium:          accountM.IsPremium,
		TempPremiumExpiry:  accountM.TempPremiumExpiry,
		TempPremiumGranted: accountM.TempPremiumGranted,
		Credential:         accountM.Credential,
		CreatedAt:          accountM.CreatedAt,
		UpdatedAt:          accountM.UpdatedAt,
	}
}
