package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func newTestAccountRepo(db *gorm.DB) *accountRepository {
	repo := NewAccountRepository(db).(*accountRepository)
	repo.now = func() time.Time { return testNow }

	return repo
}

func TestAccountRepository_TrySetTempPremiumGrant(t *testing.T) {
	expiry := testNow.Add(24 * time.Hour)

	tests := []struct {
		name        string
		affected    int64
		wantApplied bool
	}{
		{name: "applies when unused", affected: 1, wantApplied: true},
		{name: "no-op when already granted", affected: 0, wantApplied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := newTestAccountRepo(db)

			mock.ExpectExec(regexp.QuoteMeta("WHERE accounts.temp_premium_granted = FALSE")).
				WithArgs(int64(1), expiry, testNow, testNow).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			applied, err := repo.TrySetTempPremiumGrant(context.Background(), 1, expiry)

			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_TrySetTempPremiumGrant_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newTestAccountRepo(db)

	mock.ExpectExec("INSERT INTO accounts").WillReturnError(errors.New("connection reset"))

	applied, err := repo.TrySetTempPremiumGrant(context.Background(), 1, testNow)

	require.Error(t, err)
	assert.False(t, applied)
	assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
}

func TestAccountRepository_IncrementUsage(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		wantApplied bool
	}{
		{name: "below limit", affected: 1, wantApplied: true},
		{name: "limit reached", affected: 0, wantApplied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := newTestAccountRepo(db)

			mock.ExpectExec(regexp.QuoteMeta("WHERE accounts.daily_used < ?")).
				WithArgs(int64(7), testNow, testNow, 10).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			applied, err := repo.IncrementUsage(context.Background(), 7, 10)

			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_IncrementUsage_ZeroLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newTestAccountRepo(db)

	applied, err := repo.IncrementUsage(context.Background(), 7, 0)

	require.NoError(t, err)
	assert.False(t, applied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetUsage(t *testing.T) {
	expiry := testNow.Add(time.Hour)

	t.Run("existing account", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := newTestAccountRepo(db)

		rows := sqlmock.NewRows([]string{"daily_used", "is_premium", "temp_premium_expiry", "temp_premium_granted"}).
			AddRow(4, false, expiry, true)
		mock.ExpectQuery(`SELECT .* FROM "accounts" WHERE id = \$1`).WillReturnRows(rows)

		usage, err := repo.GetUsage(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 4, usage.DailyUsed)
		assert.True(t, usage.TempPremiumGranted)
		require.NotNil(t, usage.TempPremiumExpiry)
		assert.True(t, expiry.Equal(*usage.TempPremiumExpiry))
	})

	t.Run("missing account reads as fresh", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := newTestAccountRepo(db)

		mock.ExpectQuery(`SELECT .* FROM "accounts"`).WillReturnRows(sqlmock.NewRows([]string{"daily_used"}))

		usage, err := repo.GetUsage(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, &entity.Usage{}, usage)
	})
}

func TestAccountRepository_Credential(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newTestAccountRepo(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts (id, credential")).
		WithArgs(int64(1), []byte("sealed"), testNow, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "credential" FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"credential"}).AddRow([]byte("sealed")))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET credential = NULL")).
		WithArgs(testNow, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "credential" FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"credential"}))

	require.NoError(t, repo.SetCredential(ctx, 1, []byte("sealed")))

	credential, err := repo.GetCredential(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed"), credential)

	require.NoError(t, repo.DeleteCredential(ctx, 1))

	credential, err = repo.GetCredential(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, credential)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetAccount_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newTestAccountRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetAccount(context.Background(), 1)

	require.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_ResetDailyUsage(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newTestAccountRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET daily_used = 0")).
		WithArgs(testNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	changed, err := repo.ResetDailyUsage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)
}

func TestAccountRepository_EnsureAccount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := newTestAccountRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts (id, display_name")).
		WithArgs(int64(1), "alice", testNow, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.EnsureAccount(context.Background(), 1, "alice"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_Pick(t *testing.T) {
	columns := []string{"id", "file_id", "caption", "mime_type", "created_at"}

	t.Run("unseen item", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCatalogRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("NOT EXISTS (SELECT 1 FROM seen_items")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(9, "BAAC-9", "clip", "video/mp4", testNow))

		item, err := repo.GetUnseenItem(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, &entity.ItemRef{ID: 9, FileID: "BAAC-9", Caption: "clip", MimeType: "video/mp4"}, item)
	})

	t.Run("nothing unseen", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCatalogRepository(db)

		mock.ExpectQuery("FROM items i").WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetUnseenItem(context.Background(), 3)

		require.ErrorIs(t, err, repository.ErrCatalogEmpty)
	})

	t.Run("random item", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCatalogRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM items ORDER BY random()")).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(2, "BAAC-2", "", "", testNow))

		item, err := repo.GetRandomItem(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), item.ID)
	})
}

func TestCatalogRepository_MarkSeen(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCatalogRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, item_id) DO NOTHING")).
			WithArgs(int64(1), int64(9), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkSeen(context.Background(), 1, 9))
	})

	t.Run("unknown item", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCatalogRepository(db)

		mock.ExpectExec("INSERT INTO seen_items").
			WillReturnError(errors.New(`ERROR: insert or update on table "seen_items" violates foreign key constraint (SQLSTATE 23503)`))

		err := repo.MarkSeen(context.Background(), 1, 404)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogRepository_AddItem(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(`INSERT INTO "items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	item := &entity.ItemRef{FileID: "BAAC-5"}
	require.NoError(t, repo.AddItem(context.Background(), item))

	assert.Equal(t, int64(5), item.ID)
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO accounts").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO seen_items").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			if _, err := f.AccountRepo().IncrementUsage(context.Background(), 1, 10); err != nil {
				return err
			}

			return f.CatalogRepo().MarkSeen(context.Background(), 1, 2)
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO accounts").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO seen_items").WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
			if _, err := f.AccountRepo().IncrementUsage(context.Background(), 1, 10); err != nil {
				return err
			}

			return f.CatalogRepo().MarkSeen(context.Background(), 1, 2)
		})

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
				panic("boom")
			})
		})
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrations(t *testing.T) {
	prev := gooseUpContext
	t.Cleanup(func() { gooseUpContext = prev })

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("dirty database")
	}

	require.Error(t, RunMigrations(context.Background(), nil))
}

func TestPrepareStore(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		migrate     bool
		wantErr     string
		wantMigrate bool
	}{
		{name: "ping only", migrate: false},
		{name: "ping then migrate", migrate: true, wantMigrate: true},
		{name: "unreachable store skips migrations", pingErr: errors.New("connection refused"), migrate: true, wantErr: "failed to ping entitlement store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			t.Cleanup(func() { _ = sqlDB.Close() })

			prev := gooseUpContext
			t.Cleanup(func() { gooseUpContext = prev })
			migrated := false
			gooseUpContext = func(_ context.Context, db *sql.DB, _ string, _ ...goose.OptionsFunc) error {
				assert.Same(t, sqlDB, db)
				migrated = true

				return nil
			}

			mock.ExpectPing().WillReturnError(tt.pingErr)

			err = prepareStore(context.Background(), slog.New(slog.DiscardHandler), sqlDB, tt.migrate)

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantMigrate, migrated)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	_, _, ok := poolWaitReport(prev, prev)
	assert.False(t, ok, "no new waits")

	level, attrs, ok := poolWaitReport(prev, sql.DBStats{WaitCount: 6, WaitDuration: 20 * time.Millisecond, InUse: 10})
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Int64("waits", 2))
	assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))
	assert.Contains(t, attrs, slog.Int("in_use", 10))

	level, _, ok = poolWaitReport(prev, sql.DBStats{WaitCount: 5, WaitDuration: 10*time.Millisecond + poolWaitWarnThreshold})
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l := &gormSlogLogger{}

	sql, params := l.ParamsFilter(context.Background(), "INSERT", int64(1), []byte("secret"), "name")

	assert.Equal(t, "INSERT", sql)
	assert.Equal(t, []any{int64(1), "<6 bytes>", "name"}, params)
}
