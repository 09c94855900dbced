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

const (
	unseenItemSQL = `SELECT i.id, i.file_id, i.caption, i.mime_type, i.created_at FROM items i
WHERE NOT EXISTS (SELECT 1 FROM seen_items s WHERE s.user_id = ? AND s.item_id = i.id)
ORDER BY random() LIMIT 1`

	randomItemSQL = `SELECT id, file_id, caption, mime_type, created_at FROM items ORDER BY random() LIMIT 1`

	markSeenSQL = `INSERT INTO seen_items (user_id, item_id, seen_at) VALUES (?, ?, ?)
ON CONFLICT (user_id, item_id) DO NOTHING`
)

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db:  db,
		now: time.Now,
	}
}

func (repo *catalogRepository) GetUnseenItem(ctx context.Context, userID int64) (*entity.ItemRef, error) {
	return repo.pick(ctx, unseenItemSQL, userID)
}

func (repo *catalogRepository) GetRandomItem(ctx context.Context) (*entity.ItemRef, error) {
	return repo.pick(ctx, randomItemSQL)
}

func (repo *catalogRepository) pick(ctx context.Context, query string, args ...any) (*entity.ItemRef, error) {
	var itemM model.ItemModel
	result := repo.db.WithContext(ctx).Raw(query, args...).Scan(&itemM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to pick item")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCatalogEmpty
	}

	return toItemDomain(&itemM), nil
}

func (repo *catalogRepository) MarkSeen(ctx context.Context, userID, itemID int64) error {
	err := repo.db.WithContext(ctx).Exec(markSeenSQL, userID, itemID, repo.now().UTC()).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("item does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to mark item seen")
	}

	return nil
}

func (repo *catalogRepository) AddItem(ctx context.Context, item *entity.ItemRef) error {
	itemM := fromItemDomain(item)
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("item needs a file id")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add item")
	}

	item.ID = itemM.ID

	return nil
}

func toItemDomain(itemM *model.ItemModel) *entity.ItemRef {
	return &entity.ItemRef{
		ID:       itemM.ID,
		FileID:   itemM.FileID,
		Caption:  itemM.Caption,
		MimeType: itemM.MimeType,
	}
}

func fromItemDomain(item *entity.ItemRef) *model.ItemModel {
	return &model.ItemModel{
		ID:       item.ID,
		FileID:   item.FileID,
		Caption:  item.Caption,
		MimeType: item.MimeType,
	}
}
