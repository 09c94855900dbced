package memory

import (
	"context"

	"vidgate/internal/domain/entity"
	"vidgate/internal/domain/repository"
)

type catalogRepository struct {
	store *Store
	tx    *state
}

func (repo *catalogRepository) GetUnseenItem(_ context.Context, userID int64) (*entity.ItemRef, error) {
	var out *entity.ItemRef
	err := repo.store.do(repo.tx, func(st *state) error {
		seen := st.seen[userID]

		unseen := make([]*entity.ItemRef, 0, len(st.items))
		for _, item := range st.items {
			if _, ok := seen[item.ID]; !ok {
				unseen = append(unseen, item)
			}
		}

		if len(unseen) == 0 {
			return repository.ErrCatalogEmpty
		}
		out = pick(unseen)

		return nil
	})

	return out, err
}

func (repo *catalogRepository) GetRandomItem(_ context.Context) (*entity.ItemRef, error) {
	var out *entity.ItemRef
	err := repo.store.do(repo.tx, func(st *state) error {
		if len(st.items) == 0 {
			return repository.ErrCatalogEmpty
		}
		out = pick(st.items)

		return nil
	})

	return out, err
}

func (repo *catalogRepository) MarkSeen(_ context.Context, userID, itemID int64) error {
	return repo.store.do(repo.tx, func(st *state) error {
		set, ok := st.seen[userID]
		if !ok {
			set = make(map[int64]struct{})
			st.seen[userID] = set
		}
		set[itemID] = struct{}{}

		return nil
	})
}

func (repo *catalogRepository) AddItem(_ context.Context, item *entity.ItemRef) error {
	return repo.store.do(repo.tx, func(st *state) error {
		stored := *item
		if stored.ID == 0 {
			stored.ID = st.nextItemID
		}
		if stored.ID >= st.nextItemID {
			st.nextItemID = stored.ID + 1
		}

		st.items = append(st.items, &stored)
		item.ID = stored.ID

		return nil
	})
}
