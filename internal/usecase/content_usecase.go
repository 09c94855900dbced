package usecase

import (
	"context"

	"vidgate/internal/domain/entity"
)

// RequestContentInput is one user asking for an item.
type RequestContentInput struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	DisplayName string `json:"display_name" validate:"max=128"`
}

// AddItemInput registers a media item the transport already holds.
type AddItemInput struct {
	FileID   string `json:"file_id" validate:"required,max=512"`
	Caption  string `json:"caption" validate:"max=1024"`
	MimeType string `json:"mime_type" validate:"omitempty,max=128"`
}

// ContentUsecase gates catalog delivery behind the quota.
type ContentUsecase interface {
	RequestContent(ctx context.Context, input *RequestContentInput) (*entity.ContentResult, error)

	// AddItem indexes a new item into the catalog.
	AddItem(ctx context.Context, input *AddItemInput) (*entity.ItemRef, error)
}
