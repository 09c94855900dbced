package service

import (
	"context"

	"vidgate/internal/domain/entity"
)

// ProgressStage names the external call a progress notice belongs to.
type ProgressStage string

const (
	ProgressConnecting        ProgressStage = "connecting"
	ProgressVerifyingCode     ProgressStage = "verifying_code"
	ProgressVerifyingPassword ProgressStage = "verifying_password"
	ProgressSaving            ProgressStage = "saving"
)

// ContentSender delivers catalog items to end users through the bot transport.
type ContentSender interface {
	SendItem(ctx context.Context, userID int64, item *entity.ItemRef) error
}

// ProgressNotifier shows a cosmetic loading indicator while a login step waits on the network.
type ProgressNotifier interface {
	NotifyProgress(ctx context.Context, userID int64, stage ProgressStage, tick int) error
}
