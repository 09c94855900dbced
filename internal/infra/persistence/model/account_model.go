package model

import "time"

// AccountModel is the GORM-specific struct for the 'accounts' table.
// ID is the chat platform's user id, not a generated key.
type AccountModel struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement:false"`
	DisplayName        string `gorm:"type:text;not null;default:''"`
	DailyUsed          int    `gorm:"not null;default:0"`
	IsPremium          bool   `gorm:"not null;default:false"`
	TempPremiumExpiry  *time.Time
	TempPremiumGranted bool   `gorm:"not null;default:false"`
	Credential         []byte `gorm:"type:bytea"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
