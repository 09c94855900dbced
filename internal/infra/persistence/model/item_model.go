package model

import "time"

// ItemModel is the GORM-specific struct for the 'items' table.
type ItemModel struct {
	ID        int64  `gorm:"primaryKey"`
	FileID    string `gorm:"type:text;not null"`
	Caption   string `gorm:"type:text;not null;default:''"`
	MimeType  string `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// SeenItemModel is the GORM-specific struct for the 'seen_items' table.
// One row per user and item; re-inserts are ignored.
type SeenItemModel struct {
	UserID int64 `gorm:"primaryKey;autoIncrement:false"`
	ItemID int64 `gorm:"primaryKey;autoIncrement:false"`
	SeenAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SeenItemModel) TableName() string {
	return "seen_items"
}
