package models

import "time"

// DownloadFile maps a purchasable file key (e.g. "styles", "tones") to the
// stored object and the plan that unlocks it.
type DownloadFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FileKey      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"fileKey"`
	FileName     string    `gorm:"type:varchar(200);not null" json:"fileName"`
	ObjectKey    string    `gorm:"type:varchar(255);not null;default:''" json:"objectKey"`
	FallbackURL  string    `gorm:"type:varchar(500);not null;default:''" json:"fallbackUrl"`
	RequiredPlan string    `gorm:"type:varchar(50);not null;index" json:"requiredPlan"`
	IsActive     bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
