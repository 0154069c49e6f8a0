package models

import "time"

// Channel is a curated YouTube channel shown on the learning pages.
type Channel struct {
	ID         string    `gorm:"type:varchar(191);primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	Username   string    `gorm:"type:varchar(100);not null" json:"username"`
	URL        string    `gorm:"type:varchar(255);not null" json:"url"`
	IsActive   bool      `gorm:"default:true;index" json:"isActive"`
	VideoCount int       `gorm:"default:0" json:"videoCount"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
