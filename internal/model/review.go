package model

import (
	"time"
)

type Review struct {
	ID        uint   `gorm:"primaryKey"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text;not null"`
	BookID    uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Review) TableName() string {
	return "reviews"
}
