package model

import (
	"time"
)

type Book struct {
	ID          uint     `gorm:"primaryKey"`
	Title       string   `gorm:"not null"`
	Author      string   `gorm:"not null"`
	Year        int      `gorm:"not null"`
	Genre       string   `gorm:"not null"`
	Description string   `gorm:"type:text;not null"`
	Reviews     []Review `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Book) TableName() string {
	return "books"
}
