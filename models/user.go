package models

import "gorm.io/gorm"

// User represents a registered account
type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null;size:100"`
	Email        string `gorm:"unique;not null;size:200"`
	PasswordHash string `gorm:"not null" json:"-"`

	TermLists []TermList `gorm:"foreignKey:AuthorID"`
}
