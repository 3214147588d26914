package models

import "gorm.io/gorm"

// MaxTermsPerList caps how many terms a single list may hold.
const MaxTermsPerList = 300

// Categories is the fixed set of values accepted for TermList.Category.
var Categories = []string{
	"languages",
	"entertainment",
	"math",
	"physics",
	"chemistry",
	"biology",
	"history",
	"geography",
	"philosophy",
}

// ValidCategory reports whether c is one of the allowed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// TermList represents an ordered collection of terms owned by a single author
type TermList struct {
	gorm.Model
	PublicID    string `gorm:"size:100;uniqueIndex"`
	AuthorID    uint   `gorm:"not null;index"`
	Author      User   `gorm:"foreignKey:AuthorID" json:"-"`
	ListName    string `gorm:"not null;size:50"`
	Description string `gorm:"size:250"`
	Category    string `gorm:"not null;size:50"`
	IsPublic    bool   `gorm:"default:false"`

	// Terms carries the list's cards in authored order (Term.Position).
	Terms []Term `gorm:"foreignKey:ListID"`

	UsersWhoFavourited []User `gorm:"many2many:term_list_favourites;"`
}
