package db_models

import (
	"github.com/lib/pq"
)

// Excursion is an admin-created catalog entry, managed through the admin
// console and stored alongside the static fixture catalog.
type Excursion struct {
	BaseModel
	Title       string
	Description string
	Location    string
	Price       float64
	Duration    string
	Types       pq.StringArray `gorm:"type:text[]"`
	Rating      float64
	GroupMin    int
	GroupMax    int
}
