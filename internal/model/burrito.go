package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Counter names a like/dislike column that can be incremented.
type Counter string

const (
	CounterThumbsUp   Counter = "thumbs_up"
	CounterThumbsDown Counter = "thumbs_down"
)

// Burrito is a single burrito review. Ratings are optional but, when set,
// must lie in [1,10].
type Burrito struct {
	ID              uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	BurritoName     string           `json:"burritoName" gorm:"size:255"`
	RestaurantName  string           `json:"restaurantName" gorm:"size:255;index"`
	Date            *time.Time       `json:"date"`
	TortillaQuality *int             `json:"tortillaQuality" validate:"omitempty,min=1,max=10"`
	Meatiness       *int             `json:"meatiness" validate:"omitempty,min=1,max=10"`
	Cheesiness      *int             `json:"cheesiness" validate:"omitempty,min=1,max=10"`
	Mass            *int             `json:"mass" validate:"omitempty,min=1,max=10"`
	Greasiness      *int             `json:"greasiness" validate:"omitempty,min=1,max=10"`
	Potatoes        *int             `json:"potatoes" validate:"omitempty,min=1,max=10"`
	Texture         *int             `json:"texture" validate:"omitempty,min=1,max=10"`
	Salsa           *int             `json:"salsa" validate:"omitempty,min=1,max=10"`
	Enjoyment       *int             `json:"enjoyment" validate:"omitempty,min=1,max=10"`
	Price           *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Notes           string           `json:"notes" gorm:"type:text"`
	ThumbsUp        int              `json:"thumbsUp" gorm:"not null;default:0"`
	ThumbsDown      int              `json:"thumbsDown" gorm:"not null;default:0"`
	UserID          uuid.UUID        `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// EditableColumns lists the columns a review owner may change. The owner
// reference and the counters are not included.
var EditableColumns = []string{
	"burrito_name", "restaurant_name", "date",
	"tortilla_quality", "meatiness", "cheesiness", "mass", "greasiness",
	"potatoes", "texture", "salsa", "enjoyment",
	"price", "notes",
}

// BeforeCreate sets UUID before creating the record.
func (b *Burrito) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
