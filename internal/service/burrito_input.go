package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"burritoapi/internal/model"
)

// BurritoInput is the client-settable part of a review. The owner and the
// counters are not represented and therefore cannot be set by clients.
type BurritoInput struct {
	BurritoName     *string          `json:"burritoName"`
	RestaurantName  *string          `json:"restaurantName"`
	Date            *Date            `json:"date"`
	TortillaQuality *int             `json:"tortillaQuality"`
	Meatiness       *int             `json:"meatiness"`
	Cheesiness      *int             `json:"cheesiness"`
	Mass            *int             `json:"mass"`
	Greasiness      *int             `json:"greasiness"`
	Potatoes        *int             `json:"potatoes"`
	Texture         *int             `json:"texture"`
	Salsa           *int             `json:"salsa"`
	Enjoyment       *int             `json:"enjoyment"`
	Price           *decimal.Decimal `json:"price"`
	Notes           *string          `json:"notes"`
}

// applyTo copies the input onto b. With replace set, absent fields are
// cleared; otherwise they keep their current value.
func (in BurritoInput) applyTo(b *model.Burrito, replace bool) {
	setString(&b.BurritoName, in.BurritoName, replace)
	setString(&b.RestaurantName, in.RestaurantName, replace)
	setString(&b.Notes, in.Notes, replace)

	if in.Date != nil {
		t := in.Date.Time
		b.Date = &t
	} else if replace {
		b.Date = nil
	}
	if in.Price != nil {
		p := *in.Price
		b.Price = &p
	} else if replace {
		b.Price = nil
	}

	setRating(&b.TortillaQuality, in.TortillaQuality, replace)
	setRating(&b.Meatiness, in.Meatiness, replace)
	setRating(&b.Cheesiness, in.Cheesiness, replace)
	setRating(&b.Mass, in.Mass, replace)
	setRating(&b.Greasiness, in.Greasiness, replace)
	setRating(&b.Potatoes, in.Potatoes, replace)
	setRating(&b.Texture, in.Texture, replace)
	setRating(&b.Salsa, in.Salsa, replace)
	setRating(&b.Enjoyment, in.Enjoyment, replace)
}

func setString(dst *string, v *string, replace bool) {
	switch {
	case v != nil:
		*dst = *v
	case replace:
		*dst = ""
	}
}

func setRating(dst **int, v *int, replace bool) {
	switch {
	case v != nil:
		r := *v
		*dst = &r
	case replace:
		*dst = nil
	}
}

// Date accepts RFC 3339 timestamps as well as plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

const dateOnly = "2006-01-02"

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, dateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("date %q is neither RFC 3339 nor YYYY-MM-DD", s)
}
