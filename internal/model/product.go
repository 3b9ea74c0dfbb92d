package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog definition that containers reference.
// UUID is minted once at creation and never changes.
type Product struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	UPC       string     `json:"upc"`
	UUID      uuid.UUID  `json:"uuid"`
	Nutrition *Nutrition `json:"nutrition,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Nutrition is an embedded value with no identity of its own.
// It is stored inline with the product and copies with it.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Fat      float64 `json:"fat"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
}
