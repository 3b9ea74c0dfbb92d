package model

import (
	"time"

	"github.com/google/uuid"
)

// Container is a tracked physical unit of a product. Its UUID is the
// externally scannable identity encoded into the QR code.
//
// Product is resolved at read time from ProductID. It is nil when the
// referenced product has since been deleted; the reference itself is
// only validated when the container is created or repointed.
type Container struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	UUID      uuid.UUID `json:"uuid"`
	Quantity  int       `json:"quantity"`
	Opened    bool      `json:"opened"`
	Remaining *float64  `json:"remaining,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
