package request

import (
	"github.com/google/uuid"
)

type CreateLunchRequest struct {
	Name string `json:"name" binding:"required"`
	// Optional first product so a lunch can be started from a product page.
	ProductID *uuid.UUID `json:"product_id,omitempty"`
}

type RenameLunchRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddLunchProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type SetLunchItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}
