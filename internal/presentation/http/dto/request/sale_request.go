package request

import "github.com/google/uuid"

// SaleItemRequest is one line of a sale
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest is the create sale payload
type CreateSaleRequest struct {
	CustomerID  *uuid.UUID        `json:"customer_id"`
	PaymentType string            `json:"payment_type" binding:"required,oneof=cash credit"`
	Items       []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateCustomerRequest is the create customer payload
type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone"`
}

// UpdateCustomerRequest is the partial customer update payload
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// PayDebtRequest is the debt payment payload. Amount is in baht.
type PayDebtRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// AddDebtRequest is the manual debt entry payload. Amount is in baht.
type AddDebtRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
