package request

// CreateProductRequest is the create product payload. Price is in baht.
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Barcode      *string `json:"barcode"`
	Price        float64 `json:"price" binding:"min=0"`
	Stock        int     `json:"stock" binding:"min=0"`
	ReorderPoint *int    `json:"reorder_point"`
}

// UpdateProductRequest is the partial update payload. Stock is absent on
// purpose; it only moves through the stock endpoints.
type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Barcode      *string  `json:"barcode"`
	Price        *float64 `json:"price"`
	ReorderPoint *int     `json:"reorder_point"`
}

// StockInRequest is the restock payload
type StockInRequest struct {
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Note     *string `json:"note"`
}

// StockAdjustRequest is the signed correction payload
type StockAdjustRequest struct {
	Delta int     `json:"delta" binding:"required"`
	Note  *string `json:"note"`
}
