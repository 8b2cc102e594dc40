package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	Price       float64 `json:"price" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	MinStock    int     `json:"min_stock" binding:"min=0"`
	Description *string `json:"description"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Stock       *int     `json:"stock" binding:"omitempty,min=0"`
	MinStock    *int     `json:"min_stock" binding:"omitempty,min=0"`
	Description *string  `json:"description"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
