package request

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Price       string `json:"price" validate:"required"`
	IsCountable *bool  `json:"is_countable,omitempty"`
}

type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Price       string `json:"price" validate:"required"`
	IsCountable bool   `json:"is_countable"`
}
