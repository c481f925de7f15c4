package request

type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	INN  string `json:"inn" validate:"required,min=10,max=12,numeric"`
	Type string `json:"type" validate:"required,oneof=legal_entity individual"`
}

type UpdateCustomerRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	INN  string `json:"inn" validate:"required,min=10,max=12,numeric"`
	Type string `json:"type" validate:"required,oneof=legal_entity individual"`
}
