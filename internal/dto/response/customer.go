package response

import (
	"order-management/internal/data/entity"
)

type CustomerResponse struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	INN    string              `json:"inn"`
	Type   entity.CustomerType `json:"type"`
	UserID string              `json:"user_id"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:     customer.ID.String(),
		Name:   customer.Name,
		INN:    customer.INN,
		Type:   customer.Type,
		UserID: customer.UserID.String(),
	}
}
