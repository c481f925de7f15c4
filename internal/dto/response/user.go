package response

import (
	"order-management/internal/data/entity"
)

type UserResponse struct {
	ID          string          `json:"id"`
	Surname     string          `json:"surname"`
	Name        string          `json:"name"`
	Patronymic  *string         `json:"patronymic,omitempty"`
	PhoneNumber string          `json:"phone_number"`
	INN         string          `json:"inn"`
	Role        entity.UserRole `json:"role"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Surname:     user.Surname,
		Name:        user.Name,
		Patronymic:  user.Patronymic,
		PhoneNumber: user.PhoneNumber,
		INN:         user.INN,
		Role:        user.Role,
	}
}
