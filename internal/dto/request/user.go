package request

type CreateUserRequest struct {
	Surname     string  `json:"surname" validate:"required,max=100"`
	Name        string  `json:"name" validate:"required,max=100"`
	Patronymic  *string `json:"patronymic,omitempty" validate:"omitempty,max=100"`
	PhoneNumber string  `json:"phone_number" validate:"required,e164,startswith=+7,len=12"`
	INN         string  `json:"inn" validate:"required,len=12,numeric"`
	Role        string  `json:"role" validate:"omitempty,oneof=user admin"`
}

type UpdateUserRequest struct {
	Surname     string  `json:"surname" validate:"required,max=100"`
	Name        string  `json:"name" validate:"required,max=100"`
	Patronymic  *string `json:"patronymic,omitempty" validate:"omitempty,max=100"`
	PhoneNumber string  `json:"phone_number" validate:"required,e164,startswith=+7,len=12"`
	INN         string  `json:"inn" validate:"required,len=12,numeric"`
	Role        string  `json:"role" validate:"required,oneof=user admin"`
}
