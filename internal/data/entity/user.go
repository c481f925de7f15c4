package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid reports whether the role is one of the closed set of values
// enforced by the storage layer.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a seller account. Phone number and INN are unique across all users.
type User struct {
	ID          uuid.UUID `db:"id"`
	Surname     string    `db:"surname"`
	Name        string    `db:"name"`
	Patronymic  *string   `db:"patronymic"`
	PhoneNumber string    `db:"phone_number"`
	INN         string    `db:"inn"`
	Role        UserRole  `db:"role"`
}

// NewUser assigns the UUID at construction time instead of relying on a
// column default.
func NewUser(surname, name string, patronymic *string, phoneNumber, inn string, role UserRole) *User {
	return &User{
		ID:          uuid.New(),
		Surname:     surname,
		Name:        name,
		Patronymic:  patronymic,
		PhoneNumber: phoneNumber,
		INN:         inn,
		Role:        role,
	}
}
