package seed

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// UserPlan is one synthetic seller row waiting to be inserted.
type UserPlan struct {
	ID          uuid.UUID
	Surname     string
	Name        string
	Patronymic  *string
	PhoneNumber string
	INN         string
	Role        string
}

// Users generates n sellers with pairwise-unique phone numbers and INNs.
// Roughly 90% get a patronymic, matching real registration data.
func Users(n int) []UserPlan {
	usedPhones := make(map[string]bool, n)
	usedINNs := make(map[string]bool, n)

	plans := make([]UserPlan, 0, n)
	for i := 0; i < n; i++ {
		var phone string
		for {
			phone = Phone()
			if !usedPhones[phone] {
				usedPhones[phone] = true
				break
			}
		}

		var inn string
		for {
			inn = INN()
			if !usedINNs[inn] {
				usedINNs[inn] = true
				break
			}
		}

		surname, name := FullName()

		var patronymic *string
		if gofakeit.Float32() > 0.1 {
			p := Patronymic()
			patronymic = &p
		}

		plans = append(plans, UserPlan{
			ID:          uuid.New(),
			Surname:     surname,
			Name:        name,
			Patronymic:  patronymic,
			PhoneNumber: phone,
			INN:         inn,
			Role:        "user",
		})
	}

	return plans
}
