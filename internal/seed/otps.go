package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// OTPPlan is one synthetic one-time-password row.
type OTPPlan struct {
	ID          uuid.UUID
	PhoneNumber string
	Code        int
	CreatedAt   time.Time
	IsUsed      bool
}

// Fixed phones used by the abuse scenarios so downstream detection tooling
// has stable anchors.
const (
	BruteforcePhone   = "+79991234567"
	RepeatedCodePhone = "+79998887766"
	SequentialBase    = "+7999000"
	RepeatedCode      = 1234
	BruteforceCount   = 20
	SequentialCount   = 10
	RepeatedCodeCount = 8
)

// OTPScenarios builds eight categories of OTP records around now: normal
// used codes, expired unused ones, and several suspicious patterns that
// exercise abuse-detection logic living outside this repository.
func OTPScenarios(now time.Time) []OTPPlan {
	var plans []OTPPlan

	add := func(phone string, code int, createdAt time.Time, isUsed bool) {
		plans = append(plans, OTPPlan{
			ID:          uuid.New(),
			PhoneNumber: phone,
			Code:        code,
			CreatedAt:   createdAt,
			IsUsed:      isUsed,
		})
	}

	// 1. Normal traffic: successfully used codes.
	for i := 0; i < 50; i++ {
		createdAt := now.AddDate(0, 0, -gofakeit.Number(1, 30)).
			Add(-time.Duration(gofakeit.Number(0, 23)) * time.Hour).
			Add(-time.Duration(gofakeit.Number(0, 59)) * time.Minute)
		add(Phone(), gofakeit.Number(1000, 9999), createdAt, true)
	}

	// 2. Expired and never used.
	for i := 0; i < 30; i++ {
		createdAt := now.AddDate(0, 0, -gofakeit.Number(1, 7)).
			Add(-time.Duration(gofakeit.Number(0, 23)) * time.Hour)
		add(Phone(), gofakeit.Number(1000, 9999), createdAt, false)
	}

	// 3. Burst of requests from a single phone (brute force).
	for i := 0; i < BruteforceCount; i++ {
		createdAt := now.Add(-time.Duration(gofakeit.Number(1, 30)) * time.Minute)
		add(BruteforcePhone, gofakeit.Number(1000, 9999), createdAt, false)
	}

	// 4. Night-hour requests (02:00-05:59).
	for i := 0; i < 15; i++ {
		day := now.AddDate(0, 0, -gofakeit.Number(0, 5))
		createdAt := time.Date(day.Year(), day.Month(), day.Day(),
			gofakeit.Number(2, 5), gofakeit.Number(0, 59), 0, 0, day.Location())
		add(Phone(), gofakeit.Number(1000, 9999), createdAt, gofakeit.Bool())
	}

	// 5. Sequential phone numbers (enumeration sweep).
	for i := 0; i < SequentialCount; i++ {
		phone := fmt.Sprintf("%s%04d", SequentialBase, i)
		createdAt := now.Add(-time.Duration(gofakeit.Number(1, 3)) * time.Hour)
		add(phone, gofakeit.Number(1000, 9999), createdAt, false)
	}

	// 6. The same code requested repeatedly.
	for i := 0; i < RepeatedCodeCount; i++ {
		createdAt := now.Add(-time.Duration(i*2) * time.Minute)
		add(RepeatedCodePhone, RepeatedCode, createdAt, false)
	}

	// 7. Very old codes still unused.
	for i := 0; i < 10; i++ {
		createdAt := now.AddDate(0, 0, -gofakeit.Number(60, 180))
		add(Phone(), gofakeit.Number(1000, 9999), createdAt, false)
	}

	// 8. Fresh codes awaiting use.
	for i := 0; i < 10; i++ {
		createdAt := now.Add(-time.Duration(gofakeit.Number(1, 5)) * time.Minute)
		add(Phone(), gofakeit.Number(1000, 9999), createdAt, false)
	}

	return plans
}
