package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPScenarios(t *testing.T) {
	gofakeit.Seed(42)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	plans := OTPScenarios(now)

	// 50 used + 30 expired + 20 bruteforce + 15 night + 10 sequential +
	// 8 repeated-code + 10 stale + 10 fresh.
	require.Len(t, plans, 153)

	bruteforce := 0
	repeated := 0
	sequential := make(map[string]bool)

	for _, plan := range plans {
		assert.GreaterOrEqual(t, plan.Code, 1000)
		assert.LessOrEqual(t, plan.Code, 9999)
		assert.True(t, plan.CreatedAt.Before(now.Add(time.Second)))

		if plan.PhoneNumber == BruteforcePhone {
			bruteforce++
			assert.False(t, plan.IsUsed)
		}
		if plan.PhoneNumber == RepeatedCodePhone {
			repeated++
			assert.Equal(t, RepeatedCode, plan.Code)
			assert.False(t, plan.IsUsed)
		}
		if len(plan.PhoneNumber) == 12 && plan.PhoneNumber[:8] == SequentialBase {
			sequential[plan.PhoneNumber] = true
		}
	}

	assert.Equal(t, BruteforceCount, bruteforce)
	assert.Equal(t, RepeatedCodeCount, repeated)

	require.Len(t, sequential, SequentialCount)
	for i := 0; i < SequentialCount; i++ {
		assert.True(t, sequential[fmt.Sprintf("%s%04d", SequentialBase, i)],
			"missing sequential phone %04d", i)
	}
}

func TestOTPScenariosUsageMix(t *testing.T) {
	gofakeit.Seed(42)

	plans := OTPScenarios(time.Now().UTC())

	used := 0
	for _, plan := range plans {
		if plan.IsUsed {
			used++
		}
	}

	// The 50 normal records are always used; night-hour ones may be either.
	assert.GreaterOrEqual(t, used, 50)
	assert.LessOrEqual(t, used, 65)
}
