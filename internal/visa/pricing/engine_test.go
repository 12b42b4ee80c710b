// internal/visa/pricing/engine_test.go
package pricing

import (
	"testing"

	"visa-platform/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Core Functionality Tests
// ==========================

func TestEngine_Price(t *testing.T) {
	engine := NewEngine(DefaultSpeeds(), logger.NewNoOpLogger())

	tests := []struct {
		name           string
		speedID        string
		entryType      EntryType
		applicantCount int
		validate       func(t *testing.T, quote *Quote)
	}{
		{
			name:           "single entry one applicant",
			speedID:        "1-day",
			entryType:      SingleEntry,
			applicantCount: 1,
			validate: func(t *testing.T, quote *Quote) {
				assert.Equal(t, 99, quote.BasePrice)
				assert.Zero(t, quote.MultiEntryFee)
				assert.Equal(t, 99, quote.TotalAmount)
				assert.Equal(t, "USD", quote.Currency)
			},
		},
		{
			name:           "multiple entry adds fee per person",
			speedID:        "1-day",
			entryType:      MultipleEntry,
			applicantCount: 3,
			validate: func(t *testing.T, quote *Quote) {
				assert.Equal(t, 99, quote.BasePrice)
				assert.Equal(t, 30, quote.MultiEntryFee)
				assert.Equal(t, 129, quote.PricePerPerson)
				assert.Equal(t, 387, quote.TotalAmount)
			},
		},
		{
			name:           "unknown speed falls back to 30-min",
			speedID:        "6-week",
			entryType:      SingleEntry,
			applicantCount: 1,
			validate: func(t *testing.T, quote *Quote) {
				assert.Equal(t, "30-min", quote.SpeedID)
				assert.Equal(t, 199, quote.TotalAmount)
			},
		},
		{
			name:           "empty speed falls back to 30-min",
			speedID:        "",
			entryType:      SingleEntry,
			applicantCount: 2,
			validate: func(t *testing.T, quote *Quote) {
				assert.Equal(t, "30-min", quote.SpeedID)
				assert.Equal(t, 398, quote.TotalAmount)
			},
		},
		{
			name:           "weekend tier max applicants",
			speedID:        "weekend",
			entryType:      MultipleEntry,
			applicantCount: 10,
			validate: func(t *testing.T, quote *Quote) {
				assert.Equal(t, 249, quote.BasePrice)
				assert.Equal(t, 2790, quote.TotalAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.Price(tt.speedID, tt.entryType, tt.applicantCount)
			require.NoError(t, err)
			tt.validate(t, quote)
		})
	}
}

func TestEngine_Price_InvalidApplicantCount(t *testing.T) {
	engine := NewEngine(DefaultSpeeds(), logger.NewNoOpLogger())

	for _, count := range []int{0, -1, 11, 100} {
		quote, err := engine.Price("1-day", SingleEntry, count)
		assert.Nil(t, quote)
		assert.ErrorIs(t, err, ErrApplicantCountInvalid, "count %d", count)
	}
}

// Totals scale linearly with applicant count.
func TestEngine_Price_Linearity(t *testing.T) {
	engine := NewEngine(DefaultSpeeds(), logger.NewNoOpLogger())

	for _, speed := range DefaultSpeeds() {
		one, err := engine.Price(speed.ID, MultipleEntry, 1)
		require.NoError(t, err)

		for count := 2; count <= MaxApplicants; count++ {
			quote, err := engine.Price(speed.ID, MultipleEntry, count)
			require.NoError(t, err)
			assert.Equal(t, one.TotalAmount*count, quote.TotalAmount,
				"speed %s count %d", speed.ID, count)
		}
	}
}

// The multiple entry surcharge is exactly 30 per person for every tier.
func TestEngine_Price_MultiEntrySurcharge(t *testing.T) {
	engine := NewEngine(DefaultSpeeds(), logger.NewNoOpLogger())

	for _, speed := range DefaultSpeeds() {
		for count := MinApplicants; count <= MaxApplicants; count++ {
			single, err := engine.Price(speed.ID, SingleEntry, count)
			require.NoError(t, err)
			multiple, err := engine.Price(speed.ID, MultipleEntry, count)
			require.NoError(t, err)

			assert.Equal(t, MultipleEntryFee*count, multiple.TotalAmount-single.TotalAmount,
				"speed %s count %d", speed.ID, count)
		}
	}
}

func TestResolveSpeed(t *testing.T) {
	speeds := DefaultSpeeds()

	assert.Equal(t, "4-hour", ResolveSpeed(speeds, "4-hour").ID)
	assert.Equal(t, DefaultSpeedID, ResolveSpeed(speeds, "bogus").ID)
	assert.Equal(t, DefaultSpeedID, ResolveSpeed(speeds, "").ID)

	// Custom list without the default: first entry wins.
	custom := []SpeedTier{{ID: "slow", Label: "Slow", Price: 10}}
	assert.Equal(t, "slow", ResolveSpeed(custom, "bogus").ID)
}

// ==========================
// Country Tier Tests
// ==========================

func TestGetCountryTier(t *testing.T) {
	assert.Equal(t, Tier1, GetCountryTier("US"))
	assert.Equal(t, Tier2, GetCountryTier("GB"))
	assert.Equal(t, Tier3, GetCountryTier("IN"))
	assert.Equal(t, Tier2, GetCountryTier("ZZ"), "unmapped countries default to tier 2")
	assert.Equal(t, Tier1, GetCountryTier("us"), "lookup is case insensitive")
}

func TestGetBasePrice(t *testing.T) {
	price, err := GetBasePrice(Service1Day, "US")
	require.NoError(t, err)
	assert.Equal(t, 149, price)

	price, err = GetBasePrice(Service1Day, "IN")
	require.NoError(t, err)
	assert.Equal(t, 99, price)

	price, err = GetBasePrice(ServiceStandard, "TH")
	require.NoError(t, err)
	assert.Equal(t, 49, price)

	_, err = GetBasePrice("BOGUS", "US")
	assert.Error(t, err)
}

func TestPricingTable(t *testing.T) {
	table := PricingTable("US")
	assert.Len(t, table, 7)
	assert.Equal(t, 299, table[ServiceUrgent1H])
	assert.Equal(t, 79, table[ServiceStandard])
}

func TestAdPrice(t *testing.T) {
	price, err := AdPrice(Service1Day, "US")
	require.NoError(t, err)
	assert.Equal(t, "$149", price)

	_, err = AdPrice("BOGUS", "US")
	assert.Error(t, err)
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkEngine_Price(b *testing.B) {
	engine := NewEngine(DefaultSpeeds(), logger.NewNoOpLogger())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Price("1-day", MultipleEntry, 3)
	}
}
