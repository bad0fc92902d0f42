package validation

import (
	"testing"

	"github.com/pmroz/zusgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCurrentYear = 2025

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

func validProfile() *domain.WorkerProfile {
	return &domain.WorkerProfile{
		Age:                35,
		Sex:                "male",
		GrossMonthlySalary: dec("8000"),
		WorkStartYear:      2010,
	}
}

func TestValidateAcceptsCleanProfile(t *testing.T) {
	result := Validate(validProfile(), testCurrentYear)

	require.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateNilProfile(t *testing.T) {
	result := Validate(nil, testCurrentYear)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "profile is required")
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name        string
		age         int
		wantValid   bool
		wantWarning bool
	}{
		{"below minimum", 17, false, false},
		{"at minimum", 18, true, true},
		{"young warning band", 19, true, true},
		{"typical", 40, true, false},
		{"at maximum", 67, true, false},
		{"above maximum", 68, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			profile.Age = tt.age
			// Keep the start year consistent with the age under test so
			// only the age rule fires.
			profile.WorkStartYear = testCurrentYear

			result := Validate(profile, testCurrentYear)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantValid && tt.wantWarning {
				assert.NotEmpty(t, result.Warnings)
			}
		})
	}
}

func TestValidateSexAliases(t *testing.T) {
	for _, raw := range []string{"male", "m", "M", "female", "f", "k", " F "} {
		profile := validProfile()
		profile.Sex = raw
		result := Validate(profile, testCurrentYear)
		assert.True(t, result.Valid, "alias %q should be accepted", raw)
	}

	profile := validProfile()
	profile.Sex = "other"
	result := Validate(profile, testCurrentYear)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "sex must be one of")
}

func TestValidateSalary(t *testing.T) {
	tests := []struct {
		name         string
		salary       string
		wantValid    bool
		wantWarnings int
	}{
		{"zero", "0", false, 0},
		{"negative", "-100", false, 0},
		{"below minimum wage", "2500", true, 1},
		{"typical", "8000", true, 0},
		{"implausibly high", "150000", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			profile.GrossMonthlySalary = dec(tt.salary)

			result := Validate(profile, testCurrentYear)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestValidateWorkStartYear(t *testing.T) {
	t.Run("before 1970", func(t *testing.T) {
		profile := validProfile()
		profile.WorkStartYear = 1965
		result := Validate(profile, testCurrentYear)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors[0], "1970")
	})

	t.Run("in the future", func(t *testing.T) {
		profile := validProfile()
		profile.WorkStartYear = testCurrentYear + 1
		result := Validate(profile, testCurrentYear)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors[0], "future")
	})

	t.Run("started before being born", func(t *testing.T) {
		profile := validProfile()
		profile.Age = 30
		profile.WorkStartYear = 1990
		result := Validate(profile, testCurrentYear)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors[0], "inconsistent")
	})

	t.Run("started before working age", func(t *testing.T) {
		profile := validProfile()
		profile.Age = 30
		profile.WorkStartYear = 2010 // implies starting at 15
		result := Validate(profile, testCurrentYear)
		require.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})
}

func TestValidateWorkEndYear(t *testing.T) {
	t.Run("before start year", func(t *testing.T) {
		profile := validProfile()
		profile.WorkEndYear = intPtr(2005)
		result := Validate(profile, testCurrentYear)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors[0], "before work start year")
	})

	t.Run("in the past", func(t *testing.T) {
		profile := validProfile()
		profile.WorkEndYear = intPtr(2020)
		result := Validate(profile, testCurrentYear)
		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})

	t.Run("too far out", func(t *testing.T) {
		profile := validProfile()
		profile.WorkEndYear = intPtr(testCurrentYear + 60)
		result := Validate(profile, testCurrentYear)
		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})

	t.Run("deviates from statutory retirement age", func(t *testing.T) {
		profile := validProfile() // male, age 35, statutory 65
		profile.WorkEndYear = intPtr(testCurrentYear + 45)
		result := Validate(profile, testCurrentYear)
		require.True(t, result.Valid)
		assert.Contains(t, result.Warnings[0], "statutory age 65")
	})

	t.Run("near statutory retirement age", func(t *testing.T) {
		profile := validProfile()
		profile.WorkEndYear = intPtr(testCurrentYear + 30) // implies 65 exactly
		result := Validate(profile, testCurrentYear)
		require.True(t, result.Valid)
		assert.Empty(t, result.Warnings)
	})
}

func TestValidateBalances(t *testing.T) {
	t.Run("negative main balance", func(t *testing.T) {
		profile := validProfile()
		profile.MainAccountBalance = decPtr("-1")
		result := Validate(profile, testCurrentYear)
		require.False(t, result.Valid)
	})

	t.Run("negative sub balance", func(t *testing.T) {
		profile := validProfile()
		profile.SubAccountBalance = decPtr("-1")
		result := Validate(profile, testCurrentYear)
		require.False(t, result.Valid)
	})

	t.Run("implausibly large balances warn", func(t *testing.T) {
		profile := validProfile()
		profile.MainAccountBalance = decPtr("6000000")
		profile.SubAccountBalance = decPtr("2500000")
		result := Validate(profile, testCurrentYear)
		require.True(t, result.Valid)
		assert.Len(t, result.Warnings, 2)
	})

	t.Run("sub exceeding main warns", func(t *testing.T) {
		profile := validProfile()
		profile.MainAccountBalance = decPtr("10000")
		profile.SubAccountBalance = decPtr("20000")
		result := Validate(profile, testCurrentYear)
		require.True(t, result.Valid)
		assert.Contains(t, result.Warnings[0], "sub-account balance exceeds")
	})
}

func TestValidateSickLeave(t *testing.T) {
	tests := []struct {
		name      string
		days      string
		wantValid bool
		wantWarn  bool
	}{
		{"negative", "-1", false, false},
		{"zero", "0", true, false},
		{"typical", "10", true, false},
		{"very high", "150", true, true},
		{"at ceiling", "250", true, true},
		{"above ceiling", "251", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			profile.SickLeaveDaysPerYear = decPtr(tt.days)

			result := Validate(profile, testCurrentYear)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantWarn {
				assert.NotEmpty(t, result.Warnings)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	profile := &domain.WorkerProfile{
		Age:                17,
		Sex:                "unknown",
		GrossMonthlySalary: dec("-5"),
		WorkStartYear:      1960,
	}

	result := Validate(profile, testCurrentYear)
	require.False(t, result.Valid)
	assert.Len(t, result.Errors, 4)
}
