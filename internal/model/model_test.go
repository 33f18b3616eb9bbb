package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/churn/internal/errors"
)

func validFields() map[string]any {
	return map[string]any{
		"id":                            37,
		"name":                          "Phillip Mull",
		"seniorCitizen":                 0,
		"married":                       1,
		"dependents":                    0,
		"numberOfDependents":            0,
		"referredAFriend":               1,
		"numberOfReferrals":             1,
		"tenureMonths":                  20,
		"phoneService":                  0,
		"multipleLines":                 0,
		"internetService":               1,
		"internetType":                  "dsl",
		"onlineSecurity":                0,
		"onlineBackup":                  0,
		"deviceProtection":              0,
		"premiumTechSupport":            0,
		"streamingTV":                   0,
		"streamingMovies":               0,
		"streamingMusic":                0,
		"unlimitedData":                 1,
		"contractType":                  "monthly",
		"paymentMethod":                 "bank withdrawal",
		"paperlessBilling":              1,
		"avgMonthlyLongDistanceCharges": 0,
		"avgMonthlyGBDownload":          10,
		"monthlyCharge":                 24.45,
		"totalCharges":                  482.8,
		"totalRefunds":                  0,
		"totalExtraDataCharges":         0,
		"totalLongDistanceCharges":      0,
		"totalRevenue":                  482.8,
		"cltv":                          3298,
		"satisfactionScore":             3,
	}
}

func TestParseCustomer(t *testing.T) {
	c, err := ParseCustomer(validFields())
	require.NoError(t, err)
	require.Equal(t, int64(37), c.ID)
	require.Equal(t, "Phillip Mull", c.Name)
	require.True(t, c.Married)
	require.False(t, c.SeniorCitizen)
	require.Equal(t, int64(20), c.TenureMonths)
	require.Equal(t, InternetTypeDSL, c.InternetType)
	require.Equal(t, ContractMonthly, c.ContractType)
	require.Equal(t, PaymentBankWithdrawal, c.PaymentMethod)
	require.Equal(t, 24.45, c.MonthlyCharge)
	require.Equal(t, 3298.0, c.CLTV)
	require.Equal(t, int64(3), c.SatisfactionScore)
	require.Nil(t, c.Probability)
}

func TestParseCustomerFromQueryStrings(t *testing.T) {
	fields := make(map[string]any)
	for k, v := range validFields() {
		fields[k] = fmt.Sprint(v)
	}

	c, err := ParseCustomer(fields)
	require.NoError(t, err, "numeric strings must be coerced")
	require.True(t, c.Married)
	require.Equal(t, int64(20), c.TenureMonths)
	require.Equal(t, 24.45, c.MonthlyCharge)
	require.Equal(t, 482.8, c.TotalCharges)
}

func TestParseCustomerMissingField(t *testing.T) {
	fields := validFields()
	delete(fields, "tenureMonths")
	fields["cltv"] = nil

	_, err := ParseCustomer(fields)
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrMissingField)
	require.NotErrorIs(t, err, apperrors.ErrTypeMismatch)

	var vErr *apperrors.ValidationErr
	require.True(t, errors.As(err, &vErr))
	require.Len(t, vErr.Violations(), 2, "all problems must be reported at once")
}

func TestParseCustomerTypeMismatch(t *testing.T) {
	tests := []struct {
		field string
		value any
	}{
		{field: "tenureMonths", value: "twenty"},
		{field: "tenureMonths", value: 20.5},
		{field: "married", value: 2},
		{field: "married", value: "maybe"},
		{field: "monthlyCharge", value: "lots"},
		{field: "monthlyCharge", value: true},
		{field: "internetType", value: 3},
		{field: "id", value: "abc"},
		{field: "tenureMonths", value: 1e19},
		{field: "numberOfReferrals", value: -1e19},
		{field: "satisfactionScore", value: 9.3e18},
		{field: "tenureMonths", value: "99999999999999999999"},
	}

	for _, tc := range tests {
		fields := validFields()
		fields[tc.field] = tc.value

		_, err := ParseCustomer(fields)
		require.Error(t, err, "%s=%v must be rejected", tc.field, tc.value)
		require.ErrorIs(t, err, apperrors.ErrTypeMismatch, "%s=%v must be type mismatch", tc.field, tc.value)
	}
}

func TestParseCustomerOutOfRange(t *testing.T) {
	tests := []struct {
		field string
		value any
	}{
		{field: "satisfactionScore", value: 0},
		{field: "satisfactionScore", value: 6},
		{field: "numberOfReferrals", value: -1},
		{field: "totalCharges", value: -0.01},
		{field: "probability", value: 1.5},
	}

	for _, tc := range tests {
		fields := validFields()
		fields[tc.field] = tc.value

		_, err := ParseCustomer(fields)
		require.ErrorIs(t, err, apperrors.ErrOutOfRange, "%s=%v must be out of range", tc.field, tc.value)
	}
}

func TestParseCustomerUnknownCategoryIsAccepted(t *testing.T) {
	fields := validFields()
	fields["internetType"] = "satellite"
	delete(fields, "contractType")

	c, err := ParseCustomer(fields)
	require.NoError(t, err, "categories are never validated by record model")
	require.Equal(t, "satellite", c.InternetType)
	require.Equal(t, "", c.ContractType)
}

func TestRequiredFields(t *testing.T) {
	required := RequiredFields()
	require.Len(t, required, 29)
	require.NotContains(t, required, "internetType")
	require.NotContains(t, required, "id")
	require.Contains(t, required, "satisfactionScore")
}

func TestRiskLevelOf(t *testing.T) {
	require.Equal(t, RiskHigh, RiskLevelOf(0.75))
	require.Equal(t, RiskHigh, RiskLevelOf(0.99))
	require.Equal(t, RiskMedium, RiskLevelOf(0.7499))
	require.Equal(t, RiskMedium, RiskLevelOf(0.2))
	require.Equal(t, RiskLow, RiskLevelOf(0.1999))
	require.Equal(t, RiskLow, RiskLevelOf(0))
}

func TestInterventionKindOf(t *testing.T) {
	require.Equal(t, InterventionSupport, InterventionKindOf("support"))
	require.Equal(t, InterventionDiscount, InterventionKindOf("discount"))
	require.Equal(t, InterventionDiscount, InterventionKindOf(""))
	require.Equal(t, InterventionDiscount, InterventionKindOf("Support"))
	require.Equal(t, "Send a support email to customer.", InterventionSupport.Description())
}
