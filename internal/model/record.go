package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/umalmyha/churn/internal/errors"
)

type fieldKind int

const (
	kindFlag fieldKind = iota
	kindCount
	kindAmount
	kindScore
	kindCategory
)

func (k fieldKind) String() string {
	switch k {
	case kindFlag:
		return "boolean (0/1)"
	case kindCount, kindScore:
		return "integer"
	case kindAmount:
		return "decimal"
	default:
		return "string"
	}
}

const (
	minSatisfactionScore = 1
	maxSatisfactionScore = 5
)

type recordField struct {
	name string
	kind fieldKind
	ref  func(*Customer) any
}

// recordFields lists every attribute a customer record must carry.
// Categorical fields are read here but never rejected for their value.
var recordFields = []recordField{
	{"seniorCitizen", kindFlag, func(c *Customer) any { return &c.SeniorCitizen }},
	{"married", kindFlag, func(c *Customer) any { return &c.Married }},
	{"dependents", kindFlag, func(c *Customer) any { return &c.Dependents }},
	{"numberOfDependents", kindCount, func(c *Customer) any { return &c.NumberOfDependents }},
	{"referredAFriend", kindFlag, func(c *Customer) any { return &c.ReferredAFriend }},
	{"numberOfReferrals", kindCount, func(c *Customer) any { return &c.NumberOfReferrals }},
	{"tenureMonths", kindCount, func(c *Customer) any { return &c.TenureMonths }},
	{"phoneService", kindFlag, func(c *Customer) any { return &c.PhoneService }},
	{"multipleLines", kindFlag, func(c *Customer) any { return &c.MultipleLines }},
	{"internetService", kindFlag, func(c *Customer) any { return &c.InternetService }},
	{"internetType", kindCategory, func(c *Customer) any { return &c.InternetType }},
	{"onlineSecurity", kindFlag, func(c *Customer) any { return &c.OnlineSecurity }},
	{"onlineBackup", kindFlag, func(c *Customer) any { return &c.OnlineBackup }},
	{"deviceProtection", kindFlag, func(c *Customer) any { return &c.DeviceProtection }},
	{"premiumTechSupport", kindFlag, func(c *Customer) any { return &c.PremiumTechSupport }},
	{"streamingTV", kindFlag, func(c *Customer) any { return &c.StreamingTV }},
	{"streamingMovies", kindFlag, func(c *Customer) any { return &c.StreamingMovies }},
	{"streamingMusic", kindFlag, func(c *Customer) any { return &c.StreamingMusic }},
	{"unlimitedData", kindFlag, func(c *Customer) any { return &c.UnlimitedData }},
	{"contractType", kindCategory, func(c *Customer) any { return &c.ContractType }},
	{"paymentMethod", kindCategory, func(c *Customer) any { return &c.PaymentMethod }},
	{"paperlessBilling", kindFlag, func(c *Customer) any { return &c.PaperlessBilling }},
	{"avgMonthlyLongDistanceCharges", kindAmount, func(c *Customer) any { return &c.AvgMonthlyLongDistanceCharges }},
	{"avgMonthlyGBDownload", kindAmount, func(c *Customer) any { return &c.AvgMonthlyGBDownload }},
	{"monthlyCharge", kindAmount, func(c *Customer) any { return &c.MonthlyCharge }},
	{"totalCharges", kindAmount, func(c *Customer) any { return &c.TotalCharges }},
	{"totalRefunds", kindAmount, func(c *Customer) any { return &c.TotalRefunds }},
	{"totalExtraDataCharges", kindAmount, func(c *Customer) any { return &c.TotalExtraDataCharges }},
	{"totalLongDistanceCharges", kindAmount, func(c *Customer) any { return &c.TotalLongDistanceCharges }},
	{"totalRevenue", kindAmount, func(c *Customer) any { return &c.TotalRevenue }},
	{"cltv", kindAmount, func(c *Customer) any { return &c.CLTV }},
	{"satisfactionScore", kindScore, func(c *Customer) any { return &c.SatisfactionScore }},
}

// RequiredFields returns names of attributes which must be present in raw customer record
func RequiredFields() []string {
	names := make([]string, 0, len(recordFields))
	for _, f := range recordFields {
		if f.kind != kindCategory {
			names = append(names, f.name)
		}
	}
	return names
}

// ParseCustomer builds customer from loosely typed fields, e.g. decoded JSON body or query string.
// Every problem is reported at once via ValidationErr. Identity and bookkeeping fields
// (id, name, probability, churn, interventionCount) are optional.
func ParseCustomer(raw map[string]any) (*Customer, error) {
	c := &Customer{}
	violations := make([]apperrors.Violation, 0)

	for _, f := range recordFields {
		v, present := raw[f.name]
		if !present || v == nil {
			if f.kind != kindCategory {
				violations = append(violations, missing(f.name))
			}
			continue
		}

		if violation, ok := assign(f.ref(c), f.name, f.kind, v); !ok {
			violations = append(violations, violation)
		}
	}

	if v, ok := raw["id"]; ok && v != nil {
		id, converted := toInt(v)
		if !converted {
			violations = append(violations, mismatch("id", kindCount, v))
		} else {
			c.ID = id
		}
	}

	if v, ok := raw["name"]; ok && v != nil {
		if violation, ok := assign(&c.Name, "name", kindCategory, v); !ok {
			violations = append(violations, violation)
		}
	}

	if v, ok := raw["probability"]; ok && v != nil {
		p, converted := toFloat(v)
		switch {
		case !converted:
			violations = append(violations, mismatch("probability", kindAmount, v))
		case p < 0 || p > 1:
			violations = append(violations, outOfRange("probability", "must be within [0, 1]"))
		default:
			c.Probability = &p
		}
	}

	if v, ok := raw["churn"]; ok && v != nil {
		if violation, ok := assign(&c.Churn, "churn", kindFlag, v); !ok {
			violations = append(violations, violation)
		}
	}

	if v, ok := raw["interventionCount"]; ok && v != nil {
		if violation, ok := assign(&c.InterventionCount, "interventionCount", kindCount, v); !ok {
			violations = append(violations, violation)
		}
	}

	if err := apperrors.NewValidationErr(violations); err != nil {
		return nil, err
	}
	return c, nil
}

func assign(dst any, name string, kind fieldKind, v any) (apperrors.Violation, bool) {
	switch kind {
	case kindFlag:
		b, ok := toFlag(v)
		if !ok {
			return mismatch(name, kind, v), false
		}
		*dst.(*bool) = b
	case kindCount, kindScore:
		n, ok := toInt(v)
		if !ok {
			return mismatch(name, kind, v), false
		}
		if kind == kindCount && n < 0 {
			return outOfRange(name, "must be non-negative"), false
		}
		if kind == kindScore && (n < minSatisfactionScore || n > maxSatisfactionScore) {
			return outOfRange(name, fmt.Sprintf("must be within [%d, %d]", minSatisfactionScore, maxSatisfactionScore)), false
		}
		*dst.(*int64) = n
	case kindAmount:
		f, ok := toFloat(v)
		if !ok {
			return mismatch(name, kind, v), false
		}
		if f < 0 {
			return outOfRange(name, "must be non-negative"), false
		}
		*dst.(*float64) = f
	case kindCategory:
		s, ok := v.(string)
		if !ok {
			return mismatch(name, kind, v), false
		}
		*dst.(*string) = s
	}
	return apperrors.Violation{}, true
}

func toFlag(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return b, err == nil
	default:
		n, ok := toInt(v)
		if !ok || (n != 0 && n != 1) {
			return false, false
		}
		return n == 1, true
	}
}

func toInt(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) || val != math.Trunc(val) {
			return 0, false
		}
		// 2^63 itself doesn't fit, int64 conversion beyond range is implementation-defined
		if val < math.MinInt64 || val >= math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case json.Number:
		n, err := val.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case float64:
		f = val
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func missing(name string) apperrors.Violation {
	return apperrors.Violation{
		Field:   name,
		Kind:    apperrors.KindMissingField,
		Message: fmt.Sprintf("%s is required", name),
	}
}

func mismatch(name string, kind fieldKind, v any) apperrors.Violation {
	return apperrors.Violation{
		Field:   name,
		Kind:    apperrors.KindTypeMismatch,
		Message: fmt.Sprintf("%s must be %s, got %v", name, kind, v),
	}
}

func outOfRange(name, msg string) apperrors.Violation {
	return apperrors.Violation{
		Field:   name,
		Kind:    apperrors.KindOutOfRange,
		Message: fmt.Sprintf("%s %s", name, msg),
	}
}
