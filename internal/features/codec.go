package features

import "github.com/umalmyha/churn/internal/model"

// noFallback marks category whose unknown values encode to all-zero sub-vector
const noFallback = -1

// Category is one-hot layout of a single categorical field
type Category struct {
	Field  string
	Values []string
	// Fallback is slot set for unknown or missing value
	Fallback int
}

// Width is number of slots category occupies in feature vector
func (c Category) Width() int {
	return len(c.Values)
}

// Encode returns one-hot sub-vector for value. Matching is exact, unknown values
// are not an error and produce fallback encoding.
func (c Category) Encode(value string) []float64 {
	slots := make([]float64, len(c.Values))
	for i, v := range c.Values {
		if v == value {
			slots[i] = 1
			return slots
		}
	}

	if c.Fallback != noFallback {
		slots[c.Fallback] = 1
	}
	return slots
}

// The contract and payment fallbacks point to the last slot while internet type falls
// back to zeros. The deployed model was trained against exactly this behavior.
var (
	InternetType = Category{
		Field:    "internetType",
		Values:   []string{model.InternetTypeCable, model.InternetTypeDSL, model.InternetTypeFibre},
		Fallback: noFallback,
	}
	ContractType = Category{
		Field:    "contractType",
		Values:   []string{model.ContractMonthly, model.ContractOneYear, model.ContractTwoYear},
		Fallback: 2,
	}
	PaymentMethod = Category{
		Field:    "paymentMethod",
		Values:   []string{model.PaymentBankWithdrawal, model.PaymentCreditCard, model.PaymentMailedCheck},
		Fallback: 2,
	}
)

var categories = map[string]Category{
	InternetType.Field:  InternetType,
	ContractType.Field:  ContractType,
	PaymentMethod.Field: PaymentMethod,
}

// CategoryOf looks up declared category layout by field name
func CategoryOf(field string) (Category, bool) {
	c, ok := categories[field]
	return c, ok
}

// EncodeCategory encodes value of categorical field, false is returned for non-categorical field
func EncodeCategory(field, value string) ([]float64, bool) {
	c, ok := categories[field]
	if !ok {
		return nil, false
	}
	return c.Encode(value), true
}
