package features

import (
	"fmt"

	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
)

// ModelVersion identifies column layout below. Any change of layout must bump it
// because every stored prediction was computed against the previous order.
const ModelVersion = "xgboost-churn-v1"

type feature struct {
	name     string
	category *Category
	numeric  func(*model.Customer) float64
	text     func(*model.Customer) string
}

func numeric(name string, fn func(*model.Customer) float64) feature {
	return feature{name: name, numeric: fn}
}

func flag(name string, fn func(*model.Customer) bool) feature {
	return feature{name: name, numeric: func(c *model.Customer) float64 {
		if fn(c) {
			return 1
		}
		return 0
	}}
}

func categorical(category Category, fn func(*model.Customer) string) feature {
	return feature{name: category.Field, category: &category, text: fn}
}

// layout is the training-time field order. Note paperlessBilling sits between
// contract and payment one-hot groups.
var layout = []feature{
	flag("seniorCitizen", func(c *model.Customer) bool { return c.SeniorCitizen }),
	flag("married", func(c *model.Customer) bool { return c.Married }),
	flag("dependents", func(c *model.Customer) bool { return c.Dependents }),
	numeric("numberOfDependents", func(c *model.Customer) float64 { return float64(c.NumberOfDependents) }),
	flag("referredAFriend", func(c *model.Customer) bool { return c.ReferredAFriend }),
	numeric("numberOfReferrals", func(c *model.Customer) float64 { return float64(c.NumberOfReferrals) }),
	numeric("tenureMonths", func(c *model.Customer) float64 { return float64(c.TenureMonths) }),
	flag("phoneService", func(c *model.Customer) bool { return c.PhoneService }),
	flag("multipleLines", func(c *model.Customer) bool { return c.MultipleLines }),
	flag("internetService", func(c *model.Customer) bool { return c.InternetService }),
	categorical(InternetType, func(c *model.Customer) string { return c.InternetType }),
	flag("onlineSecurity", func(c *model.Customer) bool { return c.OnlineSecurity }),
	flag("onlineBackup", func(c *model.Customer) bool { return c.OnlineBackup }),
	flag("deviceProtection", func(c *model.Customer) bool { return c.DeviceProtection }),
	flag("premiumTechSupport", func(c *model.Customer) bool { return c.PremiumTechSupport }),
	flag("streamingTV", func(c *model.Customer) bool { return c.StreamingTV }),
	flag("streamingMovies", func(c *model.Customer) bool { return c.StreamingMovies }),
	flag("streamingMusic", func(c *model.Customer) bool { return c.StreamingMusic }),
	flag("unlimitedData", func(c *model.Customer) bool { return c.UnlimitedData }),
	categorical(ContractType, func(c *model.Customer) string { return c.ContractType }),
	flag("paperlessBilling", func(c *model.Customer) bool { return c.PaperlessBilling }),
	categorical(PaymentMethod, func(c *model.Customer) string { return c.PaymentMethod }),
	numeric("avgMonthlyLongDistanceCharges", func(c *model.Customer) float64 { return c.AvgMonthlyLongDistanceCharges }),
	numeric("avgMonthlyGBDownload", func(c *model.Customer) float64 { return c.AvgMonthlyGBDownload }),
	numeric("monthlyCharge", func(c *model.Customer) float64 { return c.MonthlyCharge }),
	numeric("totalCharges", func(c *model.Customer) float64 { return c.TotalCharges }),
	numeric("totalRefunds", func(c *model.Customer) float64 { return c.TotalRefunds }),
	numeric("totalExtraDataCharges", func(c *model.Customer) float64 { return c.TotalExtraDataCharges }),
	numeric("totalLongDistanceCharges", func(c *model.Customer) float64 { return c.TotalLongDistanceCharges }),
	numeric("totalRevenue", func(c *model.Customer) float64 { return c.TotalRevenue }),
	numeric("cltv", func(c *model.Customer) float64 { return c.CLTV }),
	numeric("satisfactionScore", func(c *model.Customer) float64 { return float64(c.SatisfactionScore) }),
}

var columns = buildColumns()

func buildColumns() []string {
	cols := make([]string, 0, len(layout))
	for _, f := range layout {
		if f.category == nil {
			cols = append(cols, f.name)
			continue
		}

		for _, v := range f.category.Values {
			cols = append(cols, fmt.Sprintf("%s=%s", f.name, v))
		}
	}
	return cols
}

// Columns returns names of vector positions in order, one-hot slots are named field=value
func Columns() []string {
	res := make([]string, len(columns))
	copy(res, columns)
	return res
}

// Width is fixed length of every encoded vector
func Width() int {
	return len(columns)
}

// Encode turns customer into ordered feature vector the churn model expects
func Encode(c *model.Customer) ([]float64, error) {
	if c == nil {
		return nil, apperrors.NewEncodingErr("record", "customer record is absent")
	}

	vec := make([]float64, 0, len(columns))
	for _, f := range layout {
		if f.category != nil {
			vec = append(vec, f.category.Encode(f.text(c))...)
			continue
		}
		vec = append(vec, f.numeric(c))
	}

	if len(vec) != len(columns) {
		return nil, apperrors.NewEncodingErr("vector", fmt.Sprintf("expected %d values, got %d", len(columns), len(vec)))
	}
	return vec, nil
}

// EncodeFields validates raw fields and encodes resulting record
func EncodeFields(raw map[string]any) ([]float64, error) {
	c, err := model.ParseCustomer(raw)
	if err != nil {
		return nil, err
	}
	return Encode(c)
}
