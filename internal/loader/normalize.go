package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umalmyha/churn/internal/model"
)

// attributeColumns maps dataset headers onto customer record fields
var attributeColumns = map[string]string{
	"Senior Citizen":                    "seniorCitizen",
	"Married":                           "married",
	"Dependents":                        "dependents",
	"Number of Dependents":              "numberOfDependents",
	"Referred a Friend":                 "referredAFriend",
	"Number of Referrals":               "numberOfReferrals",
	"Tenure in Months":                  "tenureMonths",
	"Phone Service":                     "phoneService",
	"Multiple Lines":                    "multipleLines",
	"Internet Service":                  "internetService",
	"Online Security":                   "onlineSecurity",
	"Online Backup":                     "onlineBackup",
	"Device Protection Plan":            "deviceProtection",
	"Premium Tech Support":              "premiumTechSupport",
	"Streaming TV":                      "streamingTV",
	"Streaming Movies":                  "streamingMovies",
	"Streaming Music":                   "streamingMusic",
	"Unlimited Data":                    "unlimitedData",
	"Paperless Billing":                 "paperlessBilling",
	"Avg Monthly Long Distance Charges": "avgMonthlyLongDistanceCharges",
	"Avg Monthly GB Download":           "avgMonthlyGBDownload",
	"Monthly Charge":                    "monthlyCharge",
	"Total Charges":                     "totalCharges",
	"Total Refunds":                     "totalRefunds",
	"Total Extra Data Charges":          "totalExtraDataCharges",
	"Total Long Distance Charges":       "totalLongDistanceCharges",
	"Total Revenue":                     "totalRevenue",
	"CLTV":                              "cltv",
	"Satisfaction Score":                "satisfactionScore",
}

const (
	columnName        = "Name"
	columnCustomerRef = "Customer ID"
	columnProbability = "Probability"
	columnChurn       = "Churn"
)

type oneHotColumn struct {
	column string
	value  string
}

// oneHotGroup is a categorical field spread over several 0/1 dataset columns.
// First hot column wins, fallback is used when none is hot.
type oneHotGroup struct {
	field    string
	columns  []oneHotColumn
	fallback string
}

var oneHotGroups = []oneHotGroup{
	{
		field: "internetType",
		columns: []oneHotColumn{
			{"Internet Cable", model.InternetTypeCable},
			{"Internet DSL", model.InternetTypeDSL},
			{"Internet Fiber Optic", model.InternetTypeFibre},
		},
		fallback: model.InternetTypeNone,
	},
	{
		field: "contractType",
		columns: []oneHotColumn{
			{"Contract Month to Month", model.ContractMonthly},
			{"Contract One Year", model.ContractOneYear},
			{"Contract Two Year", model.ContractTwoYear},
		},
	},
	{
		field: "paymentMethod",
		columns: []oneHotColumn{
			{"Bank Withdrawal", model.PaymentBankWithdrawal},
			{"Credit Card", model.PaymentCreditCard},
			{"Mailed Check", model.PaymentMailedCheck},
		},
	},
}

// header resolves column positions once per file
type header map[string]int

func newHeader(columns []string) (header, error) {
	h := make(header, len(columns))
	for i, col := range columns {
		h[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}

	missing := make([]string, 0)
	for col := range attributeColumns {
		if _, ok := h[col]; !ok {
			missing = append(missing, col)
		}
	}

	for _, g := range oneHotGroups {
		for _, c := range g.columns {
			if _, ok := h[c.column]; !ok {
				missing = append(missing, c.column)
			}
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("dataset misses columns: %s", strings.Join(missing, ", "))
	}
	return h, nil
}

func (h header) value(row []string, column string) (string, bool) {
	i, ok := h[column]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// normalize folds one-hot columns back into categories and validates row as customer record
func (h header) normalize(row []string) (*model.ImportedCustomer, error) {
	raw := make(map[string]any, len(attributeColumns)+len(oneHotGroups)+3)

	for column, field := range attributeColumns {
		if v, ok := h.value(row, column); ok && v != "" {
			raw[field] = v
		}
	}

	for _, g := range oneHotGroups {
		raw[g.field] = g.fallback
		for _, c := range g.columns {
			if v, _ := h.value(row, c.column); v == "1" {
				raw[g.field] = c.value
				break
			}
		}
	}

	if v, ok := h.value(row, columnName); ok {
		raw["name"] = v
	}

	if v, ok := h.value(row, columnProbability); ok && v != "" {
		raw["probability"] = v
	}

	if v, ok := h.value(row, columnChurn); ok && v != "" {
		raw["churn"] = v
	}

	c, err := model.ParseCustomer(raw)
	if err != nil {
		return nil, err
	}

	ref, _ := h.value(row, columnCustomerRef)
	return &model.ImportedCustomer{
		Customer:      *c,
		CustomerRef:   ref,
		Interventions: make([]string, 0),
	}, nil
}
