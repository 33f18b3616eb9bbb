package model

// Internet types known to the churn model
const (
	InternetTypeCable = "cable"
	InternetTypeDSL   = "dsl"
	InternetTypeFibre = "fibre"
	InternetTypeNone  = "none"
)

// Contract types known to the churn model
const (
	ContractMonthly = "monthly"
	ContractOneYear = "one year"
	ContractTwoYear = "two year"
)

// Payment methods known to the churn model
const (
	PaymentBankWithdrawal = "bank withdrawal"
	PaymentCreditCard     = "credit card"
	PaymentMailedCheck    = "mailed check"
)

// Customer is the current state of a telecom customer
type Customer struct {
	ID          int64    `json:"id" bson:"-"`
	Name        string   `json:"name" bson:"name"`
	Probability *float64 `json:"probability" bson:"probability"`
	Churn       bool     `json:"churn" bson:"churn"`

	SeniorCitizen      bool  `json:"seniorCitizen" bson:"seniorCitizen"`
	Married            bool  `json:"married" bson:"married"`
	Dependents         bool  `json:"dependents" bson:"dependents"`
	NumberOfDependents int64 `json:"numberOfDependents" bson:"numberOfDependents"`
	ReferredAFriend    bool  `json:"referredAFriend" bson:"referredAFriend"`
	NumberOfReferrals  int64 `json:"numberOfReferrals" bson:"numberOfReferrals"`
	TenureMonths       int64 `json:"tenureMonths" bson:"tenureMonths"`

	PhoneService       bool   `json:"phoneService" bson:"phoneService"`
	MultipleLines      bool   `json:"multipleLines" bson:"multipleLines"`
	InternetService    bool   `json:"internetService" bson:"internetService"`
	InternetType       string `json:"internetType" bson:"internetType"`
	OnlineSecurity     bool   `json:"onlineSecurity" bson:"onlineSecurity"`
	OnlineBackup       bool   `json:"onlineBackup" bson:"onlineBackup"`
	DeviceProtection   bool   `json:"deviceProtection" bson:"deviceProtection"`
	PremiumTechSupport bool   `json:"premiumTechSupport" bson:"premiumTechSupport"`
	StreamingTV        bool   `json:"streamingTV" bson:"streamingTV"`
	StreamingMovies    bool   `json:"streamingMovies" bson:"streamingMovies"`
	StreamingMusic     bool   `json:"streamingMusic" bson:"streamingMusic"`
	UnlimitedData      bool   `json:"unlimitedData" bson:"unlimitedData"`

	ContractType                  string  `json:"contractType" bson:"contractType"`
	PaymentMethod                 string  `json:"paymentMethod" bson:"paymentMethod"`
	PaperlessBilling              bool    `json:"paperlessBilling" bson:"paperlessBilling"`
	AvgMonthlyLongDistanceCharges float64 `json:"avgMonthlyLongDistanceCharges" bson:"avgMonthlyLongDistanceCharges"`
	AvgMonthlyGBDownload          float64 `json:"avgMonthlyGBDownload" bson:"avgMonthlyGBDownload"`
	MonthlyCharge                 float64 `json:"monthlyCharge" bson:"monthlyCharge"`
	TotalCharges                  float64 `json:"totalCharges" bson:"totalCharges"`
	TotalRefunds                  float64 `json:"totalRefunds" bson:"totalRefunds"`
	TotalExtraDataCharges         float64 `json:"totalExtraDataCharges" bson:"totalExtraDataCharges"`
	TotalLongDistanceCharges      float64 `json:"totalLongDistanceCharges" bson:"totalLongDistanceCharges"`
	TotalRevenue                  float64 `json:"totalRevenue" bson:"totalRevenue"`
	CLTV                          float64 `json:"cltv" bson:"cltv"`

	SatisfactionScore int64 `json:"satisfactionScore" bson:"satisfactionScore"`
	// InterventionCount is always recomputed from status events on read
	InterventionCount int64 `json:"interventionCount" bson:"-"`
}

// CustomerPage is keyset pagination over customer ids
type CustomerPage struct {
	AfterID int64
	Limit   int
}
