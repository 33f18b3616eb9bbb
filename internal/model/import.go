package model

// ImportedCustomer is customer row coming from bulk dataset upload
type ImportedCustomer struct {
	Customer      `bson:",inline"`
	CustomerRef   string   `bson:"customerRef"`
	DatasetID     int      `bson:"datasetId"`
	Interventions []string `bson:"interventions"`
}
