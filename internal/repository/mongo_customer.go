package repository

import (
	"context"

	"github.com/umalmyha/churn/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoDatabase            = "telecom"
	mongoCustomersCollection = "customers"
)

// DocumentCustomerRepository keeps uploaded customers as documents
type DocumentCustomerRepository interface {
	CustomerImporter
	CountByDataset(context.Context, int) (int64, error)
}

type mongoCustomerRepository struct {
	client *mongo.Client
}

func NewMongoCustomerRepository(client *mongo.Client) DocumentCustomerRepository {
	return &mongoCustomerRepository{client: client}
}

// ImportBatch inserts documents as is, loading the same file twice duplicates them
func (r *mongoCustomerRepository) ImportBatch(ctx context.Context, batch []*model.ImportedCustomer) (int64, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	docs := make([]any, len(batch))
	for i, ic := range batch {
		if ic.Interventions == nil {
			ic.Interventions = make([]string, 0)
		}
		docs[i] = ic
	}

	res, err := r.collection().InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, err
	}
	return int64(len(res.InsertedIDs)), nil
}

func (r *mongoCustomerRepository) CountByDataset(ctx context.Context, datasetID int) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.D{{Key: "datasetId", Value: datasetID}})
}

func (r *mongoCustomerRepository) collection() *mongo.Collection {
	return r.client.Database(mongoDatabase).Collection(mongoCustomersCollection)
}
