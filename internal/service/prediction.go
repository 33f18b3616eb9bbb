package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/churn/internal/cache"
	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/features"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/internal/prediction"
	"github.com/umalmyha/churn/internal/repository"
)

// PredictionService scores customers with the hosted churn model
type PredictionService interface {
	Predict(context.Context, map[string]any) (float64, error)
	Rescore(context.Context, int64) (*model.Customer, error)
}

type predictionService struct {
	gateway     prediction.Gateway
	cache       cache.PredictionCache
	customerRps repository.CustomerRepository
	logger      logrus.FieldLogger
}

func NewPredictionService(gateway prediction.Gateway, cache cache.PredictionCache, customerRps repository.CustomerRepository, logger logrus.FieldLogger) PredictionService {
	return &predictionService{
		gateway:     gateway,
		cache:       cache,
		customerRps: customerRps,
		logger:      logger,
	}
}

// Predict validates raw attributes, encodes them and asks model for probability. Nothing is stored.
func (s *predictionService) Predict(ctx context.Context, raw map[string]any) (float64, error) {
	vector, err := features.EncodeFields(raw)
	if err != nil {
		return 0, err
	}
	return s.predict(ctx, vector)
}

// Rescore computes probability for stored customer and persists it
func (s *predictionService) Rescore(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewPersistenceErr("read customer", err)
	}

	if c == nil {
		return nil, customerNotFound(id)
	}

	vector, err := features.Encode(c)
	if err != nil {
		return nil, err
	}

	p, err := s.predict(ctx, vector)
	if err != nil {
		return nil, err
	}

	updated, err := s.customerRps.UpdateProbability(ctx, id, p)
	if err != nil {
		return nil, apperrors.NewPersistenceErr("store probability", err)
	}

	if !updated {
		return nil, customerNotFound(id)
	}

	c.Probability = &p
	return c, nil
}

func (s *predictionService) predict(ctx context.Context, vector []float64) (float64, error) {
	payload := prediction.FormatPayload(vector)
	logger := s.logger.WithField("modelVersion", features.ModelVersion)

	cached, err := s.cache.Find(ctx, features.ModelVersion, payload)
	if err != nil {
		logger.WithError(err).Warn("failed to read cached prediction")
	}

	if cached != nil {
		logger.Debug("prediction found in cache")
		return cached.Probability, nil
	}

	p, err := s.gateway.Predict(ctx, vector)
	if err != nil {
		return 0, err
	}

	err = s.cache.Store(ctx, payload, &cache.CachedPrediction{
		Probability:  p,
		ModelVersion: features.ModelVersion,
		ComputedAt:   time.Now().UTC(),
	})
	if err != nil {
		logger.WithError(err).Warn("failed to cache prediction")
	}

	return p, nil
}
