package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/internal/notification"
	"github.com/umalmyha/churn/internal/repository"
	"github.com/umalmyha/churn/pkg/db/transactor"
)

// InterventionService contacts customer and records that it happened
type InterventionService interface {
	Intervene(ctx context.Context, customerID int64, emailType string) (*model.StatusEvent, error)
}

type interventionService struct {
	trx         transactor.Transactor
	customerRps repository.CustomerRepository
	statusRps   repository.StatusRepository
	notifier    notification.Notifier
	logger      logrus.FieldLogger
}

func NewInterventionService(
	trx transactor.Transactor,
	customerRps repository.CustomerRepository,
	statusRps repository.StatusRepository,
	notifier notification.Notifier,
	logger logrus.FieldLogger,
) InterventionService {
	return &interventionService{
		trx:         trx,
		customerRps: customerRps,
		statusRps:   statusRps,
		notifier:    notifier,
		logger:      logger,
	}
}

// Intervene sends exactly one email and records exactly one status event.
// Event is inserted first and rolled back if email can't be delivered. Email can't be
// recalled, so commit failure after delivery leaves sent email without event and is logged as such.
func (s *interventionService) Intervene(ctx context.Context, customerID int64, emailType string) (*model.StatusEvent, error) {
	kind := model.InterventionKindOf(emailType)
	event := &model.StatusEvent{
		CustomerID:  customerID,
		Description: kind.Description(),
	}

	notified := false
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.customerRps.FindByID(ctx, customerID)
		if err != nil {
			return apperrors.NewPersistenceErr("read customer", err)
		}

		if c == nil {
			return customerNotFound(customerID)
		}

		if err := s.statusRps.Create(ctx, event); err != nil {
			var notFoundErr *apperrors.EntryNotFoundErr
			if errors.As(err, &notFoundErr) {
				return err
			}
			return apperrors.NewPersistenceErr("record intervention", err)
		}

		if err := s.notifier.Notify(ctx, notification.MessageFor(kind)); err != nil {
			return apperrors.NewNotificationErr(err)
		}
		notified = true
		return nil
	})
	if err != nil {
		if notified {
			s.logger.WithFields(logrus.Fields{
				"customerId":   customerID,
				"intervention": kind,
			}).Errorf("email was sent but intervention wasn't recorded - %s", err.Error())
			return nil, apperrors.NewPersistenceErr("commit intervention", err)
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"customerId":   customerID,
		"intervention": kind,
		"statusId":     event.ID,
	}).Info("intervention recorded")

	return event, nil
}
