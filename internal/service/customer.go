package service

import (
	"context"
	"fmt"

	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/internal/repository"
)

const (
	// DefaultPageLimit is used when listing is requested without limit
	DefaultPageLimit = 50
	// MaxPageLimit caps single page size
	MaxPageLimit = 500
)

// CustomerService exposes stored customers along with their intervention history
type CustomerService interface {
	FindAll(context.Context, model.CustomerPage) ([]*model.Customer, error)
	FindByID(context.Context, int64) (*model.Customer, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
	Update(context.Context, *model.Customer) (*model.Customer, error)
	Interventions(context.Context, int64) ([]*model.StatusEvent, error)
}

type customerService struct {
	customerRps repository.CustomerRepository
	statusRps   repository.StatusRepository
}

func NewCustomerService(customerRps repository.CustomerRepository, statusRps repository.StatusRepository) CustomerService {
	return &customerService{customerRps: customerRps, statusRps: statusRps}
}

func (s *customerService) FindAll(ctx context.Context, page model.CustomerPage) ([]*model.Customer, error) {
	if page.AfterID < 0 {
		page.AfterID = 0
	}

	switch {
	case page.Limit <= 0:
		page.Limit = DefaultPageLimit
	case page.Limit > MaxPageLimit:
		page.Limit = MaxPageLimit
	}

	customers, err := s.customerRps.FindAll(ctx, page)
	if err != nil {
		return nil, apperrors.NewPersistenceErr("list customers", err)
	}
	return customers, nil
}

func (s *customerService) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewPersistenceErr("read customer", err)
	}

	if c == nil {
		return nil, customerNotFound(id)
	}
	return c, nil
}

// Create stores new customer, identity and intervention count are always assigned by storage
func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	c.ID = 0
	c.InterventionCount = 0

	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, apperrors.NewPersistenceErr("create customer", err)
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	updated, err := s.customerRps.Update(ctx, c)
	if err != nil {
		return nil, apperrors.NewPersistenceErr("update customer", err)
	}

	if !updated {
		return nil, customerNotFound(c.ID)
	}
	return s.FindByID(ctx, c.ID)
}

func (s *customerService) Interventions(ctx context.Context, id int64) ([]*model.StatusEvent, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}

	events, err := s.statusRps.FindByCustomerID(ctx, id)
	if err != nil {
		return nil, apperrors.NewPersistenceErr("read interventions", err)
	}
	return events, nil
}

func customerNotFound(id int64) error {
	return apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer %d doesn't exist", id))
}
