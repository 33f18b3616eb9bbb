package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
	rpsMocks "github.com/umalmyha/churn/internal/repository/mocks"
)

func testCustomer() *model.Customer {
	return &model.Customer{
		ID:                   37,
		Name:                 "Phillip Mull",
		Married:              true,
		ReferredAFriend:      true,
		NumberOfReferrals:    1,
		TenureMonths:         20,
		InternetService:      true,
		InternetType:         model.InternetTypeDSL,
		UnlimitedData:        true,
		ContractType:         model.ContractMonthly,
		PaymentMethod:        model.PaymentBankWithdrawal,
		PaperlessBilling:     true,
		AvgMonthlyGBDownload: 10,
		MonthlyCharge:        24.45,
		TotalCharges:         482.8,
		TotalRevenue:         482.8,
		CLTV:                 3298,
		SatisfactionScore:    3,
	}
}

type customerServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	customerSvc     CustomerService
	customerRpsMock *rpsMocks.CustomerRepository
	statusRpsMock   *rpsMocks.StatusRepository
}

func (s *customerServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.statusRpsMock = rpsMocks.NewStatusRepository(t)
	s.customerSvc = NewCustomerService(s.customerRpsMock, s.statusRpsMock)
}

func (s *customerServiceTestSuite) TestFindAllAppliesPageDefaults() {
	customers := []*model.Customer{testCustomer()}
	s.customerRpsMock.On("FindAll", s.ctx, model.CustomerPage{AfterID: 0, Limit: DefaultPageLimit}).Return(customers, nil).Once()

	s.T().Log("no limit provided - default page size is used")
	{
		res, err := s.customerSvc.FindAll(s.ctx, model.CustomerPage{AfterID: -5})
		s.Require().NoError(err)
		s.Require().Len(res, 1)
	}
}

func (s *customerServiceTestSuite) TestFindAllCapsLimit() {
	s.customerRpsMock.On("FindAll", s.ctx, model.CustomerPage{AfterID: 10, Limit: MaxPageLimit}).Return([]*model.Customer{}, nil).Once()

	_, err := s.customerSvc.FindAll(s.ctx, model.CustomerPage{AfterID: 10, Limit: 100000})
	s.Require().NoError(err)
}

func (s *customerServiceTestSuite) TestFindAllStorageFailure() {
	s.customerRpsMock.On("FindAll", s.ctx, mock.AnythingOfType("model.CustomerPage")).Return(nil, errors.New("connection reset")).Once()

	_, err := s.customerSvc.FindAll(s.ctx, model.CustomerPage{Limit: 10})
	var persistenceErr *apperrors.PersistenceErr
	s.Require().ErrorAs(err, &persistenceErr)
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	s.customerRpsMock.On("FindByID", s.ctx, int64(404)).Return(nil, nil).Once()

	c, err := s.customerSvc.FindByID(s.ctx, 404)
	s.Require().Nil(c)

	var notFoundErr *apperrors.EntryNotFoundErr
	s.Require().ErrorAs(err, &notFoundErr)
}

func (s *customerServiceTestSuite) TestCreateResetsIdentity() {
	c := testCustomer()
	c.InterventionCount = 3

	s.customerRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Customer")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*model.Customer)
			s.Require().Equal(int64(0), created.ID, "id must be assigned by storage")
			s.Require().Equal(int64(0), created.InterventionCount)
			created.ID = 101
		}).
		Return(nil).Once()

	res, err := s.customerSvc.Create(s.ctx, c)
	s.Require().NoError(err)
	s.Require().Equal(int64(101), res.ID)
}

func (s *customerServiceTestSuite) TestUpdateMissingCustomer() {
	c := testCustomer()
	s.customerRpsMock.On("Update", s.ctx, c).Return(false, nil).Once()

	_, err := s.customerSvc.Update(s.ctx, c)
	var notFoundErr *apperrors.EntryNotFoundErr
	s.Require().ErrorAs(err, &notFoundErr)
	s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", s.ctx, c.ID)
}

func (s *customerServiceTestSuite) TestUpdateReturnsStoredState() {
	c := testCustomer()
	stored := testCustomer()
	stored.InterventionCount = 2

	s.customerRpsMock.On("Update", s.ctx, c).Return(true, nil).Once()
	s.customerRpsMock.On("FindByID", s.ctx, c.ID).Return(stored, nil).Once()

	res, err := s.customerSvc.Update(s.ctx, c)
	s.Require().NoError(err)
	s.Require().Equal(int64(2), res.InterventionCount)
}

func (s *customerServiceTestSuite) TestInterventionsOfUnknownCustomer() {
	s.customerRpsMock.On("FindByID", s.ctx, int64(404)).Return(nil, nil).Once()

	_, err := s.customerSvc.Interventions(s.ctx, 404)
	s.Require().Error(err)
	s.statusRpsMock.AssertNotCalled(s.T(), "FindByCustomerID", s.ctx, int64(404))
}

func (s *customerServiceTestSuite) TestInterventions() {
	c := testCustomer()
	events := []*model.StatusEvent{
		{ID: 2, CustomerID: c.ID, Description: model.InterventionDiscount.Description()},
		{ID: 1, CustomerID: c.ID, Description: model.InterventionSupport.Description()},
	}

	s.customerRpsMock.On("FindByID", s.ctx, c.ID).Return(c, nil).Once()
	s.statusRpsMock.On("FindByCustomerID", s.ctx, c.ID).Return(events, nil).Once()

	res, err := s.customerSvc.Interventions(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Require().Equal(events, res)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
