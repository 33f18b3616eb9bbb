package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/internal/notification"
	notificationMocks "github.com/umalmyha/churn/internal/notification/mocks"
	rpsMocks "github.com/umalmyha/churn/internal/repository/mocks"
)

// recordingTransactor runs function in place and remembers outcome of the last unit of work
type recordingTransactor struct {
	committed  int
	rolledBack int
	commitErr  error
}

func (t *recordingTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		t.rolledBack++
		return err
	}

	if t.commitErr != nil {
		t.rolledBack++
		return t.commitErr
	}
	t.committed++
	return nil
}

type interventionServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	trx             *recordingTransactor
	interventionSvc InterventionService
	customerRpsMock *rpsMocks.CustomerRepository
	statusRpsMock   *rpsMocks.StatusRepository
	notifierMock    *notificationMocks.Notifier
}

func (s *interventionServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *interventionServiceTestSuite) SetupTest() {
	t := s.T()
	s.trx = &recordingTransactor{}
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.statusRpsMock = rpsMocks.NewStatusRepository(t)
	s.notifierMock = notificationMocks.NewNotifier(t)
	s.interventionSvc = NewInterventionService(s.trx, s.customerRpsMock, s.statusRpsMock, s.notifierMock, silentLogger())
}

func (s *interventionServiceTestSuite) expectEvent(description string) {
	s.statusRpsMock.On("Create", s.ctx, mock.MatchedBy(func(e *model.StatusEvent) bool {
		return e.CustomerID == 37 && e.Description == description
	})).Run(func(args mock.Arguments) {
		e := args.Get(1).(*model.StatusEvent)
		e.ID = 1
		e.CreatedAt = time.Now().UTC()
	}).Return(nil).Once()
}

func (s *interventionServiceTestSuite) TestSupportIntervention() {
	s.customerRpsMock.On("FindByID", s.ctx, int64(37)).Return(testCustomer(), nil).Once()
	s.expectEvent("Send a support email to customer.")
	s.notifierMock.On("Notify", s.ctx, notification.MessageFor(model.InterventionSupport)).Return(nil).Once()

	e, err := s.interventionSvc.Intervene(s.ctx, 37, "support")
	s.Require().NoError(err)
	s.Require().Equal(int64(1), e.ID)
	s.Require().Equal(1, s.trx.committed)
}

func (s *interventionServiceTestSuite) TestAnyOtherEmailTypeIsDiscount() {
	for _, emailType := range []string{"discount", "", "SUPPORT"} {
		s.SetupTest()

		s.customerRpsMock.On("FindByID", s.ctx, int64(37)).Return(testCustomer(), nil).Once()
		s.expectEvent("Offer a discount of 20% to the user.")
		s.notifierMock.On("Notify", s.ctx, notification.MessageFor(model.InterventionDiscount)).Return(nil).Once()

		_, err := s.interventionSvc.Intervene(s.ctx, 37, emailType)
		s.Require().NoError(err, "email type %q must be discount", emailType)
	}
}

func (s *interventionServiceTestSuite) TestUnknownCustomer() {
	s.customerRpsMock.On("FindByID", s.ctx, int64(404)).Return(nil, nil).Once()

	_, err := s.interventionSvc.Intervene(s.ctx, 404, "support")
	var notFoundErr *apperrors.EntryNotFoundErr
	s.Require().ErrorAs(err, &notFoundErr)
	s.notifierMock.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
	s.Require().Equal(1, s.trx.rolledBack)
}

func (s *interventionServiceTestSuite) TestEmailFailureRollsBackEvent() {
	s.customerRpsMock.On("FindByID", s.ctx, int64(37)).Return(testCustomer(), nil).Once()
	s.expectEvent("Send a support email to customer.")
	s.notifierMock.On("Notify", s.ctx, mock.AnythingOfType("notification.Message")).Return(errors.New("relay refused")).Once()

	_, err := s.interventionSvc.Intervene(s.ctx, 37, "support")
	var notificationErr *apperrors.NotificationErr
	s.Require().ErrorAs(err, &notificationErr)
	s.Require().Equal(1, s.trx.rolledBack, "status event must not be committed without email")
	s.Require().Equal(0, s.trx.committed)
}

func (s *interventionServiceTestSuite) TestCommitFailureAfterEmailIsReported() {
	logger, hook := test.NewNullLogger()
	s.trx.commitErr = errors.New("connection reset")
	s.interventionSvc = NewInterventionService(s.trx, s.customerRpsMock, s.statusRpsMock, s.notifierMock, logger)

	s.customerRpsMock.On("FindByID", s.ctx, int64(37)).Return(testCustomer(), nil).Once()
	s.expectEvent("Send a support email to customer.")
	s.notifierMock.On("Notify", s.ctx, notification.MessageFor(model.InterventionSupport)).Return(nil).Once()

	_, err := s.interventionSvc.Intervene(s.ctx, 37, "support")
	var persistenceErr *apperrors.PersistenceErr
	s.Require().ErrorAs(err, &persistenceErr)
	s.Require().ErrorIs(err, s.trx.commitErr)
	s.Require().Equal(0, s.trx.committed)

	s.Require().NotNil(hook.LastEntry())
	s.Require().Equal(logrus.ErrorLevel, hook.LastEntry().Level)
	s.Require().Equal(int64(37), hook.LastEntry().Data["customerId"])
}

func (s *interventionServiceTestSuite) TestStatusInsertFailure() {
	s.customerRpsMock.On("FindByID", s.ctx, int64(37)).Return(testCustomer(), nil).Once()
	s.statusRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.StatusEvent")).Return(errors.New("disk full")).Once()

	_, err := s.interventionSvc.Intervene(s.ctx, 37, "support")
	var persistenceErr *apperrors.PersistenceErr
	s.Require().ErrorAs(err, &persistenceErr)
	s.notifierMock.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
}

func TestInterventionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(interventionServiceTestSuite))
}
