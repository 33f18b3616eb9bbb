package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/internal/service"
)

type identifier struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

type customerPage struct {
	Skip  int64 `query:"skip" json:"skip" validate:"gte=0"`
	Limit int   `query:"limit" json:"limit" validate:"gte=0,lte=500"`
}

type newIntervention struct {
	ID        int64  `query:"id" json:"id" validate:"required,gt=0"`
	EmailType string `query:"emailType" json:"emailType"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll lists customers page by page
// @Summary     List customers
// @Description Returns customers with id greater than skip ordered by id, each enriched with number of interventions
// @Tags        customers
// @Produce     json
// @Param       skip  query    int false "Last seen customer id" minimum(0)
// @Param       limit query    int false "Page size" minimum(0) maximum(500)
// @Success     200   {array}  model.Customer
// @Failure     400   {object} errorResponse
// @Failure     500   {object} errorResponse
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	var page customerPage
	if err := bindRequest(c, &page); err != nil {
		return err
	}

	customers, err := h.customerSvc.FindAll(c.Request().Context(), model.CustomerPage{AfterID: page.Skip, Limit: page.Limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get gets single customer
// @Summary     Get customer
// @Description Returns single customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id  path     int true "Customer id"
// @Success     200 {object} model.Customer
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Failure     500 {object} errorResponse
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	var id identifier
	if err := bindRequest(c, &id); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Post creates new customer
// @Summary     New customer
// @Description Validates customer record and stores it
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       customer body     model.Customer true "Customer record"
// @Success     201      {object} model.Customer
// @Failure     400      {object} errorResponse
// @Failure     500      {object} errorResponse
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	fields, err := requestFields(c)
	if err != nil {
		return err
	}

	nc, err := model.ParseCustomer(fields)
	if err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), nc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// Put updates customer
// @Summary     Update customer
// @Description Replaces service and billing attributes of existing customer, name, churn and probability are kept
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id       path     int            true "Customer id"
// @Param       customer body     model.Customer true "Customer record"
// @Success     200      {object} model.Customer
// @Failure     400      {object} errorResponse
// @Failure     404      {object} errorResponse
// @Failure     500      {object} errorResponse
// @Router      /api/customers/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	var id identifier
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&id); err != nil {
		return err
	}

	fields, err := requestFields(c)
	if err != nil {
		return err
	}

	uc, err := model.ParseCustomer(fields)
	if err != nil {
		return err
	}
	uc.ID = id.ID

	customer, err := h.customerSvc.Update(c.Request().Context(), uc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Interventions lists intervention history
// @Summary     Customer interventions
// @Description Returns status events recorded for customer, newest first
// @Tags        customers
// @Produce     json
// @Param       id  path    int true "Customer id"
// @Success     200 {array} model.StatusEvent
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Failure     500 {object} errorResponse
// @Router      /api/customers/{id}/interventions [get]
func (h *CustomerHTTPHandler) Interventions(c echo.Context) error {
	var id identifier
	if err := bindRequest(c, &id); err != nil {
		return err
	}

	events, err := h.customerSvc.Interventions(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// PredictionHTTPHandler is http handler for prediction endpoint
type PredictionHTTPHandler struct {
	predictionSvc service.PredictionService
}

// NewPredictionHTTPHandler builds new PredictionHTTPHandler
func NewPredictionHTTPHandler(predictionSvc service.PredictionService) *PredictionHTTPHandler {
	return &PredictionHTTPHandler{predictionSvc: predictionSvc}
}

// Predict computes churn probability
// @Summary     Predict churn
// @Description Encodes supplied customer attributes and returns churn probability rounded to 4 decimals. Attributes are read from JSON body or, if body is empty, from query string.
// @Tags        predictions
// @Accept      json
// @Produce     json
// @Param       customer body     model.Customer false "Customer attributes"
// @Success     200      {number} number
// @Failure     400      {object} errorResponse
// @Failure     502      {object} errorResponse
// @Router      /api/predictions [post]
// @Router      /api/predictions [get]
func (h *PredictionHTTPHandler) Predict(c echo.Context) error {
	fields, err := requestFields(c)
	if err != nil {
		return err
	}

	p, err := h.predictionSvc.Predict(c.Request().Context(), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Rescore recomputes probability of stored customer
// @Summary     Rescore customer
// @Description Computes churn probability for stored customer and persists it
// @Tags        predictions
// @Produce     json
// @Param       id  path     int true "Customer id"
// @Success     200 {object} model.Customer
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Failure     500 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /api/customers/{id}/prediction [post]
func (h *PredictionHTTPHandler) Rescore(c echo.Context) error {
	var id identifier
	if err := bindRequest(c, &id); err != nil {
		return err
	}

	customer, err := h.predictionSvc.Rescore(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// DashboardHTTPHandler is http handler for dashboard endpoint
type DashboardHTTPHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHTTPHandler builds new DashboardHTTPHandler
func NewDashboardHTTPHandler(dashboardSvc service.DashboardService) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{dashboardSvc: dashboardSvc}
}

// Summary returns dashboard aggregates
// @Summary     Dashboard summary
// @Description Returns totals, satisfaction histogram, risk buckets and intervention split
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} model.DashboardSummary
// @Failure     500 {object} errorResponse
// @Router      /api/dashboard/summary [get]
func (h *DashboardHTTPHandler) Summary(c echo.Context) error {
	summary, err := h.dashboardSvc.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// InterventionHTTPHandler is http handler for intervention endpoint
type InterventionHTTPHandler struct {
	interventionSvc service.InterventionService
}

// NewInterventionHTTPHandler builds new InterventionHTTPHandler
func NewInterventionHTTPHandler(interventionSvc service.InterventionService) *InterventionHTTPHandler {
	return &InterventionHTTPHandler{interventionSvc: interventionSvc}
}

// Post creates intervention
// @Summary     New intervention
// @Description Sends support email when emailType is "support", discount offer otherwise, and records status event
// @Tags        interventions
// @Accept      json
// @Produce     json
// @Param       intervention body     newIntervention true "Customer id and email type"
// @Success     200          {object} statusResponse
// @Failure     400          {object} errorResponse
// @Failure     404          {object} errorResponse
// @Failure     500          {object} errorResponse
// @Failure     502          {object} errorResponse
// @Router      /api/interventions [post]
func (h *InterventionHTTPHandler) Post(c echo.Context) error {
	var ni newIntervention
	if err := bindRequest(c, &ni); err != nil {
		return err
	}

	if _, err := h.interventionSvc.Intervene(c.Request().Context(), ni.ID, ni.EmailType); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &statusResponse{
		Status:  statusSuccess,
		Message: "Successfully sent message",
	})
}
