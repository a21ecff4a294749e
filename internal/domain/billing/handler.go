package billing

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/pkg/money"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/bill", h.Create)
	api.POST("/bills", h.CreateMany)
	api.GET("/bills", h.List)
	api.GET("/bills/:id", h.Get)
	api.POST("/bills/:id/payments", h.RecordPayment)
}

func (h *Handler) Create(c echo.Context) error {
	var b Bill
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

// CreateMany always answers 201 when the batch itself is well formed;
// skipped records are simply absent from the returned data.
func (h *Handler) CreateMany(c echo.Context) error {
	var bs []*Bill
	if err := c.Bind(&bs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide an array of bills")
	}
	if len(bs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide an array of bills")
	}
	saved, err := h.svc.CreateMany(c.Request().Context(), bs)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "bills added successfully",
		"data":    saved,
	})
}

type paymentRequest struct {
	Amount money.Cents `json:"amount"`
}

func (h *Handler) RecordPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.RecordPayment(c.Request().Context(), id, req.Amount)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	b, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) List(c echo.Context) error {
	bills, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if bills == nil {
		bills = []*Bill{}
	}
	return c.JSON(http.StatusOK, bills)
}
