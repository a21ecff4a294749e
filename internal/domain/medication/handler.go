package medication

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/medication", h.Create)
	api.POST("/medications", h.CreateMany)
	api.GET("/medications", h.List)
	api.GET("/medications/:id", h.Get)
}

func (h *Handler) Create(c echo.Context) error {
	var m Medication
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &m); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

// CreateMany always answers 201 when the batch itself is well formed;
// skipped records are simply absent from the returned data.
func (h *Handler) CreateMany(c echo.Context) error {
	var ms []*Medication
	if err := c.Bind(&ms); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide an array of medications")
	}
	if len(ms) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide an array of medications")
	}
	saved, err := h.svc.CreateMany(c.Request().Context(), ms)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "medications added successfully",
		"data":    saved,
	})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) List(c echo.Context) error {
	meds, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if meds == nil {
		meds = []*Medication{}
	}
	return c.JSON(http.StatusOK, meds)
}
