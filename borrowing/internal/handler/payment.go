package handler

import (
	"net/http"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListPayments(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var (
		f           model.PaymentFilter
		status, typ string
	)
	b := echo.QueryParamsBinder(c).String("status", &status).String("type", &typ)
	bindPage(b, &f.PageRequest)
	if err = b.BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.Status = model.PaymentStatus(status)
	f.Type = model.PaymentType(typ)
	if err = c.Validate(f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.svc.ListPayments(c.Request().Context(), actor, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetPayment(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetPayment(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// PaymentSuccess is the checkout success redirect target.
func (h *Handler) PaymentSuccess(c echo.Context) error {
	resp, err := h.svc.PaymentSuccess(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) PaymentCancel(c echo.Context) error {
	resp, err := h.svc.PaymentCancel(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
