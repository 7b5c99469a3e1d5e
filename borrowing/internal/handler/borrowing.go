package handler

import (
	"net/http"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListBorrowings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var f model.BorrowingFilter
	b := echo.QueryParamsBinder(c)
	if c.QueryParam("user_id") != "" {
		var userID int64
		b.Int64("user_id", &userID)
		f.UserID = &userID
	}
	b.Bool("is_active", &f.ActiveOnly)
	bindPage(b, &f.PageRequest)
	if err = b.BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	list, err := h.svc.ListBorrowings(c.Request().Context(), actor, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBorrowing(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	b, err := h.svc.GetBorrowing(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) CreateBorrowing(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req model.BorrowingCreateRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	b, err := h.svc.CreateBorrowing(c.Request().Context(), actor, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) ReturnBorrowing(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	resp, err := h.svc.ReturnBorrowing(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) NotifyOverdue(c echo.Context) error {
	n, err := h.svc.NotifyOverdue(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"overdue": n})
}
