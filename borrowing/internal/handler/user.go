package handler

import (
	"net/http"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.UserCreateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) Token(c echo.Context) error {
	var req model.TokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	tok, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, tok)
}

func (h *Handler) Me(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	u, err := h.svc.Me(c.Request().Context(), actor)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateMe(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var patch model.UserPatch
	if err = bind(c, &patch); err != nil {
		return err
	}
	u, err := h.svc.UpdateMe(c.Request().Context(), actor, patch)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, u)
}
