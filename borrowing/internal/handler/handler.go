package handler

import (
	"net/http"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/pkg/auth"
	mw "github.com/Astemirdum/library-borrowing/pkg/middleware"
	"github.com/Astemirdum/library-borrowing/pkg/validate"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	svc BorrowingService
	log *zap.Logger
}

func New(svc BorrowingService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

func (h *Handler) NewRouter(authCfg auth.Config) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		mw.NewRateLimiter(apiRPS),
	)
	h.register(api, authCfg)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func actorFrom(c echo.Context) (model.Actor, error) {
	p, err := auth.GetProfile(c.Request().Context())
	if err != nil {
		return model.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUnauthenticated.Error())
	}
	return model.Actor{UserID: p.UserID, IsStaff: p.IsStaff}, nil
}

func pathID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func bindPage(b *echo.ValueBinder, p *model.PageRequest) {
	b.Int("page", &p.Page).Int("size", &p.Size)
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
			Message: errs.ErrValidation.Error(),
			Errors:  validate.Fields(err),
		})
	}
	return nil
}

func (h *Handler) httpError(err error) error {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, errs.ErrValidation):
		code = http.StatusBadRequest
		msg = validationMessage(err)
	case errors.Is(err, errs.ErrInventoryExhausted),
		errors.Is(err, errs.ErrOutstandingPayment),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrUserExists):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
		msg = errs.ErrNotFound.Error()
	case errors.Is(err, errs.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrGateway):
		code = http.StatusBadGateway
		msg = errs.ErrGateway.Error()
	default:
		h.log.Error("internal", zap.Error(err))
	}
	return echo.NewHTTPError(code, msg)
}

// validationMessage strips the sentinel suffix from a wrapped validation error.
func validationMessage(err error) string {
	msg := err.Error()
	suffix := ": " + errs.ErrValidation.Error()
	if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
		return msg[:len(msg)-len(suffix)]
	}
	return msg
}
