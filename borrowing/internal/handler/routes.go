package handler

import (
	"net/http"

	"github.com/Astemirdum/library-borrowing/pkg/auth"
	mw "github.com/Astemirdum/library-borrowing/pkg/middleware"
	"github.com/labstack/echo/v4"
)

type operation uint8

const (
	opListBooks operation = iota + 1
	opGetBook
	opCreateBook
	opUpdateBook
	opPatchBook
	opDeleteBook
	opListBorrowings
	opGetBorrowing
	opCreateBorrowing
	opReturnBorrowing
	opNotifyOverdue
	opListPayments
	opGetPayment
	opPaymentSuccess
	opPaymentCancel
	opRegister
	opToken
	opMe
	opUpdateMe
)

type route struct {
	method string
	path   string
	role   auth.Role
	handle func(h *Handler, c echo.Context) error
}

// routes is the permission table of the API: every operation names the role allowed to call it.
var routes = map[operation]route{
	opListBooks:  {http.MethodGet, "/books", auth.RolePublic, (*Handler).ListBooks},
	opGetBook:    {http.MethodGet, "/books/:id", auth.RoleUser, (*Handler).GetBook},
	opCreateBook: {http.MethodPost, "/books", auth.RoleStaff, (*Handler).CreateBook},
	opUpdateBook: {http.MethodPut, "/books/:id", auth.RoleStaff, (*Handler).UpdateBook},
	opPatchBook:  {http.MethodPatch, "/books/:id", auth.RoleStaff, (*Handler).PatchBook},
	opDeleteBook: {http.MethodDelete, "/books/:id", auth.RoleStaff, (*Handler).DeleteBook},

	opListBorrowings:  {http.MethodGet, "/borrowings", auth.RoleUser, (*Handler).ListBorrowings},
	opGetBorrowing:    {http.MethodGet, "/borrowings/:id", auth.RoleUser, (*Handler).GetBorrowing},
	opCreateBorrowing: {http.MethodPost, "/borrowings", auth.RoleUser, (*Handler).CreateBorrowing},
	opReturnBorrowing: {http.MethodPost, "/borrowings/:id/return", auth.RoleUser, (*Handler).ReturnBorrowing},
	opNotifyOverdue:   {http.MethodPost, "/borrowings/overdue/notify", auth.RoleStaff, (*Handler).NotifyOverdue},

	opListPayments:   {http.MethodGet, "/payments", auth.RoleUser, (*Handler).ListPayments},
	opGetPayment:     {http.MethodGet, "/payments/:id", auth.RoleUser, (*Handler).GetPayment},
	opPaymentSuccess: {http.MethodGet, "/payments/success", auth.RolePublic, (*Handler).PaymentSuccess},
	opPaymentCancel:  {http.MethodGet, "/payments/cancel", auth.RolePublic, (*Handler).PaymentCancel},

	opRegister: {http.MethodPost, "/users", auth.RolePublic, (*Handler).Register},
	opToken:    {http.MethodPost, "/users/token", auth.RolePublic, (*Handler).Token},
	opMe:       {http.MethodGet, "/users/me", auth.RoleUser, (*Handler).Me},
	opUpdateMe: {http.MethodPatch, "/users/me", auth.RoleUser, (*Handler).UpdateMe},
}

func (h *Handler) register(g *echo.Group, authCfg auth.Config) {
	for _, r := range routes {
		r := r
		g.Add(r.method, r.path, func(c echo.Context) error {
			return r.handle(h, c)
		}, mw.ForRole(r.role, authCfg)...)
	}
}
