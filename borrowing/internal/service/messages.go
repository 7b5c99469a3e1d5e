package service

import (
	"fmt"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
)

const (
	msgNoOverdue       = "No borrowings overdue today!"
	msgReturned        = "Your borrowing was successfully returned."
	msgReturnedOverdue = "Your return is overdue. Please provide fine payment."
	msgPaymentDone     = "Payment was successful."
	msgPaymentPaid     = "Payment was already completed."
	msgPaymentNotYet   = "Payment is not completed yet."
	msgPaymentCancel   = "Payment can be completed later. The checkout session stays available for 24 hours."
)

func borrowingInfo(o model.OverdueBorrowing) string {
	return fmt.Sprintf("id: %d\nBorrow date: %s\nExpected return date: %s\nBook: %s\nUser full name: %s\nUser id: %d",
		o.ID, o.BorrowDate, o.ExpectedReturnDate, o.BookTitle, o.UserFullName, o.UserID)
}

func overdueMessage(o model.OverdueBorrowing) string {
	return "Borrowing overdue:\n" + borrowingInfo(o)
}

func createdMessage(b model.Borrowing, u model.User) string {
	return "New borrowing:\n" + borrowingInfo(summary(b, u)) +
		fmt.Sprintf("\nTo pay: %s", BorrowingFee(b.Book.DailyFee, b.BorrowDate, b.ExpectedReturnDate).StringFixed(2))
}

func returnedMessage(b model.Borrowing, u model.User, fine *model.Payment) string {
	msg := "Borrowing returned:\n" + borrowingInfo(summary(b, u))
	if fine != nil {
		msg += fmt.Sprintf("\nFine: %s", fine.MoneyToPay.StringFixed(2))
	}
	return msg
}

func paidMessage(p model.Payment) string {
	return fmt.Sprintf("Payment received:\nid: %d\nType: %s\nBorrowing id: %d\nAmount: %s",
		p.ID, p.Type, p.BorrowingID, p.MoneyToPay.StringFixed(2))
}

func summary(b model.Borrowing, u model.User) model.OverdueBorrowing {
	return model.OverdueBorrowing{
		ID:                 b.ID,
		BorrowDate:         b.BorrowDate,
		ExpectedReturnDate: b.ExpectedReturnDate,
		BookTitle:          b.Book.Title,
		UserID:             b.UserID,
		UserFullName:       u.FullName(),
	}
}
