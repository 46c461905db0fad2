package model

import (
	"fmt"
	bookingModel "hotelier/internal/domains/booking/model"
	customerModel "hotelier/internal/domains/customer/model"
	"hotelier/shared/model"
	"time"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldPaymentDate   = "payment_date"
	FieldPaymentMethod = "payment_method"
)

type Payment struct {
	ID            int64     `db:"id"`
	BookingID     int64     `db:"booking_id"`
	Amount        float64   `db:"amount"`
	PaymentDate   time.Time `db:"payment_date"`
	PaymentMethod string    `db:"payment_method"`
	model.Metadata
}

// PaymentDetail is the read model for listings, joined through the booking
// to the paying customer.
type PaymentDetail struct {
	Payment
	CustomerID   int64  `db:"paying_customer_id" table:"bookings" column:"customer_id"`
	CustomerName string `db:"customer_name"      table:"customers" column:"name"`
}

func (PaymentDetail) GetJoinQuery() string {
	return fmt.Sprintf(
		"JOIN %s ON %s.%s = %s.%s JOIN %s ON %s.%s = %s.%s",
		bookingModel.TableName, TableName, FieldBookingID, bookingModel.TableName, bookingModel.FieldID,
		customerModel.TableName, bookingModel.TableName, bookingModel.FieldCustomerID, customerModel.TableName, customerModel.FieldID,
	)
}
