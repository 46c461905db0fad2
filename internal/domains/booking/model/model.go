package model

import (
	"fmt"
	customerModel "hotelier/internal/domains/customer/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalAmount  = "total_amount"
)

type Booking struct {
	ID           int64     `db:"id"`
	CustomerID   int64     `db:"customer_id"`
	RoomID       int64     `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	TotalAmount  float64   `db:"total_amount"`
	model.Metadata
}

// BookingDetail is the read model for listings, joined with the booking's
// customer name and room type.
type BookingDetail struct {
	Booking
	CustomerName string `db:"customer_name" table:"customers" column:"name"`
	RoomType     string `db:"room_type"     table:"rooms"`
}

func (BookingDetail) GetJoinQuery() string {
	return fmt.Sprintf(
		"JOIN %s ON %s.%s = %s.%s JOIN %s ON %s.%s = %s.%s",
		customerModel.TableName, TableName, FieldCustomerID, customerModel.TableName, customerModel.FieldID,
		roomModel.TableName, TableName, FieldRoomID, roomModel.TableName, roomModel.FieldID,
	)
}
