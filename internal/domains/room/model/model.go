package model

import "hotelier/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldIsAvailable   = "is_available"
)

type Room struct {
	ID            int64   `db:"id"`
	RoomType      string  `db:"room_type"`
	PricePerNight float64 `db:"price_per_night"`
	IsAvailable   bool    `db:"is_available"`
	model.Metadata
}
