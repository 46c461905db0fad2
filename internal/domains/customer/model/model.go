package model

import "hotelier/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID      = "id"
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldAddress = "address"
)

type Customer struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Phone   string `db:"phone"`
	Email   string `db:"email"`
	Address string `db:"address"`
	model.Metadata
}

// DeleteOutcome is the result of a guarded customer deletion.
type DeleteOutcome int

const (
	DeleteOutcomeDeleted DeleteOutcome = iota + 1
	DeleteOutcomeHasBookings
	DeleteOutcomeNotFound
)
