package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"hotelier/infras/otel/mocks"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/repository"
	"hotelier/shared/timezone"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestBookingRepository_CreateWithRoomHold(t *testing.T) {
	checkIn, _ := timezone.Parse("2006-01-02", "2026-09-01")
	checkOut, _ := timezone.Parse("2006-01-02", "2026-09-05")

	booking := model.Booking{
		CustomerID:   1,
		RoomID:       2,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  480.00,
	}

	t.Run("booking insert and room hold commit together", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := repository.New(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectPrepare("INSERT INTO bookings").
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec("UPDATE rooms SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		id, err := repo.CreateWithRoomHold(context.Background(), booking)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed insert rolls back", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := repository.New(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectPrepare("INSERT INTO bookings").
			ExpectQuery().
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		id, err := repo.CreateWithRoomHold(context.Background(), booking)

		assert.Error(t, err)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed room hold rolls the insert back", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := repository.New(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectPrepare("INSERT INTO bookings").
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec("UPDATE rooms SET").
			WillReturnError(errors.New("update failed"))
		mock.ExpectRollback()

		id, err := repo.CreateWithRoomHold(context.Background(), booking)

		assert.Error(t, err)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed begin", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := repository.New(conn, mocks.NewOtel())

		mock.ExpectBegin().WillReturnError(errors.New("connection lost"))

		id, err := repo.CreateWithRoomHold(context.Background(), booking)

		assert.Error(t, err)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
