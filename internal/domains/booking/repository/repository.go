package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"
)

type Booking interface {
	CreateWithRoomHold(ctx context.Context, model model.Booking) (int64, error)
	GetAllDetailed(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	detail gRepo.Repository[model.BookingDetail]
	rooms  gRepo.Repository[roomModel.Room]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		rooms:      gRepo.NewRepository[roomModel.Room](roomModel.EntityName, roomModel.TableName, roomModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithRoomHold inserts the booking and marks its room unavailable in
// one transaction, so a booking row never exists without the room hold.
func (repo *repositoryImpl) CreateWithRoomHold(ctx context.Context, booking model.Booking) (id int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CreateWithRoomHold")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id, err = repo.InsertReturningIDTx(ctx, tx, booking)
	if err != nil {
		return 0, err
	}

	hold := map[string]any{
		roomModel.FieldIsAvailable: false,
		constant.FieldModifiedAt:   timezone.Now(),
	}

	err = repo.rooms.UpdateTx(ctx, tx, hold, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return id, nil
}

func (repo *repositoryImpl) GetAllDetailed(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return repo.detail.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.Repository.Count(ctx, filter)
}
