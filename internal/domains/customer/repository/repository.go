package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	bookingModel "hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/customer/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
)

type Customer interface {
	InsertReturningID(ctx context.Context, model model.Customer) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteGuarded(ctx context.Context, id int64) (model.DeleteOutcome, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DeleteGuarded deletes the customer only when no booking references it.
// The reference check and the delete run in one transaction on the write
// connection, so a booking inserted concurrently cannot be orphaned.
func (repo *repositoryImpl) DeleteGuarded(ctx context.Context, id int64) (outcome model.DeleteOutcome, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".DeleteGuarded")
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

	referenceQuery := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)",
		bookingModel.TableName,
		bookingModel.FieldCustomerID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, referenceQuery)

	var referenced bool
	if err = tx.GetContext(ctx, &referenced, referenceQuery, id); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to check bookings for customer: %w", err)
	}

	if referenced {
		_ = tx.Rollback()

		return model.DeleteOutcomeHasBookings, nil
	}

	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", model.TableName, model.FieldID)

	result, err := tx.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		return model.DeleteOutcomeNotFound, nil
	}

	return model.DeleteOutcomeDeleted, nil
}
