package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/payment/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Payment interface {
	InsertReturningID(ctx context.Context, model model.Payment) (int64, error)
	GetAllDetailed(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PaymentDetail, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	detail gRepo.Repository[model.PaymentDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.PaymentDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) GetAllDetailed(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PaymentDetail, error) {
	return repo.detail.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.Repository.Count(ctx, filter)
}
