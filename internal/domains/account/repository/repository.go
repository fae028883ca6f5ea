package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"busticket/infras/otel"
	"busticket/infras/postgres"
	"busticket/internal/domains/account/model"
	gDto "busticket/shared/dto"
	gRepo "busticket/shared/repository"
	"context"
)

type Account interface {
	Insert(ctx context.Context, model model.Account) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Account, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Account]
}

func New(db *postgres.Connection, otel otel.Otel) Account {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Account](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
