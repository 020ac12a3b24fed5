package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"todolist/infras/database"
	"todolist/infras/otel"
	"todolist/internal/domains/task/model"
	"todolist/shared"
	gDto "todolist/shared/dto"
	gRepo "todolist/shared/repository"
)

// Task persists tasks in one table per category.
type Task interface {
	Insert(ctx context.Context, category model.Category, task model.Task) (int64, error)
	Get(ctx context.Context, category model.Category, id int64) (model.Task, error)
	GetAll(ctx context.Context, category model.Category) ([]model.Task, error)
	Count(ctx context.Context, category model.Category) (int, error)
	SetCompleted(ctx context.Context, category model.Category, id int64, completed bool) (bool, error)
	Delete(ctx context.Context, category model.Category, id int64) (bool, error)
}

type repositoryImpl struct {
	tables map[model.Category]*gRepo.Repository[model.Task]
}

func New(db *database.Connection, otel otel.Otel) Task {
	tables := make(map[model.Category]*gRepo.Repository[model.Task], len(model.Categories()))

	for _, category := range model.Categories() {
		repo := gRepo.NewRepository[model.Task](model.EntityName+"."+category.String(), category.TableName(), model.FieldID, db, otel)
		tables[category] = &repo
	}

	return &repositoryImpl{
		tables: tables,
	}
}

func (r *repositoryImpl) table(category model.Category) (*gRepo.Repository[model.Task], error) {
	repo, ok := r.tables[category]
	if !ok {
		return nil, fmt.Errorf("no table for category %q", category)
	}

	return repo, nil
}

func (r *repositoryImpl) byID(category model.Category, id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, category.TableName())
}

func (r *repositoryImpl) Insert(ctx context.Context, category model.Category, task model.Task) (int64, error) {
	repo, err := r.table(category)
	if err != nil {
		return 0, err
	}

	return repo.InsertReturningID(ctx, task) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, category model.Category, id int64) (model.Task, error) {
	repo, err := r.table(category)
	if err != nil {
		return model.Task{}, err
	}

	return repo.Get(ctx, r.byID(category, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, category model.Category) ([]model.Task, error) {
	repo, err := r.table(category)
	if err != nil {
		return nil, err
	}

	return repo.GetAll(ctx, gDto.DefaultQueryParams(), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, category model.Category) (int, error) {
	repo, err := r.table(category)
	if err != nil {
		return 0, err
	}

	return repo.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

// SetCompleted reports false when no row carries id.
func (r *repositoryImpl) SetCompleted(ctx context.Context, category model.Category, id int64, completed bool) (bool, error) {
	repo, err := r.table(category)
	if err != nil {
		return false, err
	}

	affected, err := repo.Update(ctx, map[string]any{model.FieldCompleted: completed}, r.byID(category, id))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected != 0, nil
}

// Delete reports false when no row carries id.
func (r *repositoryImpl) Delete(ctx context.Context, category model.Category, id int64) (bool, error) {
	repo, err := r.table(category)
	if err != nil {
		return false, err
	}

	affected, err := repo.Delete(ctx, r.byID(category, id))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected != 0, nil
}
