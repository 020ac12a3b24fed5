package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"todolist/infras/otel"
	"todolist/internal/domains/task/model"
	"todolist/internal/domains/task/model/dto"
	"todolist/internal/domains/task/repository"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/logger"
)

// Task is the per-category CRUD surface. Every category behaves identically.
type Task interface {
	List(ctx context.Context, category model.Category) (dto.TaskListResponse, error)
	Create(ctx context.Context, category model.Category, req dto.CreateTaskRequest) (dto.TaskListResponse, error)
	Toggle(ctx context.Context, category model.Category, id int64) (dto.TaskRowResponse, error)
	ConfirmDelete(ctx context.Context, category model.Category, id int64) (dto.ConfirmDeleteResponse, error)
	Delete(ctx context.Context, category model.Category, id int64) (dto.DeleteTaskResponse, error)
}

type serviceImpl struct {
	repo repository.Task
	otel otel.Otel
}

func New(repo repository.Task, otel otel.Otel) Task {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Messages share one wording across categories.
func notFound(category model.Category) error {
	return failure.NotFound(category.Title() + " task not found")
}

func deleteNotFound(category model.Category) error {
	return failure.NotFound(fmt.Sprintf("You can't delete a non-existing %s task", category))
}

func (s *serviceImpl) newScope(ctx context.Context, operation string, category model.Category) (context.Context, otel.Scope) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+operation)
	scope.SetAttribute(constant.OtelCategoryAttributeKey, category.String())

	return ctx, scope
}

func (s *serviceImpl) List(ctx context.Context, category model.Category) (res dto.TaskListResponse, err error) {
	ctx, scope := s.newScope(ctx, "List", category)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tasks, err := s.repo.GetAll(ctx, category)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("category", category.String()).Msg("failed to get tasks")

		return res, fmt.Errorf("failed to get %s tasks: %w", category, err)
	}

	res.FromModels(category, tasks)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, category model.Category, req dto.CreateTaskRequest) (res dto.TaskListResponse, err error) {
	ctx, scope := s.newScope(ctx, "Create", category)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, category, req.ToModel())
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("category", category.String()).Msg("failed to create task")

		return res, fmt.Errorf("failed to create %s task: %w", category, err)
	}

	scope.SetAttribute(constant.OtelTaskIDAttributeKey, id)
	logger.Ctx(ctx).Debug().Int64("id", id).Str("category", category.String()).Msg("task created")

	return s.List(ctx, category)
}

func (s *serviceImpl) Toggle(ctx context.Context, category model.Category, id int64) (res dto.TaskRowResponse, err error) {
	ctx, scope := s.newScope(ctx, "Toggle", category)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTaskIDAttributeKey, id)

	task, err := s.repo.Get(ctx, category, id)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get task")

		return res, fmt.Errorf("failed to get %s task: %w", category, err)
	}

	if task.ID == 0 {
		return res, notFound(category)
	}

	task.Completed = !task.Completed

	updated, err := s.repo.SetCompleted(ctx, category, id, task.Completed)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to toggle task")

		return res, fmt.Errorf("failed to toggle %s task: %w", category, err)
	}

	// deleted between the read and the write
	if !updated {
		return res, notFound(category)
	}

	res.Category = category
	res.Task.FromModel(task)

	return res, nil
}

func (s *serviceImpl) ConfirmDelete(ctx context.Context, category model.Category, id int64) (res dto.ConfirmDeleteResponse, err error) {
	ctx, scope := s.newScope(ctx, "ConfirmDelete", category)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTaskIDAttributeKey, id)

	task, err := s.repo.Get(ctx, category, id)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get task")

		return res, fmt.Errorf("failed to get %s task: %w", category, err)
	}

	if task.ID == 0 {
		return res, deleteNotFound(category)
	}

	list, err := s.List(ctx, category)
	if err != nil {
		return res, err
	}

	res.Category = category
	res.Task.FromModel(task)
	res.Tasks = list.Tasks

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, category model.Category, id int64) (res dto.DeleteTaskResponse, err error) {
	ctx, scope := s.newScope(ctx, "Delete", category)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTaskIDAttributeKey, id)

	deleted, err := s.repo.Delete(ctx, category, id)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete task")

		return res, fmt.Errorf("failed to delete %s task: %w", category, err)
	}

	if !deleted {
		return res, deleteNotFound(category)
	}

	remaining, err := s.repo.Count(ctx, category)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to count tasks")

		return res, fmt.Errorf("failed to count %s tasks: %w", category, err)
	}

	res.Category = category
	res.DeletedID = id
	res.Remaining = remaining

	if res.Empty() {
		res.Tasks = []dto.TaskResponse{}
	}

	return res, nil
}
