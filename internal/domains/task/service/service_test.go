package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"todolist/infras/otel/mocks"
	taskMocks "todolist/internal/domains/task/mocks"
	"todolist/internal/domains/task/model"
	"todolist/internal/domains/task/model/dto"
	"todolist/internal/domains/task/service"
	"todolist/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Task, *taskMocks.MockTask, *mocks.Otel) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := taskMocks.NewMockTask(ctrl)
	mockOtel := mocks.NewOtel()

	return service.New(mockRepo, mockOtel), mockRepo, mockOtel
}

func TestTaskService_List(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *taskMocks.MockTask)
		wantErr   bool
		wantTasks []dto.TaskResponse
	}{
		{
			name: "returns every task",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().
					GetAll(gomock.Any(), model.CategoryWork).
					Return([]model.Task{{ID: 1, Name: "Write report"}, {ID: 2, Name: "Review PR", Completed: true}}, nil)
			},
			wantTasks: []dto.TaskResponse{{ID: 1, Name: "Write report"}, {ID: 2, Name: "Review PR", Completed: true}},
		},
		{
			name: "empty table",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().GetAll(gomock.Any(), model.CategoryWork).Return([]model.Task{}, nil)
			},
			wantTasks: []dto.TaskResponse{},
		},
		{
			name: "repository error",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().GetAll(gomock.Any(), model.CategoryWork).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, tracer := newService(t)
			tt.setupMock(repo)

			result, err := svc.List(context.Background(), model.CategoryWork)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
				assert.NotEmpty(t, tracer.Errors())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.CategoryWork, result.Category)
			assert.Equal(t, tt.wantTasks, result.Tasks)
		})
	}
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		setupMock func(repo *taskMocks.MockTask)
		wantErr   bool
	}{
		{
			name: "successful creation returns updated list",
			req:  dto.CreateTaskRequest{Name: "Buy milk"},
			setupMock: func(repo *taskMocks.MockTask) {
				gomock.InOrder(
					repo.EXPECT().
						Insert(gomock.Any(), model.CategoryShopping, model.Task{Name: "Buy milk", Completed: false}).
						Return(int64(1), nil),
					repo.EXPECT().
						GetAll(gomock.Any(), model.CategoryShopping).
						Return([]model.Task{{ID: 1, Name: "Buy milk"}}, nil),
				)
			},
		},
		{
			name: "repository error",
			req:  dto.CreateTaskRequest{Name: "Buy milk"},
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().
					Insert(gomock.Any(), model.CategoryShopping, gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			result, err := svc.Create(context.Background(), model.CategoryShopping, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []dto.TaskResponse{{ID: 1, Name: "Buy milk", Completed: false}}, result.Tasks)
		})
	}
}

func TestTaskService_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *taskMocks.MockTask)
		wantCode  int
		wantTask  dto.TaskResponse
	}{
		{
			name: "pending becomes completed",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), model.CategoryPersonal, int64(3)).Return(model.Task{ID: 3, Name: "Call mom"}, nil)
				repo.EXPECT().SetCompleted(gomock.Any(), model.CategoryPersonal, int64(3), true).Return(true, nil)
			},
			wantTask: dto.TaskResponse{ID: 3, Name: "Call mom", Completed: true},
		},
		{
			name: "completed becomes pending",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), model.CategoryPersonal, int64(3)).Return(model.Task{ID: 3, Name: "Call mom", Completed: true}, nil)
				repo.EXPECT().SetCompleted(gomock.Any(), model.CategoryPersonal, int64(3), false).Return(true, nil)
			},
			wantTask: dto.TaskResponse{ID: 3, Name: "Call mom", Completed: false},
		},
		{
			name: "missing task",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), model.CategoryPersonal, int64(3)).Return(model.Task{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "deleted before the update",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), model.CategoryPersonal, int64(3)).Return(model.Task{ID: 3, Name: "Call mom"}, nil)
				repo.EXPECT().SetCompleted(gomock.Any(), model.CategoryPersonal, int64(3), true).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "get error",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), model.CategoryPersonal, int64(3)).Return(model.Task{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "update error",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), model.CategoryPersonal, int64(3)).Return(model.Task{ID: 3}, nil)
				repo.EXPECT().SetCompleted(gomock.Any(), model.CategoryPersonal, int64(3), true).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			result, err := svc.Toggle(context.Background(), model.CategoryPersonal, 3)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.CategoryPersonal, result.Category)
			assert.Equal(t, tt.wantTask, result.Task)
		})
	}
}

func TestTaskService_Toggle_NotFoundMessage(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), model.CategoryWork, int64(8)).Return(model.Task{}, nil)

	_, err := svc.Toggle(context.Background(), model.CategoryWork, 8)

	assert.EqualError(t, err, "Work task not found")
}

func TestTaskService_ConfirmDelete(t *testing.T) {
	t.Run("returns target and list without mutating", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), model.CategoryWork, int64(2)).Return(model.Task{ID: 2, Name: "Review PR"}, nil)
		repo.EXPECT().GetAll(gomock.Any(), model.CategoryWork).Return([]model.Task{{ID: 1, Name: "Write report"}, {ID: 2, Name: "Review PR"}}, nil)

		result, err := svc.ConfirmDelete(context.Background(), model.CategoryWork, 2)

		require.NoError(t, err)
		assert.Equal(t, model.CategoryWork, result.Category)
		assert.Equal(t, dto.TaskResponse{ID: 2, Name: "Review PR"}, result.Task)
		assert.Len(t, result.Tasks, 2)
	})

	t.Run("missing task", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), model.CategoryWork, int64(2)).Return(model.Task{}, nil)

		_, err := svc.ConfirmDelete(context.Background(), model.CategoryWork, 2)

		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
		assert.EqualError(t, err, "You can't delete a non-existing work task")
	})

	t.Run("list error", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), model.CategoryWork, int64(2)).Return(model.Task{ID: 2}, nil)
		repo.EXPECT().GetAll(gomock.Any(), model.CategoryWork).Return(nil, errors.New("database error"))

		_, err := svc.ConfirmDelete(context.Background(), model.CategoryWork, 2)

		assert.Error(t, err)
	})
}

func TestTaskService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(repo *taskMocks.MockTask)
		wantCode      int
		wantEmpty     bool
		wantRemaining int
	}{
		{
			name: "tasks remain",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Delete(gomock.Any(), model.CategoryShopping, int64(5)).Return(true, nil)
				repo.EXPECT().Count(gomock.Any(), model.CategoryShopping).Return(2, nil)
			},
			wantRemaining: 2,
		},
		{
			name: "last task removed",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Delete(gomock.Any(), model.CategoryShopping, int64(5)).Return(true, nil)
				repo.EXPECT().Count(gomock.Any(), model.CategoryShopping).Return(0, nil)
			},
			wantEmpty: true,
		},
		{
			name: "missing task",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Delete(gomock.Any(), model.CategoryShopping, int64(5)).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Delete(gomock.Any(), model.CategoryShopping, int64(5)).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "count error",
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Delete(gomock.Any(), model.CategoryShopping, int64(5)).Return(true, nil)
				repo.EXPECT().Count(gomock.Any(), model.CategoryShopping).Return(0, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			result, err := svc.Delete(context.Background(), model.CategoryShopping, 5)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(5), result.DeletedID)
			assert.Equal(t, tt.wantEmpty, result.Empty())
			assert.Equal(t, tt.wantRemaining, result.Remaining)

			if tt.wantEmpty {
				assert.NotNil(t, result.Tasks)
				assert.Empty(t, result.Tasks)
			} else {
				assert.Nil(t, result.Tasks)
			}
		})
	}
}
