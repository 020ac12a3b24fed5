package dto_test

import (
	"testing"
	"todolist/internal/domains/task/model"
	"todolist/internal/domains/task/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateTaskRequest_ToModel(t *testing.T) {
	req := dto.CreateTaskRequest{Name: "  Buy milk \n"}
	req.Normalize()

	task := req.ToModel()

	assert.Zero(t, task.ID, "expected ID to be left for the database")
	assert.Equal(t, "Buy milk", task.Name)
	assert.False(t, task.Completed)
}

func TestTaskListResponse_FromModels(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Name: "Buy milk", Completed: false},
		{ID: 2, Name: "Buy eggs", Completed: true},
	}

	var response dto.TaskListResponse
	response.FromModels(model.CategoryShopping, tasks)

	assert.Equal(t, model.CategoryShopping, response.Category)
	assert.Equal(t, []dto.TaskResponse{
		{ID: 1, Name: "Buy milk", Completed: false},
		{ID: 2, Name: "Buy eggs", Completed: true},
	}, response.Tasks)

	response.FromModels(model.CategoryWork, nil)
	assert.NotNil(t, response.Tasks)
	assert.Empty(t, response.Tasks)
}

func TestDeleteTaskResponse_Empty(t *testing.T) {
	assert.True(t, (&dto.DeleteTaskResponse{Remaining: 0}).Empty())
	assert.False(t, (&dto.DeleteTaskResponse{Remaining: 2}).Empty())
}
