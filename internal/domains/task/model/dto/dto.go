package dto

import (
	"strings"
	"todolist/internal/domains/task/model"
)

type CreateTaskRequest struct {
	Name string `form:"name" json:"name" validate:"required,max=255"`
}

// Normalize trims surrounding whitespace so a blank name fails validation.
func (c *CreateTaskRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

func (c *CreateTaskRequest) ToModel() model.Task {
	return model.Task{
		Name:      c.Name,
		Completed: false,
	}
}

type TaskResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.Name = model.Name
	r.Completed = model.Completed
}

type TaskListResponse struct {
	Category model.Category `json:"category"`
	Tasks    []TaskResponse `json:"tasks"`
}

func (r *TaskListResponse) FromModels(category model.Category, models []model.Task) {
	r.Category = category
	r.Tasks = make([]TaskResponse, len(models))

	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}

type TaskRowResponse struct {
	Category model.Category `json:"category"`
	Task     TaskResponse   `json:"task"`
}

// ConfirmDeleteResponse backs the delete confirmation prompt; nothing is mutated to build it.
type ConfirmDeleteResponse struct {
	Category model.Category `json:"category"`
	Task     TaskResponse   `json:"task"`
	Tasks    []TaskResponse `json:"tasks"`
}

// DeleteTaskResponse tells the caller whether rows remain. When none do,
// Tasks holds the now empty list so the table can be replaced by the empty state.
type DeleteTaskResponse struct {
	Category  model.Category `json:"category"`
	DeletedID int64          `json:"deleted_id"`
	Remaining int            `json:"remaining"`
	Tasks     []TaskResponse `json:"tasks,omitempty"`
}

func (r *DeleteTaskResponse) Empty() bool {
	return r.Remaining == 0
}
