package task

import (
	"context"
	"io"
	"net/http"
	"todolist/infras/otel"
	"todolist/internal/domains/task/model"
	"todolist/internal/domains/task/model/dto"
	"todolist/internal/domains/task/service"
	"todolist/internal/view"
	"todolist/shared"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/logger"
	"todolist/shared/validator"
	"todolist/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Task
	view    view.Renderer
	otel    otel.Otel
}

func New(service service.Task, view view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    view,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tasks/{category}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListTasks)
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Put("/{id}", handler.ToggleTask)
		routerGroup.Get("/confirm-delete/{id}", handler.ConfirmDeleteTask)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

func (handler *Handler) newScope(request *http.Request, operation string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
}

func (handler *Handler) fail(ctx context.Context, writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	event := logger.Ctx(ctx).Error()
	if failure.GetCode(err) < http.StatusInternalServerError {
		event = logger.Ctx(ctx).Warn()
	}

	event.Err(err).Msg(msg)

	response.WithText(writer, err)
}

func parseCategory(request *http.Request, scope otel.Scope) (model.Category, error) {
	category, err := model.ParseCategory(chi.URLParam(request, constant.RequestParamCategory))
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	scope.SetAttribute(constant.OtelCategoryAttributeKey, category.String())

	return category, nil
}

func categoryAndID(request *http.Request, scope otel.Scope) (model.Category, int64, error) {
	category, err := parseCategory(request, scope)
	if err != nil {
		return "", 0, err
	}

	id, ok := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if !ok {
		return "", 0, failure.InvalidTaskID
	}

	scope.SetAttribute(constant.OtelTaskIDAttributeKey, id)

	return category, id, nil
}

// ListTasks renders every task of a category.
// @Summary List tasks
// @Description Render the task table fragment of a category, or its empty state.
// @Tags Task
// @Produce html
// @Param category path string true "Task category" Enums(personal, work, shopping)
// @Success 200 {string} string "Task list fragment"
// @Failure 404 {string} string "Unknown category"
// @Failure 500 {string} string
// @Router /tasks/{category} [get]
func (handler *Handler) ListTasks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.newScope(request, "ListTasks")
	defer scope.End()

	category, err := parseCategory(request, scope)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "invalid task category")

		return
	}

	list, err := handler.service.List(ctx, category)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "failed to list tasks")

		return
	}

	response.WithHTML(writer, http.StatusOK, func(w io.Writer) error {
		return handler.view.TaskList(ctx, w, list)
	})
}

// CreateTask adds a pending task and re-renders the list.
// @Summary Create a task
// @Description Insert a pending task into the category and render the updated list fragment.
// @Tags Task
// @Accept x-www-form-urlencoded
// @Produce html
// @Param category path string true "Task category" Enums(personal, work, shopping)
// @Param name formData string true "Task name"
// @Success 200 {string} string "Task list fragment"
// @Failure 400 {string} string "Blank or oversized name"
// @Failure 404 {string} string "Unknown category"
// @Failure 500 {string} string
// @Router /tasks/{category} [post]
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.newScope(request, "CreateTask")
	defer scope.End()

	category, err := parseCategory(request, scope)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "invalid task category")

		return
	}

	req := dto.CreateTaskRequest{}

	if err := validator.ValidateForm(request, &req); err != nil {
		handler.fail(ctx, writer, scope, err, "failed to validate request body")

		return
	}

	list, err := handler.service.Create(ctx, category, req)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "failed to create task")

		return
	}

	scope.AddEvent("Task created successfully")

	response.WithHTML(writer, http.StatusOK, func(w io.Writer) error {
		return handler.view.TaskList(ctx, w, list)
	})
}

// ToggleTask flips the completion flag of one task.
// @Summary Toggle a task
// @Description Flip the completed flag and render the single task row fragment.
// @Tags Task
// @Produce html
// @Param category path string true "Task category" Enums(personal, work, shopping)
// @Param id path int true "Task ID"
// @Success 200 {string} string "Task row fragment"
// @Failure 400 {string} string "Invalid task id"
// @Failure 404 {string} string "Task not found"
// @Failure 500 {string} string
// @Router /tasks/{category}/{id} [put]
func (handler *Handler) ToggleTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.newScope(request, "ToggleTask")
	defer scope.End()

	category, id, err := categoryAndID(request, scope)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "invalid task path")

		return
	}

	row, err := handler.service.Toggle(ctx, category, id)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "failed to toggle task")

		return
	}

	response.WithHTML(writer, http.StatusOK, func(w io.Writer) error {
		return handler.view.TaskRow(ctx, w, row)
	})
}

// ConfirmDeleteTask asks for confirmation before a delete.
// @Summary Confirm task deletion
// @Description Render the list together with a confirmation prompt for one task. Nothing is modified.
// @Tags Task
// @Produce html
// @Param category path string true "Task category" Enums(personal, work, shopping)
// @Param id path int true "Task ID"
// @Success 200 {string} string "Confirmation fragment"
// @Failure 400 {string} string "Invalid task id"
// @Failure 404 {string} string "Task not found"
// @Failure 500 {string} string
// @Router /tasks/{category}/confirm-delete/{id} [get]
func (handler *Handler) ConfirmDeleteTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.newScope(request, "ConfirmDeleteTask")
	defer scope.End()

	category, id, err := categoryAndID(request, scope)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "invalid task path")

		return
	}

	confirm, err := handler.service.ConfirmDelete(ctx, category, id)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "failed to confirm task deletion")

		return
	}

	response.WithHTML(writer, http.StatusOK, func(w io.Writer) error {
		return handler.view.ConfirmDelete(ctx, w, confirm)
	})
}

// DeleteTask removes a task for good.
// @Summary Delete a task
// @Description Remove the task. Responds with an empty body while other tasks remain so the row is swapped out,
// @Description or with the empty list fragment retargeted at the whole table once the last task is gone.
// @Tags Task
// @Produce html
// @Param category path string true "Task category" Enums(personal, work, shopping)
// @Param id path int true "Task ID"
// @Success 200 {string} string "Empty body or empty list fragment"
// @Failure 400 {string} string "Invalid task id"
// @Failure 404 {string} string "Task not found"
// @Failure 500 {string} string
// @Router /tasks/{category}/{id} [delete]
func (handler *Handler) DeleteTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.newScope(request, "DeleteTask")
	defer scope.End()

	category, id, err := categoryAndID(request, scope)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "invalid task path")

		return
	}

	deleted, err := handler.service.Delete(ctx, category, id)
	if err != nil {
		handler.fail(ctx, writer, scope, err, "failed to delete task")

		return
	}

	scope.AddEvent("Task deleted successfully")

	if !deleted.Empty() {
		response.WithEmpty(writer)

		return
	}

	writer.Header().Set(constant.ResponseHeaderHXRetarget, "#"+category.String()+"-tasks")
	writer.Header().Set(constant.ResponseHeaderHXReswap, "innerHTML")

	response.WithHTML(writer, http.StatusOK, func(w io.Writer) error {
		return handler.view.TaskList(ctx, w, dto.TaskListResponse{Category: deleted.Category, Tasks: deleted.Tasks})
	})
}
