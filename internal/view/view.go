package view

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"todolist/infras/otel"
	"todolist/internal/domains/task/model"
	"todolist/internal/domains/task/model/dto"
	"todolist/shared/constant"
)

const (
	templatePage    = "index.html"
	templateTasks   = "tasks"
	templateTask    = "task"
	templateModal   = "modal"
	staticDir       = "static"
	templatePattern = "templates/*.html"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// PageData feeds the home page.
type PageData struct {
	AppName    string
	Categories []model.Category
}

// Renderer turns service results into HTML documents and fragments.
type Renderer interface {
	Page(ctx context.Context, w io.Writer, data PageData) error
	TaskList(ctx context.Context, w io.Writer, list dto.TaskListResponse) error
	TaskRow(ctx context.Context, w io.Writer, row dto.TaskRowResponse) error
	ConfirmDelete(ctx context.Context, w io.Writer, confirm dto.ConfirmDeleteResponse) error
}

type rendererImpl struct {
	templates *template.Template
	otel      otel.Otel
}

var funcs = template.FuncMap{
	"row": func(category model.Category, task dto.TaskResponse) dto.TaskRowResponse {
		return dto.TaskRowResponse{Category: category, Task: task}
	},
	"list": func(category model.Category, tasks []dto.TaskResponse) dto.TaskListResponse {
		return dto.TaskListResponse{Category: category, Tasks: tasks}
	},
}

func New(otel otel.Otel) Renderer {
	return &rendererImpl{
		templates: template.Must(template.New(templatePage).Funcs(funcs).ParseFS(templateFS, templatePattern)),
		otel:      otel,
	}
}

// Static serves the embedded stylesheet and scripts; mount it under constant.StaticURLPrefix.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, staticDir)
	if err != nil {
		panic(err)
	}

	return http.StripPrefix(constant.StaticURLPrefix, http.FileServerFS(sub))
}

func (r *rendererImpl) render(ctx context.Context, w io.Writer, name string, category model.Category, data any) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelViewScopeName, constant.OtelViewScopeName+"."+name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if category != "" {
		scope.SetAttribute(constant.OtelCategoryAttributeKey, category.String())
	}

	if err = r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return nil
}

func (r *rendererImpl) Page(ctx context.Context, w io.Writer, data PageData) error {
	return r.render(ctx, w, templatePage, "", data)
}

func (r *rendererImpl) TaskList(ctx context.Context, w io.Writer, list dto.TaskListResponse) error {
	return r.render(ctx, w, templateTasks, list.Category, list)
}

func (r *rendererImpl) TaskRow(ctx context.Context, w io.Writer, row dto.TaskRowResponse) error {
	return r.render(ctx, w, templateTask, row.Category, row)
}

func (r *rendererImpl) ConfirmDelete(ctx context.Context, w io.Writer, confirm dto.ConfirmDeleteResponse) error {
	return r.render(ctx, w, templateModal, confirm.Category, confirm)
}
