package home

import (
	"io"
	"net/http"
	"todolist/config"
	"todolist/infras/otel"
	"todolist/internal/domains/task/model"
	"todolist/internal/view"
	"todolist/shared/constant"
	"todolist/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	config *config.Config
	view   view.Renderer
	otel   otel.Otel
}

func New(config *config.Config, view view.Renderer, otel otel.Otel) Handler {
	return Handler{
		config: config,
		view:   view,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
	router.Handle(constant.StaticURLPrefix+"*", view.Static())
}

// Home renders the page shell; each category section loads its own list.
// @Summary Home page
// @Tags Home
// @Produce html
// @Success 200 {string} string "Home page"
// @Router / [get]
func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	data := view.PageData{
		AppName:    handler.config.App.Name,
		Categories: model.Categories(),
	}

	response.WithHTML(writer, http.StatusOK, func(w io.Writer) error {
		return handler.view.Page(ctx, w, data)
	})
}
