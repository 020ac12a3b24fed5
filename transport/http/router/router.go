package router

import (
	"todolist/internal/handlers/home"
	"todolist/internal/handlers/task"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Home home.Handler
	Task task.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Home.Router(router)
	r.DomainHandlers.Task.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
