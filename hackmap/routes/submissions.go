package routes

import (
	"hackmap/hackmap/controllers"

	"github.com/go-chi/chi/v5"
)

func SubmissionRoutes(ctrl *controllers.SubmissionController) chi.Router {
	r := chi.NewRouter()
	r.Post("/project-chat", ctrl.ProjectChat)
	return r
}
