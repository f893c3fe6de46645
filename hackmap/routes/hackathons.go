package routes

import (
	"hackmap/hackmap/controllers"

	"github.com/go-chi/chi/v5"
)

func HackathonRoutes(ctrl *controllers.HackathonController) chi.Router {
	r := chi.NewRouter()
	r.Post("/recommend", ctrl.Recommend)
	return r
}
