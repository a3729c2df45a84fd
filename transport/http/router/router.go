package router

import (
	"nutricoach/internal/handlers/booking"
	"nutricoach/internal/handlers/content"
	"nutricoach/internal/handlers/course"
	"nutricoach/internal/handlers/schedule"
	"nutricoach/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Schedule schedule.Handler
	Booking  booking.Handler
	Course   course.Handler
	Content  content.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.AuthRole
	AppMiddleware  middleware.AppMiddleware
}

// SetupRoutes mounts the public client-facing routes under /api and the
// console routes under /api/admin. The admin group requires a valid token
// with the admin role; the public group is rate limited per client instead.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Group(func(publicGroup chi.Router) {
			publicGroup.Use(r.AppMiddleware.RateLimit())

			r.DomainHandlers.Schedule.PublicRouter(publicGroup)
			r.DomainHandlers.Booking.PublicRouter(publicGroup)
			r.DomainHandlers.Course.PublicRouter(publicGroup)
			r.DomainHandlers.Content.PublicRouter(publicGroup)
		})

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AuthMiddleware.Auth)
			adminGroup.Use(r.AuthMiddleware.RequireAdmin)

			r.DomainHandlers.Schedule.AdminRouter(adminGroup)
			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Course.AdminRouter(adminGroup)
			r.DomainHandlers.Content.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.AuthRole, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
		AppMiddleware:  appMiddleware,
	}
}
