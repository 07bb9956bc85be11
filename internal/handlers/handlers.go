package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dhanriti/tankflow/docs"
	authhandlers "github.com/dhanriti/tankflow/internal/handlers/auth"
	canvashandlers "github.com/dhanriti/tankflow/internal/handlers/canvas"
	flowhandlers "github.com/dhanriti/tankflow/internal/handlers/flow"
	funnelhandlers "github.com/dhanriti/tankflow/internal/handlers/funnel"
	tankhandlers "github.com/dhanriti/tankflow/internal/handlers/tank"
	"github.com/dhanriti/tankflow/internal/service"
	"github.com/dhanriti/tankflow/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CanvasHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TankHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type FunnelHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type FlowHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Trigger(w http.ResponseWriter, r *http.Request)
	Sweep(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	CanvasHandler CanvasHandler
	TankHandler   TankHandler
	FunnelHandler FunnelHandler
	FlowHandler   FlowHandler

	authMW func(http.Handler) http.Handler
}

func New(s *service.Services, sweeper flowhandlers.Sweeper, cronKey string) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		CanvasHandler: canvashandlers.New(s.CanvasService),
		TankHandler:   tankhandlers.New(s.TankService),
		FunnelHandler: funnelhandlers.New(s.FunnelService),
		FlowHandler:   flowhandlers.New(s.FlowService, sweeper, cronKey),
		authMW:        auth.AuthMiddleware(s.JWTService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})
		r.Post("/cron/sweep", h.FlowHandler.Sweep)

		r.Group(func(r chi.Router) {
			r.Use(h.authMW)
			r.Route("/canvases", func(r chi.Router) {
				r.Post("/", h.CanvasHandler.Create)
				r.Get("/", h.CanvasHandler.List)
				r.Route("/{canvasID}", func(r chi.Router) {
					r.Get("/", h.CanvasHandler.Get)
					r.Put("/", h.CanvasHandler.Update)
					r.Delete("/", h.CanvasHandler.Delete)

					r.Route("/tanks", func(r chi.Router) {
						r.Post("/", h.TankHandler.Create)
						r.Get("/", h.TankHandler.List)
						r.Get("/{tankID}", h.TankHandler.Get)
						r.Put("/{tankID}", h.TankHandler.Update)
						r.Delete("/{tankID}", h.TankHandler.Delete)
					})
					r.Route("/funnels", func(r chi.Router) {
						r.Post("/", h.FunnelHandler.Create)
						r.Get("/", h.FunnelHandler.List)
						r.Get("/{funnelID}", h.FunnelHandler.Get)
						r.Delete("/{funnelID}", h.FunnelHandler.Delete)
					})
					r.Route("/flows", func(r chi.Router) {
						r.Get("/", h.FlowHandler.List)
						r.Post("/trigger", h.FlowHandler.Trigger)
						r.Get("/{flowID}", h.FlowHandler.Get)
					})
				})
			})
		})
	})

	return r
}
