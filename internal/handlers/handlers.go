package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/drivahub/drivahub/docs"
	authhandlers "github.com/drivahub/drivahub/internal/handlers/auth"
	dashboardhandlers "github.com/drivahub/drivahub/internal/handlers/dashboard"
	loadshandlers "github.com/drivahub/drivahub/internal/handlers/loads"
	profilehandlers "github.com/drivahub/drivahub/internal/handlers/profile"
	reportshandlers "github.com/drivahub/drivahub/internal/handlers/reports"
	statementshandlers "github.com/drivahub/drivahub/internal/handlers/statements"
	uploadshandlers "github.com/drivahub/drivahub/internal/handlers/uploads"
	"github.com/drivahub/drivahub/internal/metrics"
	"github.com/drivahub/drivahub/internal/service"
	"github.com/drivahub/drivahub/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type StatementHandler interface {
	AddStatement(w http.ResponseWriter, r *http.Request)
	GetStatements(w http.ResponseWriter, r *http.Request)
}

type LoadHandler interface {
	AddLoad(w http.ResponseWriter, r *http.Request)
	GetLoads(w http.ResponseWriter, r *http.Request)
}

type UploadHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	ProfileHandler   ProfileHandler
	StatementHandler StatementHandler
	LoadHandler      LoadHandler
	UploadHandler    UploadHandler
	DashboardHandler DashboardHandler
	ReportHandler    ReportHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		ProfileHandler:   profilehandlers.New(s.ProfileService),
		StatementHandler: statementshandlers.New(s.StatementService),
		LoadHandler:      loadshandlers.New(s.LoadService),
		UploadHandler:    uploadshandlers.New(s.IngestService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		ReportHandler:    reportshandlers.New(s.ReportService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.ProfileHandler.GetProfile)
				r.Put("/", h.ProfileHandler.UpdateProfile)
			})
			r.Route("/statements", func(r chi.Router) {
				r.Post("/", h.StatementHandler.AddStatement)
				r.Get("/", h.StatementHandler.GetStatements)
				r.Post("/upload", h.UploadHandler.Upload)
				r.Post("/import", h.UploadHandler.Import)
				r.Get("/export", h.ReportHandler.Export)
			})
			r.Route("/loads", func(r chi.Router) {
				r.Post("/", h.LoadHandler.AddLoad)
				r.Get("/", h.LoadHandler.GetLoads)
			})
			r.Get("/dashboard", h.DashboardHandler.GetStats)
		})
	})

	return r
}
