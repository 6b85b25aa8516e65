package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/config"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/middleware"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Task        TaskHandler
	Worker      WorkerHandler
	Master      MasterHandler
	Leave       LeaveHandler
	Comment     CommentHandler
	FoodRequest FoodRequestHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored files (worker photos, leave documents)
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/check-admin", h.Auth.CheckAdmin)
			r.Post("/subdomain-available", h.Auth.SubdomainAvailable)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.LoginAdmin)
				r.Post("/worker", h.Auth.LoginWorker)
			})
		})

		// Public: RFID readers and kiosk displays have no session
		r.Put("/attendance", h.Attendance.Scan)
		r.Post("/attendance/list", h.Attendance.List)
		r.Post("/attendance/worker", h.Attendance.WorkerList)
		r.Post("/workers/public", h.Worker.PublicList)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.Task.Submit)
				r.Get("/me", h.Task.ListMine)
				r.Get("/totals/me", h.Task.MyTotals)
				r.Post("/custom", h.Task.SubmitCustom)
				r.Get("/custom/me", h.Task.ListCustomMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Task.List)
					r.Get("/range", h.Task.ListRange)
					r.Delete("/reset", h.Task.ResetAll)
					r.Get("/custom", h.Task.ListCustom)
					r.Put("/custom/{id}/review", h.Task.Review)
				})
			})

			r.Route("/workers", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Worker.Create)
				r.Get("/", h.Worker.List)
				r.Get("/{id}", h.Worker.Get)
				r.Put("/{id}", h.Worker.Update)
				r.Delete("/{id}", h.Worker.Delete)
				r.Get("/{id}/activities", h.Worker.Activities)
				r.Delete("/{id}/reset", h.Worker.Reset)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Master.CreateDepartment)
				r.Get("/", h.Master.ListDepartments)
				r.Delete("/{id}", h.Master.DeleteDepartment)
			})

			r.Route("/topics", func(r chi.Router) {
				r.Get("/", h.Master.ListTopics)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateTopic)
					r.Put("/{id}", h.Master.UpdateTopic)
					r.Delete("/{id}", h.Master.DeleteTopic)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/me", h.Leave.ListMine)
				r.Put("/{id}/viewed", h.Leave.MarkViewed)
				r.Put("/viewed", h.Leave.MarkAllViewed)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Get("/range", h.Leave.ListRange)
					r.Get("/pending-count", h.Leave.PendingCount)
					r.Put("/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/comments", func(r chi.Router) {
				r.Post("/", h.Comment.Create)
				r.Get("/me", h.Comment.ListMine)
				r.Post("/{id}/replies", h.Comment.AddReply)
				r.Get("/unread-replies", h.Comment.UnreadReplies)
				r.Put("/replies/read", h.Comment.MarkRepliesRead)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Comment.List)
					r.Put("/read", h.Comment.MarkAllRead)
					r.Get("/new-count", h.Comment.NewCount)
				})
			})

			r.Route("/food-requests", func(r chi.Router) {
				r.Post("/", h.FoodRequest.Submit)
				r.Get("/settings", h.FoodRequest.GetSettings)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/today", h.FoodRequest.ListToday)
					r.Put("/settings", h.FoodRequest.SetEnabled)
				})
			})
		})
	})

	return r
}
