package router

import (
	"net/http"

	_ "petclinic/docs"
	mem "petclinic/internal/adapters/storage/memory"
	"petclinic/internal/domain/clinic"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => no loguea

	// Opcional: si viene, se usa tal cual. Si no, se arma sobre repos in-memory.
	Service *clinic.Service

	// nil => registry propio por router
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New("petclinic")
	}
	svc := opts.Service
	if svc == nil {
		svc = clinic.NewService(mem.NewRepositories())
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	clinic.RegisterRoutes(r, svc)

	return r
}
