// Package api implements the HTTP layer: routing, request parsing, error
// mapping and the embedded API documentation.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/jhoffmann/masterblog/internal/cache"
	"github.com/jhoffmann/masterblog/internal/config"
	"github.com/jhoffmann/masterblog/internal/routes"
	"github.com/jhoffmann/masterblog/internal/store"
)

type Server struct {
	store *store.PostStore
	cfg   *config.Config
	log   zerolog.Logger

	etags *cache.Cache[string, string]
}

func New(posts *store.PostStore, cfg *config.Config, log zerolog.Logger) *Server {
	return &Server{
		store: posts,
		cfg:   cfg,
		log:   log,
		etags: cache.NewCache[string, string](),
	}
}

// Router builds the chi router with the middleware chain: request ids,
// request logging, panic recovery, CORS for all routes and per-IP rate
// limiting. Post creation carries an additional, tighter limit.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	rl := s.cfg.API.RateLimit
	if rl.Requests > 0 {
		r.Use(httprate.Limit(
			rl.Requests,
			time.Duration(rl.WindowMinutes)*time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
	}

	r.Get(routes.APIPosts, s.handleList)
	r.Get(routes.APIPostsSearch, s.handleSearch)
	r.Put(routes.APIPostByID, s.handleUpdate)
	r.Delete(routes.APIPostByID, s.handleDelete)

	create := r.With()
	if rl.CreatePerMinute > 0 {
		create = r.With(httprate.Limit(
			rl.CreatePerMinute,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
	}
	create.Post(routes.APIPosts, s.handleCreate)

	r.Get(routes.APIDocs, s.handleDocs)
	r.Get(routes.APIDocsOpenAPI, s.handleOpenAPI)

	return r
}
