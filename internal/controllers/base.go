package controllers

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/drstein77/storefront/internal/cart"
	"github.com/drstein77/storefront/internal/middleware"
	"github.com/drstein77/storefront/internal/models"
	"github.com/go-chi/chi"
	chimw "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Storage interface for the loaded storefront
type Storage interface {
	Page() []byte
	Books() models.BooksResponse
	Catalog() models.Catalog
	Ping(context.Context) bool
}

// Log interface for logging
type Log interface {
	Info(string, ...zap.Field)
	Error(string, ...zap.Field)
}

// BaseController struct for handling requests
type BaseController struct {
	storage Storage
	static  fs.FS
	log     Log
}

// NewBaseController creates a new BaseController instance
func NewBaseController(storage Storage, static fs.FS, log Log) *BaseController {
	instance := &BaseController{
		storage: storage,
		static:  static,
		log:     log,
	}

	return instance
}

// Route sets up the routes for the BaseController
func (h *BaseController) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(h.log))
	r.Use(chimw.Recoverer)

	r.Get("/", h.getPage)
	r.Get("/health", h.getHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(h.static))))

	r.Route("/api/v0", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/books", h.getBooks)
		r.Post("/cart", h.postCart)

		r.Group(func(r chi.Router) {
			r.Use(middleware.ArchiveTypeMiddleware("data.json"))
			r.Get("/books/export", h.exportBooks)
		})
	})

	return r
}

func (h *BaseController) getPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(h.storage.Page())
}

func (h *BaseController) getHealth(w http.ResponseWriter, r *http.Request) {
	if !h.storage.Ping(r.Context()) {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("OK"))
}

func (h *BaseController) getBooks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.storage.Books())
}

// exportBooks writes the catalog document; the archive middleware packs it.
func (h *BaseController) exportBooks(w http.ResponseWriter, r *http.Request) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(h.storage.Catalog()); err != nil {
		h.log.Error("Failed to encode catalog", zap.Error(err))
	}
}

func (h *BaseController) postCart(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req models.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid cart request", http.StatusBadRequest)
		return
	}

	ack := cart.AddToCart(req.Title, req.Label)
	h.log.Info("Added to cart", zap.String("title", req.Title), zap.Int("count", ack.Count))

	respondJSON(w, http.StatusOK, models.CartResponse{
		Message: ack.Message,
		Count:   ack.Count,
		Label:   ack.Label,
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
