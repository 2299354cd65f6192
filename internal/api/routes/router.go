package routes

import (
	"net/http"

	"github.com/sTrAy74/swi-web/internal/api/handlers"
	"github.com/sTrAy74/swi-web/internal/api/middleware"
	"github.com/sTrAy74/swi-web/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	providerHandler     *handlers.ProviderHandler
	authHandler         *handlers.AuthHandler
	bookingHandler      *handlers.BookingHandler
	profileHandler      *handlers.ProfileHandler
	calculatorHandler   *handlers.CalculatorHandler
	searchStreamHandler *handlers.SearchStreamHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	providerHandler *handlers.ProviderHandler,
	authHandler *handlers.AuthHandler,
	bookingHandler *handlers.BookingHandler,
	profileHandler *handlers.ProfileHandler,
	calculatorHandler *handlers.CalculatorHandler,
	searchStreamHandler *handlers.SearchStreamHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                 http.NewServeMux(),
		providerHandler:     providerHandler,
		authHandler:         authHandler,
		bookingHandler:      bookingHandler,
		profileHandler:      profileHandler,
		calculatorHandler:   calculatorHandler,
		searchStreamHandler: searchStreamHandler,
		cacheMiddleware:     cacheMiddleware,
		metrics:             metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Provider discovery endpoints
	r.mux.HandleFunc("GET /api/providers", r.providerHandler.ListProviders)
	r.mux.HandleFunc("GET /api/providers/{id}", r.providerHandler.GetProvider)

	// Live search stream endpoints
	if r.searchStreamHandler != nil {
		r.mux.HandleFunc("GET /api/search/stream", r.searchStreamHandler.Stream)
		r.mux.HandleFunc("POST /api/search/sessions/{id}", r.searchStreamHandler.Update)
	}

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/register/customer", r.authHandler.RegisterCustomer)
	r.mux.HandleFunc("POST /api/auth/register/provider", r.authHandler.RegisterProvider)

	// Booking and review endpoints
	r.mux.HandleFunc("POST /api/bookings", r.bookingHandler.CreateBooking)
	r.mux.HandleFunc("GET /api/bookings", r.bookingHandler.MyBookings)
	r.mux.HandleFunc("POST /api/reviews", r.bookingHandler.CreateReview)

	// Profile endpoints
	r.mux.HandleFunc("GET /api/profile", r.profileHandler.GetProfile)
	r.mux.HandleFunc("PATCH /api/profile", r.profileHandler.UpdateProfile)

	// Savings calculator endpoint
	r.mux.HandleFunc("POST /api/calculator/savings", r.calculatorHandler.ProjectSavings)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
