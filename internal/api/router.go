package api

import (
	"net/http"

	"github.com/PyedPyper01/Afterlife-1/internal/api/handler"
	customMiddleware "github.com/PyedPyper01/Afterlife-1/internal/api/middleware"
	"github.com/PyedPyper01/Afterlife-1/internal/config"
	"github.com/PyedPyper01/Afterlife-1/internal/llm"
	"github.com/PyedPyper01/Afterlife-1/internal/llm/gemini"
	"github.com/PyedPyper01/Afterlife-1/internal/llm/ollama"
	"github.com/PyedPyper01/Afterlife-1/internal/llm/openai"
	"github.com/PyedPyper01/Afterlife-1/internal/payments/stripe"
	"github.com/PyedPyper01/Afterlife-1/internal/repository/mongo"
	"github.com/PyedPyper01/Afterlife-1/internal/repository/redis"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *mongo.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize repositories
	sessionRepo := mongo.NewSessionRepository(db)
	assessmentRepo := mongo.NewAssessmentRepository(db)
	progressRepo := mongo.NewProgressRepository(db)
	guidanceRepo := mongo.NewGuidanceRepository(db)
	supportRepo := mongo.NewSupportRepository(db)
	supplierRepo := mongo.NewSupplierRepository(db)
	messageRepo := mongo.NewMessageRepository(db)
	paymentRepo := mongo.NewPaymentRepository(db)
	memorialRepo := mongo.NewMemorialRepository(db)
	documentRepo := mongo.NewDocumentRepository(db)

	// Initialize LLM Router with providers
	llmRouter := llm.NewRouter(cfg.LLM.DefaultProvider)

	log.Info().Msgf("Initializing LLM providers. Default: %s", cfg.LLM.DefaultProvider)

	if cfg.LLM.Ollama.Host != "" {
		log.Info().Str("host", cfg.LLM.Ollama.Host).Msg("Registering Ollama provider")
		llmRouter.RegisterProvider(ollama.NewProvider(cfg.LLM.Ollama.Host, cfg.LLM.Ollama.DefaultModel))
	}
	if cfg.LLM.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model))
	}
	if cfg.LLM.Gemini.APIKey != "" {
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.LLM.Gemini))
	} else {
		log.Warn().Msg("Gemini API Key is empty, skipping registration")
	}

	// Stripe client
	stripeClient := stripe.NewClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	if !stripeClient.IsConfigured() {
		log.Warn().Msg("Stripe API key is empty, checkout endpoints will reject requests")
	}

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo, assessmentRepo, progressRepo)
	guidanceService := service.NewGuidanceService(guidanceRepo, supportRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	chatService := service.NewChatService(messageRepo, llmRouter)
	paymentService := service.NewPaymentService(paymentRepo, stripeClient)
	memorialService := service.NewMemorialService(memorialRepo)
	documentService := service.NewDocumentService(documentRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	sessionHandler := handler.NewSessionHandler(sessionService)
	guidanceHandler := handler.NewGuidanceHandler(guidanceService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	chatHandler := handler.NewChatHandler(chatService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	memorialHandler := handler.NewMemorialHandler(memorialService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// Rate limiting for the chat endpoint, only when Redis is available
	var rateLimitMiddleware *customMiddleware.RateLimitMiddleware
	if cfg.Redis.Enabled && redisClient != nil {
		rateLimiter := redis.NewRateLimiter(
			redisClient,
			cfg.Redis.RateLimit.RequestsPerMinute,
			cfg.Redis.RateLimit.Burst,
		)
		rateLimitMiddleware = customMiddleware.NewRateLimitMiddleware(rateLimiter)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", healthHandler.Root)
		r.Get("/health", healthHandler.Health)

		// Session lifecycle
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/{id}", sessionHandler.Get)
			r.Put("/{id}", sessionHandler.Update)
		})

		// Assessments
		r.Post("/assessments", sessionHandler.CreateAssessment)
		r.Get("/assessments/{sessionID}", sessionHandler.GetAssessment)

		// Step progress
		r.Post("/step-progress", sessionHandler.SaveProgress)
		r.Get("/step-progress/{sessionID}", sessionHandler.ListProgress)

		// Guidance content and support organisations
		r.Get("/guidance-data", guidanceHandler.ListGuidance)
		r.Get("/support-resources", guidanceHandler.SupportResources)

		// Supplier marketplace
		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/search", supplierHandler.Search)
			r.Get("/{id}", supplierHandler.Get)
		})

		// AI chat
		r.Route("/ai", func(r chi.Router) {
			if rateLimitMiddleware != nil {
				r.Use(rateLimitMiddleware.Limit)
			}
			r.Post("/chat", chatHandler.Chat)
			r.Get("/history/{sessionID}", chatHandler.History)
		})

		// Payments
		r.Route("/payments", func(r chi.Router) {
			r.Post("/checkout/session", paymentHandler.CreateCheckout)
			r.Get("/checkout/status/{sessionID}", paymentHandler.CheckoutStatus)
		})
		r.Post("/webhook/stripe", paymentHandler.Webhook)

		// Memorial pages
		r.Route("/memorials", func(r chi.Router) {
			r.Post("/", memorialHandler.Create)
			r.Get("/", memorialHandler.List)
			r.Get("/{slug}", memorialHandler.GetBySlug)
		})

		// Document vault
		r.Route("/documents", func(r chi.Router) {
			r.Post("/upload", documentHandler.Upload)
			r.Get("/", documentHandler.List)
			r.Get("/{id}", documentHandler.Get)
			r.Delete("/{id}", documentHandler.Delete)
		})
	})

	return r
}
