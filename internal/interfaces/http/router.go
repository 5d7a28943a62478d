package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appactivity "github.com/opsdesk-inc/opsdesk/internal/application/activity"
	appauth "github.com/opsdesk-inc/opsdesk/internal/application/auth"
	appbilling "github.com/opsdesk-inc/opsdesk/internal/application/billing"
	appclient "github.com/opsdesk-inc/opsdesk/internal/application/client"
	appservice "github.com/opsdesk-inc/opsdesk/internal/application/service"
	apptemplate "github.com/opsdesk-inc/opsdesk/internal/application/template"
	appticket "github.com/opsdesk-inc/opsdesk/internal/application/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/auth"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/config"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/email"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/pdfgen"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/repository"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/services/markdown"
)

// Router wires repositories, application services, handlers and middleware
// into a single gin engine.
type Router struct {
	engine *gin.Engine

	authHandler     *handlers.AuthHandler
	clientHandler   *handlers.ClientHandler
	serviceHandler  *handlers.ServiceHandler
	ticketHandler   *handlers.TicketHandler
	quoteHandler    *handlers.QuoteHandler
	invoiceHandler  *handlers.InvoiceHandler
	billingHandler  *handlers.BillingHandler
	templateHandler *handlers.TemplateHandler
	activityHandler *handlers.ActivityHandler
	catalogHandler  *handlers.CatalogHandler

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter creates the HTTP router with all dependencies. redisClient may be
// nil, in which case rate limiting is disabled.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	engine := gin.New()

	clientRepo := repository.NewClientRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	allocationRepo := repository.NewAllocationRepository(gormDB)
	metricRepo := repository.NewMetricRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	quoteRepo := repository.NewQuoteRepository(gormDB)
	invoiceRepo := repository.NewInvoiceRepository(gormDB)
	templateRepo := repository.NewTemplateRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	prospectRepo := repository.NewProspectRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	pdfGenerator := pdfgen.NewQuotePDFGenerator(cfg.Company)
	markdownService := markdown.NewMarkdownService()

	authService := appauth.NewService(cfg.Auth, hasher, jwtSvc, log)
	clientService := appclient.NewService(clientRepo, serviceRepo, ticketRepo, log)
	serviceService := appservice.NewService(serviceRepo, allocationRepo, metricRepo, clientRepo, prospectRepo, txManager, log)
	ticketService := appticket.NewService(ticketRepo, clientRepo, activityRepo, log)
	quoteService := appbilling.NewQuoteService(quoteRepo, clientRepo, activityRepo, pdfGenerator, emailService, txManager, log)
	invoiceService := appbilling.NewInvoiceService(invoiceRepo, clientRepo, log)
	statsService := appbilling.NewStatsService(quoteRepo, invoiceRepo, log)
	templateService := apptemplate.NewService(templateRepo, activityRepo, markdownService, log)
	activityService := appactivity.NewService(activityRepo, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, 100, 1*time.Minute)
	}

	return &Router{
		engine:          engine,
		authHandler:     handlers.NewAuthHandler(authService),
		clientHandler:   handlers.NewClientHandler(clientService),
		serviceHandler:  handlers.NewServiceHandler(serviceService),
		ticketHandler:   handlers.NewTicketHandler(ticketService),
		quoteHandler:    handlers.NewQuoteHandler(quoteService),
		invoiceHandler:  handlers.NewInvoiceHandler(invoiceService),
		billingHandler:  handlers.NewBillingHandler(statsService),
		templateHandler: handlers.NewTemplateHandler(templateService),
		activityHandler: handlers.NewActivityHandler(activityService),
		catalogHandler:  handlers.NewCatalogHandler(),
		authMiddleware:  middleware.NewAuthMiddleware(jwtSvc, log),
		rateLimiter:     rateLimiter,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS([]string{"*"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.engine.Group("/api/auth")
	{
		if r.rateLimiter != nil {
			authGroup.POST("/login", r.rateLimiter.Limit(), r.authHandler.Login)
		} else {
			authGroup.POST("/login", r.authHandler.Login)
		}
		authGroup.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}

	api := r.engine.Group("/api")
	api.Use(r.authMiddleware.RequireAuth())

	clients := api.Group("/clients")
	{
		clients.POST("", r.clientHandler.CreateClient)
		clients.GET("", r.clientHandler.ListClients)
		clients.GET("/:id", r.clientHandler.GetClient)
		clients.PUT("/:id", r.clientHandler.UpdateClient)
		clients.DELETE("/:id", r.clientHandler.DeleteClient)
		clients.GET("/:id/services", r.clientHandler.GetClientServices)
	}

	services := api.Group("/services")
	{
		services.POST("", r.serviceHandler.CreateService)
		services.GET("", r.serviceHandler.ListServices)
		services.GET("/:id", r.serviceHandler.GetService)
		services.PUT("/:id", r.serviceHandler.UpdateService)
		services.DELETE("/:id", r.serviceHandler.DeleteService)
		services.GET("/:id/resources", r.serviceHandler.GetResourceReport)
		services.POST("/:id/resources", r.serviceHandler.RecordAllocation)
		services.GET("/:id/metrics", r.serviceHandler.ListMetrics)
		services.POST("/:id/metrics", r.serviceHandler.RecordMetric)
	}

	tickets := api.Group("/tickets")
	{
		tickets.POST("", r.ticketHandler.CreateTicket)
		tickets.GET("", r.ticketHandler.ListTickets)
		tickets.GET("/:id", r.ticketHandler.GetTicket)
		tickets.PUT("/:id", r.ticketHandler.UpdateTicket)
		tickets.DELETE("/:id", r.ticketHandler.DeleteTicket)
	}

	quotes := api.Group("/quotes")
	{
		quotes.POST("", r.quoteHandler.CreateQuote)
		quotes.GET("", r.quoteHandler.ListQuotes)
		quotes.GET("/:number", r.quoteHandler.GetQuote)
		quotes.PUT("/:number", r.quoteHandler.UpdateQuote)
		quotes.DELETE("/:number", r.quoteHandler.DeleteQuote)
		quotes.PATCH("/:number/status", r.quoteHandler.ChangeStatus)
		quotes.GET("/:number/pdf", r.quoteHandler.DownloadPDF)
		quotes.POST("/:number/send", r.quoteHandler.SendQuote)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", r.invoiceHandler.CreateInvoice)
		invoices.GET("", r.invoiceHandler.ListInvoices)
		invoices.GET("/:id", r.invoiceHandler.GetInvoice)
	}

	templates := api.Group("/templates")
	{
		templates.POST("", r.templateHandler.CreateTemplate)
		templates.GET("", r.templateHandler.ListTemplates)
		templates.GET("/:id", r.templateHandler.GetTemplate)
		templates.PUT("/:id", r.templateHandler.UpdateTemplate)
		templates.DELETE("/:id", r.templateHandler.DeleteTemplate)
		templates.GET("/:id/preview", r.templateHandler.PreviewTemplate)
	}

	api.GET("/billing/stats", r.billingHandler.GetStats)
	api.GET("/activities", r.activityHandler.ListActivities)
	api.GET("/catalog", r.catalogHandler.ListProducts)
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
