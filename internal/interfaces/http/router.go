package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	inventoryUsecases "github.com/linkdesk-io/linkdesk/internal/application/inventory/usecases"
	invoiceUsecases "github.com/linkdesk-io/linkdesk/internal/application/invoice/usecases"
	userUsecases "github.com/linkdesk-io/linkdesk/internal/application/user/usecases"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/auth"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/config"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/integrations"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/ratelimit"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/realtime"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/adapters"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/routes"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

// Router wires repositories, use cases and handlers together and owns the
// gin engine.
type Router struct {
	engine         *gin.Engine
	hdlrs          *allHandlers
	ucs            *allUseCases
	authMiddleware *middleware.AuthMiddleware
	hub            *realtime.Hub
	jwtSvc         *auth.JWTService
	cfg            *config.Config
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies. The rate
// limiter may be nil when Redis is unavailable; login throttling is then
// skipped.
func NewRouter(
	db *gorm.DB,
	hub *realtime.Hub,
	limiter ratelimit.RateLimiter,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()
	handlers.RegisterValidators()

	repos := newRepositories(db)
	policy := authorization.NewResourcePolicy(repos.assignmentRepo)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var throttle userUsecases.LoginThrottle
	if limiter != nil {
		throttle = adapters.NewLoginThrottleAdapter(limiter)
	}

	ratings := integrations.NewAhrefsClient(cfg.Integrations.AhrefsAPIKey, log)
	copygen := integrations.NewOpenAIClient(cfg.Integrations.OpenAIAPIKey, cfg.Integrations.OpenAIModel, log)

	ucs := newUseCases(repos, policy, hasher, jwtSvc, throttle, ratings, copygen, log)
	hdlrs := newHandlers(ucs, log)

	return &Router{
		engine:         engine,
		hdlrs:          hdlrs,
		ucs:            ucs,
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		hub:            hub,
		jwtSvc:         jwtSvc,
		cfg:            cfg,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	if r.hub != nil {
		api.GET("/ws", realtime.ServeWs(r.hub, r.logger, r.validateWsToken))
	}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.hdlrs.authHandler,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.userHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupOrganizationRoutes(api, &routes.OrganizationRouteConfig{
		OrganizationHandler: r.hdlrs.organizationHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupInventoryRoutes(api, &routes.InventoryRouteConfig{
		InventoryHandler: r.hdlrs.inventoryHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupOrderRoutes(api, &routes.OrderRouteConfig{
		OrderHandler:   r.hdlrs.orderHandler,
		ContentHandler: r.hdlrs.contentHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupInvoiceRoutes(api, &routes.InvoiceRouteConfig{
		InvoiceHandler: r.hdlrs.invoiceHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: r.hdlrs.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupFeedbackRoutes(api, &routes.FeedbackRouteConfig{
		FeedbackHandler: r.hdlrs.feedbackHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: r.hdlrs.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// validateWsToken verifies the websocket auth token and maps its claims to
// an actor.
func (r *Router) validateWsToken(token string) (authorization.Actor, error) {
	claims, err := r.jwtSvc.Verify(token)
	if err != nil {
		return authorization.Actor{}, err
	}
	return authorization.Actor{
		UserID:         claims.UserID,
		Role:           claims.Role,
		OrganizationID: claims.OrganizationID,
	}, nil
}

// RatingRefresher exposes the inventory refresh use case for the scheduler.
func (r *Router) RatingRefresher() *inventoryUsecases.RefreshRatingsUseCase {
	return r.ucs.refreshRatingsUC
}

// OverdueSweeper exposes the invoice sweep use case for the scheduler.
func (r *Router) OverdueSweeper() *invoiceUsecases.OverdueSweepUseCase {
	return r.ucs.overdueSweepUC
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
