package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hosteldesk/hosteldesk/docs"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	httpmw "github.com/hosteldesk/hosteldesk/internal/infrastructure/http/middleware"
	"github.com/hosteldesk/hosteldesk/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                 *config.Config
	authHandler         *Auth
	roomRequestHandler  *RoomRequest
	complaintHandler    *Complaint
	announcementHandler *Announcement
	receiptHandler      *Receipt
	latePassHandler     *LatePass
	authMW              echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	roomRequestHandler *RoomRequest,
	complaintHandler *Complaint,
	announcementHandler *Announcement,
	receiptHandler *Receipt,
	latePassHandler *LatePass,
	authMW echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:                 cfg,
		authHandler:         authHandler,
		roomRequestHandler:  roomRequestHandler,
		complaintHandler:    complaintHandler,
		announcementHandler: announcementHandler,
		receiptHandler:      receiptHandler,
		latePassHandler:     latePassHandler,
		authMW:              authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupRoomRequestRoutes(v1)
	rt.setupComplaintRoutes(v1)
	rt.setupAnnouncementRoutes(v1)
	rt.setupReceiptRoutes(v1)
	rt.setupLatePassRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.Refresh)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMW)
	authGroup.POST("/register", rt.authHandler.Register, rt.authMW, adminOnly())
}

// setupRoomRequestRoutes configures room request routes
func (rt *Router) setupRoomRequestRoutes(g *echo.Group) {
	requests := g.Group("/room-requests", rt.authMW)

	requests.POST("", rt.roomRequestHandler.Create)
	requests.GET("/user/:userId", rt.roomRequestHandler.ListByUser)

	// Administrative views and decisions
	requests.GET("", rt.roomRequestHandler.ListAll, adminOnly())
	requests.GET("/admin", rt.roomRequestHandler.ListPending, adminOnly())
	requests.GET("/accepted", rt.roomRequestHandler.ListAccepted, adminOnly())
	requests.PUT("/approval", rt.roomRequestHandler.Decide, adminOnly())
}

// setupComplaintRoutes configures complaint routes
func (rt *Router) setupComplaintRoutes(g *echo.Group) {
	complaints := g.Group("/complaints", rt.authMW)

	complaints.POST("", rt.complaintHandler.Create)
	complaints.GET("/user/:userId", rt.complaintHandler.ListByUser)
	complaints.GET("", rt.complaintHandler.ListAll, adminOnly())
	complaints.PUT("/:id/status", rt.complaintHandler.UpdateStatus, adminOnly())
}

// setupAnnouncementRoutes configures announcement routes
func (rt *Router) setupAnnouncementRoutes(g *echo.Group) {
	announcements := g.Group("/announcements", rt.authMW)

	announcements.GET("", rt.announcementHandler.List)
	announcements.POST("", rt.announcementHandler.Create, adminOnly())
}

// setupReceiptRoutes configures payment receipt routes
func (rt *Router) setupReceiptRoutes(g *echo.Group) {
	receipts := g.Group("/receipts", rt.authMW)

	receipts.POST("", rt.receiptHandler.Create)
	receipts.GET("/user/:userId", rt.receiptHandler.ListByUser)
	receipts.GET("", rt.receiptHandler.ListAll, adminOnly())
	receipts.PUT("/:id/status", rt.receiptHandler.UpdateStatus, adminOnly())
}

// setupLatePassRoutes configures late pass routes
func (rt *Router) setupLatePassRoutes(g *echo.Group) {
	latePasses := g.Group("/late-passes", rt.authMW)

	latePasses.POST("", rt.latePassHandler.Create)
	latePasses.GET("/user/:userId", rt.latePassHandler.ListByUser)
	latePasses.GET("", rt.latePassHandler.ListAll, adminOnly())
	latePasses.PUT("/:id/status", rt.latePassHandler.UpdateStatus, adminOnly())
}

func adminOnly() echo.MiddlewareFunc {
	return httpmw.RequireRole(entities.RoleAdmin)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
