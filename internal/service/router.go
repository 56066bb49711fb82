package service

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/settleflow/settleflow/internal/auth"
	"github.com/settleflow/settleflow/internal/metrics"
	"github.com/settleflow/settleflow/internal/middleware"
	"github.com/settleflow/settleflow/internal/storage"
)

// NewRouter assembles the gin engine with all middleware and routes.
// Group, expense, and settlement routes require a valid session token;
// registration, login, health, and metrics stay open.
func NewRouter(store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(m))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	authSvc := NewAuthService(authenticator, jwtManager)
	groupSvc := NewGroupService(store)
	expenseSvc := NewExpenseService(store)
	settlementSvc := NewSettlementService(store)

	v1 := r.Group("/api/v1")

	v1.POST("/auth/register", authSvc.Register)
	v1.POST("/auth/login", authSvc.Login)

	protected := v1.Group("", middleware.RequireAuth(jwtManager))

	protected.POST("/groups", groupSvc.CreateGroup)
	protected.GET("/groups", groupSvc.ListGroups)
	protected.GET("/groups/:id", groupSvc.GetGroup)
	protected.DELETE("/groups/:id", groupSvc.DeleteGroup)
	protected.POST("/groups/:id/members", groupSvc.AddMembers)
	protected.DELETE("/groups/:id/members/:member", groupSvc.RemoveMember)

	protected.POST("/groups/:id/expenses", expenseSvc.CreateExpense)
	protected.GET("/groups/:id/expenses", expenseSvc.ListExpenses)
	protected.GET("/expenses/:id", expenseSvc.GetExpense)
	protected.DELETE("/expenses/:id", expenseSvc.DeleteExpense)

	protected.POST("/groups/:id/settlements", settlementSvc.RecordSettlement)
	protected.GET("/groups/:id/settlements", settlementSvc.ListSettlements)
	protected.GET("/settlements/:id", settlementSvc.GetSettlement)
	protected.GET("/groups/:id/plan", settlementSvc.GetPlan)

	return r
}
