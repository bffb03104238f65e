package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Santo1607/AIVoteSystem/controllers"
	"github.com/Santo1607/AIVoteSystem/ledger"
	"github.com/Santo1607/AIVoteSystem/middleware"
	"github.com/Santo1607/AIVoteSystem/store"
)

// Deps carries everything the request layer needs; the store and ledger are
// injected so tests can wire the in-memory adapters.
type Deps struct {
	Store     store.Store
	Ledger    ledger.Ledger
	JWTSecret []byte
	Logger    *slog.Logger
}

func SetupRouter(deps Deps) *gin.Engine {
	router := gin.Default()

	auth := controllers.NewAuthController(deps.Store, deps.JWTSecret, deps.Logger)
	voters := controllers.NewVoterController(deps.Store, deps.Logger)
	candidates := controllers.NewCandidateController(deps.Store, deps.Ledger, deps.Logger)
	votes := controllers.NewVoteController(deps.Store, deps.Ledger, deps.Logger)
	chain := controllers.NewLedgerController(deps.Ledger, deps.Logger)

	api := router.Group("/api")

	// Public routes
	api.POST("/auth/voter/login", auth.LoginVoter)
	api.POST("/auth/admin/login", auth.LoginAdmin)
	api.POST("/auth/logout", auth.Logout)
	api.GET("/candidates", candidates.List)
	api.GET("/candidates/:id", candidates.Get)

	// Routes for any authenticated principal (voter or admin)
	authed := api.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(deps.JWTSecret))
	authed.GET("/me", auth.Me)
	authed.GET("/voters/:voterId", voters.Get)
	authed.POST("/verify-biometrics", votes.VerifyBiometrics)
	authed.POST("/vote", votes.CastVote)
	authed.GET("/blockchain/voters/:voterId/status", chain.VoterStatus)

	// Admin-only record management and election lifecycle
	admin := api.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(deps.JWTSecret), middleware.RequireAdmin())
	admin.GET("/voters", voters.List)
	admin.POST("/voters", voters.Create)
	admin.PUT("/voters/:id", voters.Update)
	admin.DELETE("/voters/:id", voters.Delete)
	admin.POST("/candidates", candidates.Create)
	admin.PUT("/candidates/:id", candidates.Update)
	admin.DELETE("/candidates/:id", candidates.Delete)
	admin.POST("/blockchain/start-voting", chain.StartVoting)
	admin.POST("/blockchain/end-voting", chain.EndVoting)
	admin.POST("/blockchain/release-results", chain.ReleaseResults)
	admin.GET("/blockchain/candidates", chain.Candidates)
	admin.GET("/blockchain/total-votes", chain.TotalVotes)

	return router
}
