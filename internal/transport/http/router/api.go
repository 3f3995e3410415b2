package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gigboard/internal/core/auth"
	"gigboard/internal/service"
	"gigboard/internal/transport/http/handler"
	mdw "gigboard/internal/transport/http/middleware"
)

type Services struct {
	Auth      *service.AuthService
	Jobs      *service.JobService
	Locations *service.LocationService
	Users     *service.UserService
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, svc Services) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handler.NewAuthHandler(svc.Auth)
	jobH := handler.NewJobHandler(svc.Jobs)
	locH := handler.NewLocationHandler(svc.Locations)
	userH := handler.NewUserHandler(svc.Users)

	// role checks live in the services, next to the ownership rules
	authed := mdw.AuthToken(jwter, "")

	authGrp := r.Group("/api/auth")
	{
		authGrp.POST("/register", authH.Register)
		authGrp.POST("/login", authH.Login)
	}

	jobs := r.Group("/api/jobs")
	{
		jobs.GET("", jobH.List)
		jobs.GET("/user-jobs", authed, jobH.UserJobs)
		jobs.GET("/applied", authed, jobH.Applied)
		jobs.GET("/:id", jobH.Get)
		jobs.POST("", authed, jobH.Create)
		jobs.PUT("/:id", authed, jobH.Update)
		jobs.DELETE("/:id", authed, jobH.Delete)
		jobs.POST("/:id/apply", authed, jobH.Apply)
		jobs.PUT("/:id/applications/:applicantId", authed, jobH.SetApplicationStatus)
	}

	locations := r.Group("/api/locations")
	{
		locations.GET("/nearby-jobs", locH.NearbyJobs)
		locations.PUT("/update-location", authed, locH.UpdateLocation)
	}

	users := r.Group("/api/users")
	{
		users.GET("/profile", authed, userH.Profile)
		users.PUT("/profile", authed, userH.UpdateProfile)
		users.PUT("/available", authed, userH.ToggleAvailability)
		users.GET("/available", userH.AvailableWorkers)
		users.POST("/:id/reviews", authed, userH.AddReview)
	}

	return r
}
