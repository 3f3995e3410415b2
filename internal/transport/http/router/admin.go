package router

import (
	"net/http"
	"strconv"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gigboard/internal/core/auth"
	"gigboard/internal/domain"
	mdw "gigboard/internal/transport/http/middleware"
	resp "gigboard/internal/transport/http/response"
)

// NewAdminEngine serves the read-only ops surface on its own port.
// Recruiter tokens do not pass; it wants the dedicated admin role.
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, users domain.UserRepository, jobs domain.JobRepository) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(50, 100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthToken(jwter, "admin"))

	admin.GET("/users", func(c *gin.Context) {
		offset, limit := pageParams(c)
		list, total, err := users.List(offset, limit, c.Query("q"))
		if err != nil {
			resp.Fail(c, err)
			return
		}
		resp.OK(c, gin.H{"total": total, "items": list})
	})

	admin.GET("/jobs", func(c *gin.Context) {
		offset, limit := pageParams(c)
		status := c.Query("status")
		if status != "" && !domain.ValidJobStatus(status) {
			resp.Error(c, http.StatusBadRequest, "Invalid job status")
			return
		}
		list, total, err := jobs.ListPaged(offset, limit, status)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		resp.OK(c, gin.H{"total": total, "items": list})
	})

	return r
}

func pageParams(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
