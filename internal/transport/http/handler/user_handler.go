package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigboard/internal/service"
	mdw "gigboard/internal/transport/http/middleware"
	resp "gigboard/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Profile(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	out, err := h.users.Profile(caller)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in service.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.users.UpdateProfile(caller, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *UserHandler) ToggleAvailability(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	available, err := h.users.ToggleAvailability(caller)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"availableNow": available})
}

func (h *UserHandler) AvailableWorkers(c *gin.Context) {
	out, err := h.users.AvailableWorkers()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *UserHandler) AddReview(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in service.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.users.AddReview(caller, c.Param("id"), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}
