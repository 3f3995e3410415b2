package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigboard/internal/service"
	resp "gigboard/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.auth.Register(in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, out)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.auth.Login(in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}
