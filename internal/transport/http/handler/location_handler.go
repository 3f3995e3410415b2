package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigboard/internal/service"
	mdw "gigboard/internal/transport/http/middleware"
	resp "gigboard/internal/transport/http/response"
)

const defaultRadiusKm = 10

type LocationHandler struct {
	locations *service.LocationService
}

func NewLocationHandler(locations *service.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func (h *LocationHandler) NearbyJobs(c *gin.Context) {
	var lat, lng *float64
	if v := c.Query("lat"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			lat = &n
		}
	}
	if v := c.Query("lng"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			lng = &n
		}
	}
	radius := float64(defaultRadiusKm)
	if v := c.Query("radius"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			radius = n
		}
	}

	out, err := h.locations.NearbyJobs(c.Request.Context(), lat, lng, radius)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in service.UpdateLocationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	loc, err := h.locations.UpdateLocation(caller, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message":  "Location updated successfully",
		"location": loc,
	})
}
