package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigboard/internal/domain"
	"gigboard/internal/service"
	mdw "gigboard/internal/transport/http/middleware"
	resp "gigboard/internal/transport/http/response"
)

type JobHandler struct {
	jobs *service.JobService
}

func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List handles GET /api/jobs with optional exact-match / range filters.
func (h *JobHandler) List(c *gin.Context) {
	f := domain.JobFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
	if v := c.Query("minWage"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinWage = &n
		}
	}
	if v := c.Query("maxWage"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxWage = &n
		}
	}
	if v := c.Query("isUrgent"); v != "" {
		b := v == "true"
		f.IsUrgent = &b
	}
	if v := c.Query("isVolunteer"); v != "" {
		b := v == "true"
		f.IsVolunteer = &b
	}

	out, err := h.jobs.List(c.Request.Context(), f)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *JobHandler) Get(c *gin.Context) {
	out, err := h.jobs.Get(c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *JobHandler) Create(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in service.CreateJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.jobs.Create(c.Request.Context(), caller, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, out)
}

func (h *JobHandler) Update(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in service.UpdateJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.jobs.Update(c.Request.Context(), caller, c.Param("id"), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *JobHandler) Delete(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, resp.Message{Message: "Job removed"})
}

func (h *JobHandler) Apply(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	out, err := h.jobs.Apply(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *JobHandler) SetApplicationStatus(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.jobs.SetApplicationStatus(c.Request.Context(), caller, c.Param("id"), c.Param("applicantId"), in.Status)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

// UserJobs handles GET /api/jobs/user-jobs for recruiters.
func (h *JobHandler) UserJobs(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	out, err := h.jobs.ListByRecruiter(caller)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

// Applied handles GET /api/jobs/applied for workers.
func (h *JobHandler) Applied(c *gin.Context) {
	caller, ok := mdw.CallerFrom(c)
	if !ok {
		resp.Error(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	out, err := h.jobs.ListAppliedBy(caller)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}
