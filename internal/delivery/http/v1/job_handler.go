package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r gin.IRoutes, write gin.HandlerFunc, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	r.GET("/jobs", handler.List)
	r.POST("/jobs", write, handler.Create)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  All jobs, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.Job
// @Success      304  "Not modified"
// @Failure      500  {object}  response.InternalErrorBody
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Post a new job. createdAt defaults to the server time.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobDraft  true  "Job JSON"
// @Success      201  {object}  domain.CreateResult
// @Failure      400  {object}  response.ErrorBody
// @Failure      429  {object}  response.ErrorBody
// @Failure      500  {object}  response.InternalErrorBody
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var draft domain.JobDraft
	if !bindJSON(c, &draft) {
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), &draft)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, domain.CreateResult{
		Success:   true,
		ID:        job.ID,
		CreatedAt: job.CreatedAt,
	})
}
