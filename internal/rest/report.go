package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/rest/request"
	"github.com/ojlab/discussions/internal/rest/response"
)

// ReportHandler represent the httphandler for abuse reports and the
// moderation queue
type ReportHandler struct {
	Service domain.ReportUsecase
}

func NewReportHandler(svc domain.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		Service: svc,
	}
}

// Store will file a report against a discussion or one of its replies
func (h *ReportHandler) Store(c *gin.Context) {
	discussionID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	var req request.CreateReport
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	reportID, err := h.Service.Create(ctx, identity, discussionID, req.ReplyID, req.Reason)
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok", "report_id": reportID})
}

// ListOpen will fetch the paginated moderation queue; reviewers and admins only
func (h *ReportHandler) ListOpen(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	result, err := h.Service.ListOpen(ctx, identity, page, pageSize)
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	pagerItems := buildPagerItems(result.Page, result.PageSize, result.Total)
	c.JSON(http.StatusOK, response.NewReportListFromDomain(result, pagerItems))
}

// Resolve moves an open report to resolved or dismissed
func (h *ReportHandler) Resolve(c *gin.Context) {
	reportID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	var req request.ResolveReport
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Resolve(ctx, identity, reportID, domain.ReportStatus(req.Status)); err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
