package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/rest/middleware"
	"github.com/ojlab/discussions/internal/rest/request"
	"github.com/ojlab/discussions/internal/rest/response"
)

// DiscussionHandler represent the httphandler for discussions and replies
type DiscussionHandler struct {
	Service domain.DiscussionUsecase
}

func NewDiscussionHandler(svc domain.DiscussionUsecase) *DiscussionHandler {
	return &DiscussionHandler{
		Service: svc,
	}
}

// identityFromContext reads the identity the auth middleware stored.
func identityFromContext(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(middleware.IdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List will fetch discussions for a problem based on given params
func (h *DiscussionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	params := domain.DiscussionListParams{
		Page:     page,
		PageSize: pageSize,
		SortBy:   c.Query("sort_by"),
		Order:    c.Query("order"),
	}

	ctx := c.Request.Context()
	result, err := h.Service.List(ctx, c.Param("alias"), params)
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, response.NewDiscussionListFromDomain(result))
}

// Store will create a discussion by given request body
func (h *DiscussionHandler) Store(c *gin.Context) {
	var req request.CreateDiscussion
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
	discussionID, err := h.Service.Create(ctx, identity, req.ProblemAlias, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok", "discussion_id": discussionID})
}

// Update will replace a discussion's content; owner only
func (h *DiscussionHandler) Update(c *gin.Context) {
	discussionID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	var req request.UpdateDiscussion
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
	if err := h.Service.Update(ctx, identity, discussionID, req.Content); err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete removes a discussion, or one of its replies when the reply_id query
// param is given
func (h *DiscussionHandler) Delete(c *gin.Context) {
	discussionID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	var replyID int64
	if raw := c.Query("reply_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, newResponseError(domain.ErrInvalidParameter))
			return
		}
		replyID = parsed
	}

	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, identity, discussionID, replyID); err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Vote casts an upvote or downvote with toggle semantics and returns the
// freshly recomputed counters
func (h *DiscussionHandler) Vote(c *gin.Context) {
	discussionID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	var req request.Vote
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
	upvotes, downvotes, err := h.Service.Vote(ctx, identity, discussionID, domain.VoteType(req.VoteType))
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "upvotes": upvotes, "downvotes": downvotes})
}
