package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/rest/request"
	"github.com/ojlab/discussions/internal/rest/response"
)

// ListReplies will fetch all replies of a discussion, oldest first
func (h *DiscussionHandler) ListReplies(c *gin.Context) {
	discussionID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	ctx := c.Request.Context()
	replies, err := h.Service.ListReplies(ctx, discussionID)
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, response.NewReplyListFromDomain(replies))
}

// StoreReply will create a reply by given request body
func (h *DiscussionHandler) StoreReply(c *gin.Context) {
	discussionID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	var req request.CreateReply
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
	replyID, err := h.Service.CreateReply(ctx, identity, discussionID, req.Content, req.IsAnonymous)
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok", "reply_id": replyID})
}

// UpdateReply will replace a reply's content; author only
func (h *DiscussionHandler) UpdateReply(c *gin.Context) {
	replyID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, newResponseError(domain.ErrNotFound))
		return
	}

	var req request.UpdateReply
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
	if err := h.Service.UpdateReply(ctx, identity, replyID, req.Content); err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
