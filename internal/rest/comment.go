package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/rest/request"
	"github.com/Guyuepp/go-realtime-comments/internal/rest/response"
)

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// FetchComments lists top-level comments, newest first, each with its direct replies.
func (h *CommentHandler) FetchComments(c *gin.Context) {
	num := DefaultPageNum
	if numS := c.Query("num"); numS != "" {
		n, err := strconv.Atoi(numS)
		if err != nil || n < PageMinNum || n > PageMaxNum {
			logrus.Warnf("invalid param 'num' %q, using default", numS)
		} else {
			num = n
		}
	}
	cursor := c.Query("cursor")

	comments, nextCursor, err := h.Service.ListTopLevel(c.Request.Context(), cursor, int64(num))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

// GetByID will get a comment with its replies by given id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	cm, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(cm))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	cm, err := h.Service.Create(c.Request.Context(), uid, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(cm))
}

func (h *CommentHandler) Reply(c *gin.Context) {
	parentID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	reply, err := h.Service.Reply(c.Request.Context(), uid, parentID, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(reply))
}

// Like toggles the like of the current user
func (h *CommentHandler) Like(c *gin.Context) {
	h.toggle(c, h.Service.ToggleLike)
}

// Dislike toggles the dislike of the current user. Also served as /unlike.
func (h *CommentHandler) Dislike(c *gin.Context) {
	h.toggle(c, h.Service.ToggleDislike)
}

func (h *CommentHandler) toggle(c *gin.Context, fn func(ctx context.Context, commentID, userID int64) (*domain.Comment, error)) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	cm, err := fn(c.Request.Context(), id, uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(cm))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id, uid); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
