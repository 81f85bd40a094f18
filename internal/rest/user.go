package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/rest/response"
)

// UserHandler serves profiles and the follow graph
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	h.writeUser(c, uid)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.writeUser(c, id)
}

func (h *UserHandler) writeUser(c *gin.Context, id int64) {
	u, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

func (h *UserHandler) Followers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	us, err := h.Service.ListFollowers(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(us))
}

func (h *UserHandler) Following(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	us, err := h.Service.ListFollowing(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(us))
}

// Follow returns the current user with the updated follow sets.
func (h *UserHandler) Follow(c *gin.Context) {
	target, ok := paramID(c, "targetId")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	u, err := h.Service.Follow(c.Request.Context(), uid, target)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	target, ok := paramID(c, "targetId")
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	u, err := h.Service.Unfollow(c.Request.Context(), uid, target)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}
