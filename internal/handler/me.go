package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/bookshelf/internal/auth"
)

type CurrentUser struct {
	Login         string            `json:"login"`
	Role          auth.Role         `json:"role"`
	Authenticated bool              `json:"authenticated"`
	Capabilities  []auth.Capability `json:"capabilities"`
}

type CurrentUserResponse struct {
	Data CurrentUser `json:"data"`
}

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/me", h.Me)
}

// Me godoc
// @Summary      Current user
// @Description  The acting user and capabilities; anonymous when no token is sent
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  CurrentUserResponse
// @Failure      401  {object}  validation.ErrorResponse   "Invalid token"
// @Router       /me [get]
func (h *MeHandler) Me(c *gin.Context) {
	user := currentUser(c)

	c.JSON(http.StatusOK, CurrentUserResponse{Data: CurrentUser{
		Login:         user.Login,
		Role:          user.Role,
		Authenticated: !user.IsAnonymous(),
		Capabilities:  user.Capabilities(),
	}})
}
