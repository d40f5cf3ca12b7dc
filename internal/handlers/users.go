package handlers

import (
	"net/http"

	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

// Pointers distinguish "field absent" from "field set to empty".
// Email and role are immutable through this endpoint.
type updateUserRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	Password  *string `json:"password"`
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page   query  int  false  "Page number (1-based)"  default(1)
// @Param        limit  query  int  false  "Page size"              default(9)
// @Success      200    {array}  models.User
// @Router       /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context(), pageQuery(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get a user
// @Description  User detail with their posts embedded.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  models.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	user, err := h.services.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Create a user
// @Description  Same as /auth/register but echoes only the created account.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "name, email, password"
// @Success      201   {object}  models.User
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	_, user, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Update a user
// @Description  Partial profile update; only the user themself or an admin.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "name, avatarUrl and/or password"
// @Success      200   {object}  models.User
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input updateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Users.Update(c.Request.Context(), c.Param("id"), service.UpdateUserInput{
		Name:      input.Name,
		AvatarURL: input.AvatarURL,
		Password:  input.Password,
	}, principal)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary      Delete a user
// @Description  Removes the account and, via cascade, every post it owns.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.services.Users.Delete(c.Request.Context(), c.Param("id"), principal); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
