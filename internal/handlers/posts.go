package handlers

import (
	"net/http"

	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

type createPostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// Pointers distinguish "field absent" from "field set to empty".
type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// @Summary      List posts
// @Description  One page of posts, newest first, with author summaries embedded.
// @Tags         posts
// @Produce      json
// @Param        page   query  int  false  "Page number (1-based)"     default(1)
// @Param        limit  query  int  false  "Page size"                 default(9)
// @Success      200    {array}  models.Post
// @Router       /posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Posts.List(c.Request.Context(), pageQuery(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  models.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	post, err := h.services.Posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "title, content"
// @Success      201   {object}  models.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /posts [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input createPostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	post, err := h.services.Posts.Create(c.Request.Context(), service.CreatePostInput{
		Title:   input.Title,
		Content: input.Content,
	}, principal)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// @Summary      Update a post
// @Description  Partial update; only the owner or an admin may edit.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true   "Post id"
// @Param        body  body      updatePostRequest  true   "title and/or content"
// @Success      200   {object}  models.Post
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input updatePostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	post, err := h.services.Posts.Update(c.Request.Context(), c.Param("id"), service.UpdatePostInput{
		Title:   input.Title,
		Content: input.Content,
	}, principal)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePost(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.services.Posts.Delete(c.Request.Context(), c.Param("id"), principal); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
