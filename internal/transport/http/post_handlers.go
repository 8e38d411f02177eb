package http

import (
	"net/http"

	services "gallery_board/internal/services/post_service"
	"gallery_board/internal/transport/http/dto"
	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListPosts godoc
// @Summary List the posts of a gallery
// @Description Newest first, ten per page. An empty page answers 500.
// @Tags posts
// @Produce json
// @Param gallery_id query int true "Gallery id"
// @Param page query int false "Page, from 1"
// @Success 200 {object} models.Page[models.Post]
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Message "No posts"
// @Router /regions/gallery/posts [get]
func (r *Routers) ListPosts(c echo.Context) error {
	const op = "http.routers.ListPosts"

	p, err := r.input(c, listPostsRules, nil)
	if err != nil {
		return r.fail(c, op, err)
	}

	page, err := r.PostService.ListPosts(c.Request().Context(), dto.ListPostsInput{
		GalleryID: p.asInt64("gallery_id"),
		Page:      p.page(),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, page)
}

// ViewPost godoc
// @Summary View a post
// @Description Every view adds one to the post's view counter.
// @Tags posts
// @Produce json
// @Param gallery_id query int true "Gallery id"
// @Param post_id query int true "Post id"
// @Success 200 {object} models.Post
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Message "No such post"
// @Router /regions/gallery/post [get]
func (r *Routers) ViewPost(c echo.Context) error {
	const op = "http.routers.ViewPost"

	p, err := r.input(c, viewPostRules, nil)
	if err != nil {
		return r.fail(c, op, err)
	}

	post, err := r.PostService.ViewPost(c.Request().Context(), dto.ViewPostInput{
		GalleryID: p.asInt64("gallery_id"),
		PostID:    p.asInt64("post_id"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary Create a post
// @Description Content is sanitized HTML.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.CreatePostInput true "Post"
// @Success 201 {object} response.PostSaved
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message "Unknown gallery"
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery/post [post]
func (r *Routers) CreatePost(c echo.Context) error {
	const op = "http.routers.CreatePost"

	p, err := r.input(c, createPostRules, asOwner(c, "user_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	post, err := r.PostService.CreatePost(c.Request().Context(), dto.CreatePostInput{
		GalleryID: p.asInt64("gallery_id"),
		UserID:    p.asInt64("user_id"),
		UserName:  p.asString("user_name"),
		Title:     p.asString("title"),
		Content:   p.asString("content"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.PostSaved{
		Message: services.MsgPostCreated,
		Post:    post,
	})
}

// UpdatePost godoc
// @Summary Edit a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.UpdatePostInput true "Post"
// @Success 200 {object} response.PostSaved
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery/post [put]
func (r *Routers) UpdatePost(c echo.Context) error {
	const op = "http.routers.UpdatePost"

	p, err := r.input(c, updatePostRules, asOwner(c, "user_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	post, err := r.PostService.UpdatePost(c.Request().Context(), dto.UpdatePostInput{
		GalleryID: p.asInt64("gallery_id"),
		PostID:    p.asInt64("post_id"),
		UserID:    p.asInt64("user_id"),
		Title:     p.asString("title"),
		Content:   p.asString("content"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.PostSaved{
		Message: services.MsgPostUpdated,
		Post:    post,
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.DeletePostInput true "Post"
// @Success 200 {object} response.PostDeleted
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery/post [delete]
func (r *Routers) DeletePost(c echo.Context) error {
	const op = "http.routers.DeletePost"

	p, err := r.input(c, deletePostRules, asOwner(c, "user_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	post, err := r.PostService.DeletePost(c.Request().Context(), dto.DeletePostInput{
		GalleryID: p.asInt64("gallery_id"),
		PostID:    p.asInt64("post_id"),
		UserID:    p.asInt64("user_id"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.PostDeleted{
		Message:     services.MsgPostDeleted,
		DeletedPost: post,
	})
}
