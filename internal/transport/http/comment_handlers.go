package http

import (
	"net/http"

	services "gallery_board/internal/services/comment_service"
	"gallery_board/internal/transport/http/dto"
	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListComments godoc
// @Summary List the comments of a post
// @Description A post without comments answers 200 with comment_status "0".
// @Tags comments
// @Produce json
// @Param post_id query int true "Post id"
// @Success 200 {array} models.Comment
// @Success 200 {object} response.NoComments
// @Failure 422 {object} response.Error
// @Router /regions/gallery/post/comments [get]
func (r *Routers) ListComments(c echo.Context) error {
	const op = "http.routers.ListComments"

	p, err := r.input(c, listCommentsRules, nil)
	if err != nil {
		return r.fail(c, op, err)
	}

	comments, err := r.CommentService.ListComments(c.Request().Context(), dto.ListCommentsInput{
		PostID: p.asInt64("post_id"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	if len(comments) == 0 {
		return c.JSON(http.StatusOK, response.NoComments{
			Message:       services.MsgNoComments,
			CommentStatus: "0",
		})
	}

	return c.JSON(http.StatusOK, comments)
}

// Search godoc
// @Summary Search comments
// @Description Lists the comments of a post, same as the comment view.
// @Tags comments
// @Produce json
// @Param post_id query int true "Post id"
// @Success 200 {array} models.Comment
// @Failure 422 {object} response.Error
// @Router /search [get]
func (r *Routers) Search(c echo.Context) error {
	return r.ListComments(c)
}

// CreateComment godoc
// @Summary Comment on a post
// @Description The password is required again to edit or delete the comment.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentInput true "Comment"
// @Success 201 {object} response.CommentSaved
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message "Unknown post or parent comment"
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery/post/comments [post]
func (r *Routers) CreateComment(c echo.Context) error {
	const op = "http.routers.CreateComment"

	p, err := r.input(c, createCommentRules, asOwner(c, "user_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	comment, err := r.CommentService.CreateComment(c.Request().Context(), dto.CreateCommentInput{
		PostID:          p.asInt64("post_id"),
		UserID:          p.asInt64("user_id"),
		UserName:        p.asString("user_name"),
		Content:         p.asString("content"),
		Password:        p.asString("password"),
		ParentCommentID: p.optInt64("parent_comment_id"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.CommentSaved{
		Message: services.MsgCommentCreated,
		Comment: comment,
	})
}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Needs both the author's account and the comment password.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.UpdateCommentInput true "Comment"
// @Success 200 {object} response.CommentSaved
// @Failure 401 {object} response.Message
// @Failure 402 {object} response.Message "Wrong password"
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery/post/comments [put]
func (r *Routers) UpdateComment(c echo.Context) error {
	const op = "http.routers.UpdateComment"

	p, err := r.input(c, updateCommentRules, asOwner(c, "user_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	comment, err := r.CommentService.UpdateComment(c.Request().Context(), dto.UpdateCommentInput{
		PostID:    p.asInt64("post_id"),
		CommentID: p.asInt64("comment_id"),
		UserID:    p.asInt64("user_id"),
		Password:  p.asString("password"),
		Content:   p.asString("content"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.CommentSaved{
		Message: services.MsgCommentUpdated,
		Comment: comment,
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Needs both the author's account and the comment password. Replies go with it.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.DeleteCommentInput true "Comment"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 402 {object} response.Message "Wrong password"
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery/post/comments [delete]
func (r *Routers) DeleteComment(c echo.Context) error {
	const op = "http.routers.DeleteComment"

	p, err := r.input(c, deleteCommentRules, asOwner(c, "user_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	err = r.CommentService.DeleteComment(c.Request().Context(), dto.DeleteCommentInput{
		PostID:    p.asInt64("post_id"),
		CommentID: p.asInt64("comment_id"),
		UserID:    p.asInt64("user_id"),
		Password:  p.asString("password"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.Message{Message: services.MsgCommentDeleted})
}
