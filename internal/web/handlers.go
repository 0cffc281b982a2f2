package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oliviajools/provoid-website-de-sub001/internal/blog"
	"github.com/oliviajools/provoid-website-de-sub001/internal/chat"
)

type listResponse struct {
	Posts []blog.Post `json:"posts"`
}

type createPostRequest struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title" validate:"required"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
}

type deletePostRequest struct {
	ID string `json:"id"`
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListPosts never fails: an absent or corrupt document shows up as an empty
// list, by design.
func (s *Server) ListPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, listResponse{Posts: s.store.List()})
}

func (s *Server) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, err)
	}

	post, err := s.store.Create(blog.CreateInput{
		ID:       req.ID,
		Slug:     req.Slug,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Image:    req.Image,
		Date:     req.Date,
		Tags:     req.Tags,
	})
	if err != nil {
		s.log.Errorw("create post", "title", req.Title, "error", err)
		return s.fail(c, http.StatusInternalServerError, err)
	}

	postsCreated.Inc()
	return c.JSON(http.StatusOK, map[string]any{"success": true, "post": post})
}

// DeletePost is idempotent: deleting an id that does not exist still reports
// success.
func (s *Server) DeletePost(c echo.Context) error {
	var req deletePostRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, err)
	}

	if err := s.store.Delete(req.ID); err != nil {
		s.log.Errorw("delete post", "id", req.ID, "error", err)
		return s.fail(c, http.StatusInternalServerError, err)
	}

	postsDeleted.Inc()
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) GetPost(c echo.Context) error {
	post, ok := s.store.GetBySlug(c.Param("slug"))
	if !ok {
		return s.fail(c, http.StatusNotFound, errors.New("post not found"))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"post":    post,
		"html":    renderMarkdown(post.Content),
	})
}

type chatRequest struct {
	Messages []chat.Message `json:"messages" validate:"required,min=1"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat forwards the caller's message history to the completion provider with
// the fixed site prompt prepended. No history is stored.
func (s *Server) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, err)
	}

	messages := append([]chat.Message{{Role: "system", Content: s.cfg.ChatSystemPrompt}}, req.Messages...)
	reply, err := s.chat.Complete(c.Request().Context(), messages)
	if err != nil {
		s.log.Errorw("chat completion", "error", err)
		return s.fail(c, http.StatusBadGateway, err)
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *Server) SubscribeNewsletter(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, err)
	}

	status, err := s.newsletter.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		s.log.Errorw("newsletter subscribe", "error", err)
		return s.fail(c, http.StatusBadGateway, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "status": string(status)})
}

func (s *Server) fail(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]any{"success": false, "error": err.Error()})
}
