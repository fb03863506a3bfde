package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// CreatePost handles POST /api/posts/create.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), service.CreatePostInput{
		OwnerID:     currentUser(c).ID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// MyPosts handles GET /api/posts/my-posts.
func (s *Server) MyPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListOwned(c.Context(), currentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// ListPosts handles GET /api/posts/list.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id/update. Owner only.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.Context(), service.UpdatePostInput{
		ActorID:     currentUser(c).ID,
		PostID:      id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id/delete. Owner only.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postService.Delete(c.Context(), id, currentUser(c).ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post was successfully deleted"})
}

// AddLike handles POST /api/posts/add-like/:id. Non-owner only.
func (s *Server) AddLike(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postService.AddLike(c.Context(), id, currentUser(c).ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post was successfully liked"})
}

// AddDislike handles POST /api/posts/add-dislike/:id. Non-owner only.
func (s *Server) AddDislike(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postService.AddDislike(c.Context(), id, currentUser(c).ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post was successfully disliked"})
}
