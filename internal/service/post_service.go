// Package service implements the application's business rules on top of
// the repositories and the counter overlay.
package service

import (
	"context"
	"strings"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// PostService owns post CRUD rules (ownership checks) and the like/dislike
// reaction rules, and assembles read-side responses from the relational
// record plus the counter overlay.
type PostService struct {
	posts    repository.PostRepository
	counters *cache.Counters
}

// CreatePostInput carries the fields for creating a post.
type CreatePostInput struct {
	OwnerID     uint
	Title       string
	Description *string
}

// UpdatePostInput carries the fields for updating a post.
type UpdatePostInput struct {
	ActorID     uint
	PostID      uint
	Title       string
	Description *string
}

// NewPostService returns a PostService backed by the given repository and counters.
func NewPostService(posts repository.PostRepository, counters *cache.Counters) *PostService {
	return &PostService{posts: posts, counters: counters}
}

// Create stores a new post owned by the actor. UpdatedAt stays NULL until
// the first update.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.PostResponse, error) {
	title := strings.TrimSpace(in.Title)
	if err := validation.ValidateTitle(title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		Title:       title,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.assemble(ctx, post)
}

// Get returns the assembled representation of one post.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.PostResponse, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, post)
}

// ListAll returns every post, oldest first.
func (s *PostService) ListAll(ctx context.Context) ([]models.PostResponse, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembleMany(ctx, posts)
}

// ListOwned returns the actor's posts, oldest first.
func (s *PostService) ListOwned(ctx context.Context, ownerID uint) ([]models.PostResponse, error) {
	posts, err := s.posts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.assembleMany(ctx, posts)
}

// Update replaces the title and description of an owned post. Missing
// posts yield NotFound; a non-owner actor yields Forbidden, never NotFound.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.PostResponse, error) {
	title := strings.TrimSpace(in.Title)
	if err := validation.ValidateTitle(title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.posts.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != in.ActorID {
		return nil, models.NewForbiddenError("You are not an owner of this post")
	}

	post.Title = title
	post.Description = in.Description
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.assemble(ctx, post)
}

// Delete removes an owned post permanently. Counter overlay entries for
// the post are intentionally left in place.
func (s *PostService) Delete(ctx context.Context, postID, actorID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != actorID {
		return models.NewForbiddenError("You are not an owner of this post")
	}
	return s.posts.Delete(ctx, postID)
}

// AddLike increments the like counter for a post. The owner of a post may
// never like it; anyone else may like it any number of times.
func (s *PostService) AddLike(ctx context.Context, postID, actorID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID == actorID {
		return models.NewForbiddenError("Owner of the post cannot like it")
	}
	if err := s.counters.IncrementLikes(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AddDislike increments the dislike counter for a post, with the same
// ownership rule as AddLike.
func (s *PostService) AddDislike(ctx context.Context, postID, actorID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID == actorID {
		return models.NewForbiddenError("Owner of the post cannot dislike it")
	}
	if err := s.counters.IncrementDislikes(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *PostService) assemble(ctx context.Context, post *models.Post) (*models.PostResponse, error) {
	pair, err := s.counters.Get(ctx, post.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	resp := models.NewPostResponse(post, pair.Likes, pair.Dislikes)
	return &resp, nil
}

func (s *PostService) assembleMany(ctx context.Context, posts []models.Post) ([]models.PostResponse, error) {
	ids := make([]uint, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	pairs, err := s.counters.GetMany(ctx, ids)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	responses := make([]models.PostResponse, len(posts))
	for i := range posts {
		pair := pairs[posts[i].ID]
		responses[i] = models.NewPostResponse(&posts[i], pair.Likes, pair.Dislikes)
	}
	return responses, nil
}
