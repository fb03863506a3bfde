// Package seed provides helpers to create demo data for development.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Users        int
	PostsPerUser int
	// MaxReactions caps the random like/dislike warmup per post.
	MaxReactions int
}

// Run creates demo users, posts and counter warmup data. Every generated
// user gets the same well-known password so demo logins are easy.
func Run(ctx context.Context, db *gorm.DB, counters *cache.Counters, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.Users <= 0 {
		opts.Users = 5
	}
	if opts.PostsPerUser <= 0 {
		opts.PostsPerUser = 3
	}
	if opts.MaxReactions <= 0 {
		opts.MaxReactions = 10
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Email:    gofakeit.Email(),
			Password: string(hashed),
		}
		if err := db.WithContext(ctx).Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		for j := 0; j < opts.PostsPerUser; j++ {
			description := gofakeit.Paragraph(1, 3, 8, "\n")
			post := &models.Post{
				Title:       gofakeit.Sentence(5),
				Description: &description,
				OwnerID:     user.ID,
				// realistic created_at spread
				CreatedAt: time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour),
			}
			if err := db.WithContext(ctx).Create(post).Error; err != nil {
				return fmt.Errorf("seed post: %w", err)
			}

			for k := r.Intn(opts.MaxReactions); k > 0; k-- {
				if err := counters.IncrementLikes(ctx, post.ID); err != nil {
					return fmt.Errorf("seed likes: %w", err)
				}
			}
			for k := r.Intn(opts.MaxReactions); k > 0; k-- {
				if err := counters.IncrementDislikes(ctx, post.ID); err != nil {
					return fmt.Errorf("seed dislikes: %w", err)
				}
			}
		}
	}

	return nil
}
