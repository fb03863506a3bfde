// Command seed populates the database and counter store with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	users := flag.Int("users", 5, "number of demo users to create")
	posts := flag.Int("posts", 3, "posts per user")
	reactions := flag.Int("reactions", 10, "max random likes/dislikes per post")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rdb, err := cache.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	opts := seed.Options{
		Users:        *users,
		PostsPerUser: *posts,
		MaxReactions: *reactions,
	}
	if err := seed.Run(context.Background(), db, cache.NewCounters(rdb), opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users with %d posts each", opts.Users, opts.PostsPerUser)
}
