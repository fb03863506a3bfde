package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	likesKeyPrefix    = "likes:%d"
	dislikesKeyPrefix = "dislikes:%d"
)

// LikesKey returns the Redis key holding the like counter for a post.
func LikesKey(postID uint) string {
	return fmt.Sprintf(likesKeyPrefix, postID)
}

// DislikesKey returns the Redis key holding the dislike counter for a post.
func DislikesKey(postID uint) string {
	return fmt.Sprintf(dislikesKeyPrefix, postID)
}

// CounterPair holds the like and dislike counts for one post.
type CounterPair struct {
	Likes    int64
	Dislikes int64
}

// Counters is the per-post like/dislike overlay. Counters live outside
// the relational store: entries are created lazily on the first
// increment, are never decremented, and are not removed when a post is
// deleted. Increments use Redis INCR so concurrent requests never lose
// updates.
type Counters struct {
	rdb *redis.Client
}

// NewCounters returns a counter overlay backed by the given Redis client.
func NewCounters(rdb *redis.Client) *Counters {
	return &Counters{rdb: rdb}
}

// IncrementLikes atomically increments the like counter for a post,
// creating it at 1 when absent.
func (c *Counters) IncrementLikes(ctx context.Context, postID uint) error {
	return c.rdb.Incr(ctx, LikesKey(postID)).Err()
}

// IncrementDislikes atomically increments the dislike counter for a post,
// creating it at 1 when absent.
func (c *Counters) IncrementDislikes(ctx context.Context, postID uint) error {
	return c.rdb.Incr(ctx, DislikesKey(postID)).Err()
}

// Get returns the like and dislike counts for a post. Missing counters
// read as zero; a post ID with no entries is not an error.
func (c *Counters) Get(ctx context.Context, postID uint) (CounterPair, error) {
	vals, err := c.rdb.MGet(ctx, LikesKey(postID), DislikesKey(postID)).Result()
	if err != nil {
		return CounterPair{}, err
	}
	return CounterPair{
		Likes:    parseCounter(vals[0]),
		Dislikes: parseCounter(vals[1]),
	}, nil
}

// GetMany returns counters for a batch of posts in a single MGET round
// trip. Posts without entries map to zero pairs.
func (c *Counters) GetMany(ctx context.Context, postIDs []uint) (map[uint]CounterPair, error) {
	result := make(map[uint]CounterPair, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	keys := make([]string, 0, len(postIDs)*2)
	for _, id := range postIDs {
		keys = append(keys, LikesKey(id), DislikesKey(id))
	}

	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, id := range postIDs {
		result[id] = CounterPair{
			Likes:    parseCounter(vals[i*2]),
			Dislikes: parseCounter(vals[i*2+1]),
		}
	}
	return result, nil
}

// parseCounter converts a raw MGET value to a count. Nil (missing key)
// and unparseable values read as zero.
func parseCounter(val any) int64 {
	s, ok := val.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
