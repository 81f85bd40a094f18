package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// Credentials are owned by the external auth service and never loaded here.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Followers and Following are only populated by the follow queries.
	Followers []int64 `json:"followers,omitempty"`
	Following []int64 `json:"following,omitempty"`
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs returns the users that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// FetchIDs pages user ids in ascending order, starting after cursor.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)

	// Follow records followerID -> followeeID. Returns false if the edge already existed.
	Follow(ctx context.Context, followerID, followeeID int64) (bool, error)

	// Unfollow removes followerID -> followeeID. Returns false if there was no edge.
	Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error)

	FetchFollowerIDs(ctx context.Context, userID int64) ([]int64, error)
	FetchFollowingIDs(ctx context.Context, userID int64) ([]int64, error)
}

// UserCache caches user profiles (without follow sets).
type UserCache interface {
	// GetUser returns ErrCacheMiss if the user is not cached.
	// expired is true when the entry is logically stale and should be rebuilt.
	GetUser(ctx context.Context, id int64) (u User, expired bool, err error)
	// MGetUsers returns the cached users found among ids.
	MGetUsers(ctx context.Context, ids []int64) (map[int64]User, error)
	SetUser(ctx context.Context, u User, ttl time.Duration) error
	BatchSetUsers(ctx context.Context, us []User, ttl time.Duration) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserUsecase defines the business logic contract for user and follow operations.
type UserUsecase interface {
	GetByID(ctx context.Context, id int64) (User, error)

	// Follow returns ErrInvalidState when userID == targetID
	// and ErrNotFound if either user doesn't exist.
	Follow(ctx context.Context, userID, targetID int64) (User, error)

	Unfollow(ctx context.Context, userID, targetID int64) (User, error)

	ListFollowers(ctx context.Context, userID int64) ([]User, error)
	ListFollowing(ctx context.Context, userID int64) ([]User, error)
}
