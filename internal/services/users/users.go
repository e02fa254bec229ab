package users

import (
	"context"
	"fmt"

	"github.com/floydfdes/api-fridge-chef/internal/auth"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateAccount registers a new user with a bcrypt-hashed password.
func CreateAccount(db *mongodb.DB, ctx context.Context, req auth.SignupRequest) (User, error) {
	if _, err := db.GetUserByEmail(ctx, req.Email); err == nil {
		return User{}, ErrEmailAlreadyRegistered
	} else if err != mongodb.ErrRecordNotFound {
		return User{}, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	newUser := mongodb.UserDb{
		Name:         req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	savedUser, err := db.AddUser(ctx, newUser)
	if err != nil {
		// Unique email index catches races between the exists check and
		// the insert.
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrEmailAlreadyRegistered
		}
		return User{}, err
	}

	return MapDbUserToApiUser(savedUser), nil
}

func GetUserById(db *mongodb.DB, ctx context.Context, userId string) (User, error) {
	dbUser, err := db.GetUserById(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return MapDbUserToApiUser(dbUser), nil
}

func GetAllUsers(db *mongodb.DB, ctx context.Context) ([]User, error) {
	dbUsers, err := db.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	allUsers := make([]User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		allUsers = append(allUsers, MapDbUserToApiUser(dbUser))
	}
	return allUsers, nil
}

// UpdateProfile applies a partial profile update. Users may only edit
// their own profile.
func UpdateProfile(db *mongodb.DB, ctx context.Context, userId, requesterId string, req UpdateProfileRequest) (User, error) {
	if userId != requesterId {
		return User{}, ErrNotProfileOwner
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ProfilePicture != nil {
		fields["profilePicture"] = *req.ProfilePicture
	}

	if len(fields) > 0 {
		if err := db.UpdateUserFields(ctx, userId, fields); err != nil {
			if err == mongodb.ErrRecordNotFound {
				return User{}, ErrUserNotFound
			}
			return User{}, err
		}
	}

	updatedUser, err := db.GetUserById(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return MapDbUserToApiUser(updatedUser), nil
}

// DeleteAccount removes the user plus their follow edges, ratings, and
// uploaded fridge images. Recipes the user authored stay up.
func DeleteAccount(db *mongodb.DB, ctx context.Context, userId, requesterId string) error {
	if userId != requesterId {
		return ErrNotProfileOwner
	}

	deleted, err := db.DeleteUser(ctx, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	if _, err := db.DeleteFollowsForUser(ctx, userId); err != nil {
		return fmt.Errorf("cleaning follows for user %s: %w", userId, err)
	}
	if _, err := db.DeleteRatingsByUserId(ctx, userId); err != nil {
		return fmt.Errorf("cleaning ratings for user %s: %w", userId, err)
	}
	if _, err := db.DeleteFridgeImagesByUserId(ctx, userId); err != nil {
		return fmt.Errorf("cleaning fridge images for user %s: %w", userId, err)
	}

	return nil
}

// Follow creates a follow edge and bumps both denormalized counters, each
// with its own atomic increment.
func Follow(db *mongodb.DB, ctx context.Context, followerId, followeeId string) error {
	if followerId == followeeId {
		return ErrSelfFollow
	}

	if exists, err := db.UserExists(ctx, followeeId); err != nil {
		return err
	} else if !exists {
		return ErrUserNotFound
	}

	if _, err := db.AddFollow(ctx, followerId, followeeId); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyFollowing
		}
		return err
	}

	if err := db.IncrementUserCounter(ctx, followeeId, "followersCount", 1); err != nil {
		return fmt.Errorf("incrementing followers count: %w", err)
	}
	if err := db.IncrementUserCounter(ctx, followerId, "followingCount", 1); err != nil {
		return fmt.Errorf("incrementing following count: %w", err)
	}

	return nil
}

// Unfollow removes the follow edge and decrements both counters.
func Unfollow(db *mongodb.DB, ctx context.Context, followerId, followeeId string) error {
	if followerId == followeeId {
		return ErrSelfFollow
	}

	deleted, err := db.DeleteFollow(ctx, followerId, followeeId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFollowing
	}

	if err := db.IncrementUserCounter(ctx, followeeId, "followersCount", -1); err != nil {
		return fmt.Errorf("decrementing followers count: %w", err)
	}
	if err := db.IncrementUserCounter(ctx, followerId, "followingCount", -1); err != nil {
		return fmt.Errorf("decrementing following count: %w", err)
	}

	return nil
}
