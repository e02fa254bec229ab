package users

import "github.com/floydfdes/api-fridge-chef/internal/mongodb"

func MapDbUserToApiUser(dbUser mongodb.UserDb) User {
	return User{
		Id:             dbUser.Id,
		Name:           dbUser.Name,
		Email:          dbUser.Email,
		ProfilePicture: dbUser.ProfilePicture,
		Bio:            dbUser.Bio,
		RecipesCount:   dbUser.RecipesCount,
		FollowersCount: dbUser.FollowersCount,
		FollowingCount: dbUser.FollowingCount,
		CreatedAt:      dbUser.CreatedAt,
		UpdatedAt:      dbUser.UpdatedAt,
	}
}
