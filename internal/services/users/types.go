package users

import "time"

type User struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	RecipesCount   int       `json:"recipesCount"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type AllUsersResponse struct {
	Users []User `json:"users"`
}

type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}
