package server_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/floydfdes/api-fridge-chef/internal/api"
	"github.com/floydfdes/api-fridge-chef/internal/mongodb"
	"github.com/floydfdes/api-fridge-chef/internal/services/users"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func getUserProfile(t *testing.T, userId, token string) users.User {
	t.Helper()

	resp := doJSON(t, http.MethodGet, "/users/"+userId, token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile users.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	return profile
}

func TestUserProfiles(t *testing.T) {
	resetDB(t)

	user := signupUser(t, "Profile User", "profile@example.com")
	other := signupUser(t, "Other User", "other@example.com")

	t.Run("Listing users", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/users", user.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody users.AllUsersResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Len(t, respBody.Users, 2)
	})

	t.Run("Getting a profile by id", func(t *testing.T) {
		profile := getUserProfile(t, user.Id, other.Token)
		require.Equal(t, "Profile User", profile.Name)
		require.Equal(t, "profile@example.com", profile.Email)
		require.Equal(t, 0, profile.RecipesCount)
	})

	t.Run("Getting an unknown profile should return 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, "/users/000000000000000000000000", user.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Updating your own profile", func(t *testing.T) {
		newBio := "I cook things."
		resp := doJSON(t, http.MethodPut, "/users/"+user.Id, user.Token, users.UpdateProfileRequest{
			Bio: &newBio,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated users.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
		require.Equal(t, "I cook things.", updated.Bio)
		require.Equal(t, "Profile User", updated.Name)
	})

	t.Run("Updating someone else's profile should return 403", func(t *testing.T) {
		newName := "Hijacked"
		resp := doJSON(t, http.MethodPut, "/users/"+user.Id, other.Token, users.UpdateProfileRequest{
			Name: &newName,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		var respBody api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Contains(t, respBody.ErrorMessage, users.ErrNotProfileOwner.Error()[1:])
	})

	t.Run("Deleting someone else's account should return 403", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, "/users/"+user.Id, other.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestFollowUnfollow(t *testing.T) {
	resetDB(t)

	follower := signupUser(t, "Follower", "follower@example.com")
	followee := signupUser(t, "Followee", "followee@example.com")

	t.Run("Following bumps both counters", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/users/"+followee.Id+"/follow", follower.Token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.Equal(t, 1, getUserProfile(t, followee.Id, follower.Token).FollowersCount)
		require.Equal(t, 1, getUserProfile(t, follower.Id, follower.Token).FollowingCount)
		require.Equal(t, int64(1), countDocs(t, mongodb.FollowsCollection, bson.M{
			"followerId": follower.Id,
			"followeeId": followee.Id,
		}))
	})

	t.Run("Following the same user twice should return 409", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/users/"+followee.Id+"/follow", follower.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		var respBody api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Contains(t, respBody.ErrorMessage, users.ErrAlreadyFollowing.Error()[1:])

		// Counters did not move
		require.Equal(t, 1, getUserProfile(t, followee.Id, follower.Token).FollowersCount)
		require.Equal(t, 1, getUserProfile(t, follower.Id, follower.Token).FollowingCount)
	})

	t.Run("Following yourself should return 400", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/users/"+follower.Id+"/follow", follower.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Following an unknown user should return 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/users/000000000000000000000000/follow", follower.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Unfollowing restores the counters", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/users/"+followee.Id+"/unfollow", follower.Token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.Equal(t, 0, getUserProfile(t, followee.Id, follower.Token).FollowersCount)
		require.Equal(t, 0, getUserProfile(t, follower.Id, follower.Token).FollowingCount)
		require.Equal(t, int64(0), countDocs(t, mongodb.FollowsCollection, bson.M{
			"followerId": follower.Id,
		}))
	})

	t.Run("Unfollowing a user you do not follow should return 400", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/users/"+followee.Id+"/unfollow", follower.Token, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var respBody api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Contains(t, respBody.ErrorMessage, users.ErrNotFollowing.Error()[1:])
	})
}

func TestDeleteAccount(t *testing.T) {
	resetDB(t)

	user := signupUser(t, "Leaving User", "leaving@example.com")
	other := signupUser(t, "Staying User", "staying@example.com")

	// Leave behind a follow edge and a rating to verify cleanup.
	resp := doJSON(t, http.MethodPost, "/users/"+other.Id+"/follow", user.Token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	recipe := addRecipe(t, newRecipeRequest("Survivor Stew", "Hearty family supper"), other.Token)
	rateResp := rateRecipe(t, recipe.Id, 4, user.Token)
	rateResp.Body.Close()
	require.Equal(t, http.StatusOK, rateResp.StatusCode)

	delResp := doJSON(t, http.MethodDelete, "/users/"+user.Id, user.Token, nil)
	delResp.Body.Close()
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)

	require.Equal(t, int64(0), countDocs(t, mongodb.UsersCollection, bson.M{"_id": user.Id}))
	require.Equal(t, int64(0), countDocs(t, mongodb.FollowsCollection, bson.M{"followerId": user.Id}))
	require.Equal(t, int64(0), countDocs(t, mongodb.RatingsCollection, bson.M{"userId": user.Id}))

	// The other user's recipe stays up
	require.Equal(t, int64(1), countDocs(t, mongodb.RecipesCollection, bson.M{"_id": recipe.Id}))
}
