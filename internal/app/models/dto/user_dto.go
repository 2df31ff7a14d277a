package dto

import "github.com/yigit/enrollment/internal/app/models"

// CreateUserRequest represents the body of POST /users/
type CreateUserRequest struct {
	NetID *string `json:"netID" example:"abc123"`
}

// UpdateUserRequest represents the body of POST /users/{netID}/
type UpdateUserRequest struct {
	NetID *string `json:"netID" example:"xyz789"`
}

// UserResponse is the serialized form of a user with its courses fully nested
type UserResponse struct {
	NetID   string           `json:"netID" example:"abc123"`
	Courses []CourseResponse `json:"courses"`
}

// NewUserResponse serializes a user
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		NetID:   user.NetID,
		Courses: NewCourseListResponse(user.Courses),
	}
}

// NewUserListResponse serializes a list of users, never returning nil
func NewUserListResponse(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
