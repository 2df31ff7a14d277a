package dto

import "github.com/yigit/enrollment/internal/app/models"

// CreateCourseRequest represents the body of POST /courses/.
// Every field is optional; absent fields are handed to the store as-is.
type CreateCourseRequest struct {
	CourseID   *int64  `json:"courseID" example:"1"`
	CourseName *string `json:"courseName" example:"CS101"`
	Capacity   *int64  `json:"capacity" example:"30"`
	Enrolled   *int64  `json:"enrolled" example:"0"`
}

// UpdateCourseRequest represents the body of POST /courses/{courseID}/
type UpdateCourseRequest struct {
	CourseName *string `json:"courseName" example:"CS102"`
	Capacity   *int64  `json:"capacity" example:"40"`
	Enrolled   *int64  `json:"enrolled" example:"0"`
}

// CourseResponse is the serialized form of a course. It never nests users.
type CourseResponse struct {
	CourseID   int64  `json:"courseID" example:"1"`
	CourseName string `json:"courseName" example:"CS101"`
	Capacity   int64  `json:"capacity" example:"30"`
	Enrolled   int64  `json:"enrolled" example:"0"`
}

// NewCourseResponse serializes a course
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		CourseID:   course.CourseID,
		CourseName: course.CourseName,
		Capacity:   course.Capacity,
		Enrolled:   course.Enrolled,
	}
}

// NewCourseListResponse serializes a list of courses, never returning nil
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
