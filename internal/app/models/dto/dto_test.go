package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/app/models"
)

func marshal(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestUserResponse_NestsFullCourses(t *testing.T) {
	user := &models.User{
		NetID: "abc123",
		Courses: []*models.Course{
			{CourseID: 1, CourseName: "CS101", Capacity: 30, Enrolled: 1},
		},
	}

	assert.JSONEq(t,
		`{"netID":"abc123","courses":[{"courseID":1,"courseName":"CS101","capacity":30,"enrolled":1}]}`,
		marshal(t, NewUserResponse(user)))
}

func TestUserResponse_EmptyCoursesIsArray(t *testing.T) {
	assert.JSONEq(t, `{"netID":"abc123","courses":[]}`, marshal(t, NewUserResponse(&models.User{NetID: "abc123"})))
	assert.JSONEq(t, `[]`, marshal(t, NewUserListResponse(nil)))
	assert.JSONEq(t, `[]`, marshal(t, NewCourseListResponse(nil)))
}

func TestEnvelopes(t *testing.T) {
	assert.JSONEq(t, `{"success":true,"data":{"courseID":2,"courseName":"x","capacity":0,"enrolled":0}}`,
		marshal(t, NewSuccessResponse(NewCourseResponse(&models.Course{CourseID: 2, CourseName: "x"}))))
	assert.JSONEq(t, `{"success":false,"error":"Course not found"}`, marshal(t, NewErrorResponse("Course not found")))
}

func TestCreateCourseRequest_AbsentFieldsAreNil(t *testing.T) {
	var req CreateCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"courseName":"CS101","enrolled":0}`), &req))

	assert.Nil(t, req.CourseID)
	assert.Nil(t, req.Capacity)
	require.NotNil(t, req.Enrolled)
	assert.Equal(t, int64(0), *req.Enrolled)
}

func TestEnrollmentRequest_CourseIDForms(t *testing.T) {
	one := int64(1)
	tests := []struct {
		name string
		body string
		want *int64
	}{
		{"number", `{"courseID":1}`, &one},
		{"numeric string", `{"courseID":"1"}`, &one},
		{"padded string", `{"courseID":" 1 "}`, &one},
		{"integral float", `{"courseID":1.0}`, &one},
		{"fractional", `{"courseID":1.5}`, nil},
		{"word", `{"courseID":"abc"}`, nil},
		{"null", `{"courseID":null}`, nil},
		{"bool", `{"courseID":true}`, nil},
		{"absent", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req EnrollmentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.CourseID)
		})
	}
}

func TestEnrollmentRequest_RejectsNonObject(t *testing.T) {
	var req EnrollmentRequest
	assert.Error(t, json.Unmarshal([]byte(`{bad`), &req))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &req))
}
