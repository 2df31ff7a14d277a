package models

// Course represents a course users can enroll in.
// Enrolled is a running counter maintained by join/drop/user deletion;
// Capacity is informational and never enforced.
type Course struct {
	CourseID   int64  `json:"courseID" db:"courseID"`
	CourseName string `json:"courseName" db:"courseName"`
	Capacity   int64  `json:"capacity" db:"capacity"`
	Enrolled   int64  `json:"enrolled" db:"enrolled"`
}
