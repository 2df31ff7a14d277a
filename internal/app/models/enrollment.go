package models

// Enrollment is one row of the association table linking a user to a course
type Enrollment struct {
	NetID    string `json:"netID" yaml:"netID" db:"user_netID"`
	CourseID int64  `json:"courseID" yaml:"courseID" db:"course_courseID"`
}
