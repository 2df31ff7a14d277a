package models

// User defines the user model based on the 'user' table.
// Courses is a set: the association table keys on (netID, courseID).
type User struct {
	NetID   string    `json:"netID" db:"netID"`
	Courses []*Course `json:"courses"` // Relation, no db tag
}
