package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// EnrollmentRequest represents the body of POST and DELETE /users/{netID}/course/
type EnrollmentRequest struct {
	CourseID *int64 `json:"courseID" example:"1"`
}

// UnmarshalJSON accepts courseID as a JSON number or a numeric string.
// Any other value leaves CourseID nil, so the request names no course.
func (r *EnrollmentRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		CourseID json.RawMessage `json:"courseID"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.CourseID = parseCourseID(raw.CourseID)
	return nil
}

func parseCourseID(raw json.RawMessage) *int64 {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return nil
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &id
	}
	// 1.0 still names course 1
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) &&
		f >= math.MinInt64 && f < math.MaxInt64 {
		id := int64(f)
		return &id
	}
	return nil
}
