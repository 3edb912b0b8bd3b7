package models

import "time"

// Review document ("coursesReviews" collection)
type Review struct {
	ID              uint64    `json:"id" bson:"id"`
	CourseID        string    `json:"_courseId" bson:"_courseId"`
	StudentID       string    `json:"_studentId" bson:"_studentId"`
	InstructorID    string    `json:"_instructorId" bson:"_instructorId"`
	UserName        string    `json:"userName" bson:"userName"`
	UserImage       string    `json:"userImage" bson:"userImage"`
	Rating          int       `json:"rating" bson:"rating"`
	Review          string    `json:"review" bson:"review"`
	Date            time.Time `json:"date" bson:"date"`
	CourseName      string    `json:"courseName" bson:"courseName"`
	CourseThumbnail string    `json:"courseThumbnail" bson:"courseThumbnail"`
}
