package models

import "time"

const EnrollmentStatusActive = "active"

// Enrollment document, one per (user, course) pair, created during checkout
// confirmation and mutated later by the progress and review flows.
type Enrollment struct {
	UserID               string    `json:"userId" bson:"userId"`
	InstructorID         string    `json:"_instructorId" bson:"_instructorId"`
	CourseID             string    `json:"courseId" bson:"courseId"`
	EnrollmentDate       time.Time `json:"enrollmentDate" bson:"enrollmentDate"`
	PaymentID            string    `json:"paymentId" bson:"paymentId"`
	Price                float64   `json:"price" bson:"price"`
	Status               string    `json:"status" bson:"status"`
	Reviewed             bool      `json:"reviewed" bson:"reviewed"`
	Complete             bool      `json:"complete" bson:"complete"`
	TotalLecturesWatched int       `json:"totalLecturesWatched" bson:"totalLecturesWatched"`
}
