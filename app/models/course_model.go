package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course approval lifecycle
const (
	CourseStatusPending  = "pending"
	CourseStatusApproved = "approved"
	CourseStatusDenied   = "denied"
)

// Course document ("classes" collection)
type Course struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	InstructorID    string             `json:"_instructorId" bson:"_instructorId"`
	InstructorName  string             `json:"instructorName" bson:"instructorName"`
	CourseName      string             `json:"courseName" bson:"courseName" binding:"required"`
	CourseThumbnail string             `json:"courseThumbnail" bson:"courseThumbnail"`
	Summary         string             `json:"summary,omitempty" bson:"summary,omitempty"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Level           string             `json:"level,omitempty" bson:"level,omitempty"`
	Category        string             `json:"category,omitempty" bson:"category,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	Discount        float64            `json:"discount" bson:"discount"`
	Students        int                `json:"students" bson:"students"`
	CourseCompleted int                `json:"courseCompleted" bson:"courseCompleted"`
	Rating          float64            `json:"rating" bson:"rating"`
	TotalReviews    int                `json:"totalReviews" bson:"totalReviews"`
	TotalModules    int                `json:"totalModules" bson:"totalModules"`
	Status          string             `json:"status" bson:"status"`
	Feedback        string             `json:"feedback" bson:"feedback"`
	FeedbackRead    bool               `json:"feedbackRead" bson:"feedbackRead"`
	Publish         bool               `json:"publish" bson:"publish"`
	CourseContents  []Milestone        `json:"courseContents,omitempty" bson:"courseContents,omitempty"`
}

// Milestone groups the modules of one course section
type Milestone struct {
	MilestoneName    string   `json:"milestoneName" bson:"milestoneName"`
	MilestoneDetails string   `json:"milestoneDetails,omitempty" bson:"milestoneDetails,omitempty"`
	MilestoneModules []Module `json:"milestoneModules,omitempty" bson:"milestoneModules,omitempty"`
}

// Module is a single lecture
type Module struct {
	ModuleName string  `json:"moduleName" bson:"moduleName"`
	VideoID    string  `json:"videoId,omitempty" bson:"videoId,omitempty"`
	Duration   float64 `json:"duration,omitempty" bson:"duration,omitempty"`
}
