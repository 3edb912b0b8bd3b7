package models

// Feedback testimonial document, at most one per user
type Feedback struct {
	ID           uint64 `json:"id" bson:"id"`
	UserID       string `json:"userId" bson:"userId"`
	Name         string `json:"name" bson:"name"`
	ProfileImage string `json:"profileImage" bson:"profileImage"`
	Headline     string `json:"headline" bson:"headline"`
	Feedback     string `json:"feedback" bson:"feedback"`
}
