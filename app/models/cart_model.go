package models

// CartItem document
type CartItem struct {
	UserID        string `json:"userId" bson:"userId" binding:"required"`
	CourseID      string `json:"courseId" bson:"courseId" binding:"required"`
	SavedForLater bool   `json:"savedForLater" bson:"savedForLater"`
}
