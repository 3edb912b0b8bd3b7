package models

// WishlistItem document
type WishlistItem struct {
	UserID   string `json:"userId" bson:"userId" binding:"required"`
	CourseID string `json:"courseId" bson:"courseId" binding:"required"`
}
