package models

import "time"

// CheckoutToken is the single-use redemption token persisted before a hosted
// checkout session is created. The TTL index on created_at removes tokens of
// abandoned checkouts.
type CheckoutToken struct {
	Token     string    `json:"token" bson:"token"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CheckoutProduct is one course of the checkout request payload
type CheckoutProduct struct {
	CourseID     string  `json:"courseId" binding:"required"`
	InstructorID string  `json:"_instructorId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	Image        string  `json:"image"`
}

// PurchasedCourse is the course summary embedded in a payment record and in
// the checkout session metadata.
type PurchasedCourse struct {
	CourseID     string  `json:"courseId" bson:"courseId"`
	InstructorID string  `json:"_instructorId" bson:"_instructorId"`
	CourseName   string  `json:"courseName" bson:"courseName"`
	Price        float64 `json:"price" bson:"price"`
}

// Payment document. Immutable after creation, transactionId is unique.
type Payment struct {
	UserID        string            `json:"userId" bson:"userId"`
	Courses       []PurchasedCourse `json:"courses" bson:"courses"`
	Amount        float64           `json:"amount" bson:"amount"`
	Status        string            `json:"status" bson:"status"`
	PaymentMethod []string          `json:"paymentMethod" bson:"paymentMethod"`
	TransactionID string            `json:"transactionId" bson:"transactionId"`
	Receipt       string            `json:"receipt" bson:"receipt"`
	PurchaseDate  time.Time         `json:"purchaseDate" bson:"purchaseDate"`
}
