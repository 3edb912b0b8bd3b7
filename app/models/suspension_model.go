package models

import "time"

// Suspension document ("suspendedUsers" collection)
type Suspension struct {
	ID          uint64    `json:"id" bson:"id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Reason      string    `json:"reason" bson:"reason"`
	SuspendedBy string    `json:"suspendedBy" bson:"suspendedBy"`
	Date        time.Time `json:"date" bson:"date"`
}
