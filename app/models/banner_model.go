package models

import "time"

// Banner document, managed by admins
type Banner struct {
	ID         uint64    `json:"id" bson:"id"`
	Image      string    `json:"image" bson:"image"`
	Heading    string    `json:"heading,omitempty" bson:"heading,omitempty"`
	SubHeading string    `json:"subHeading,omitempty" bson:"subHeading,omitempty"`
	Active     bool      `json:"active" bson:"active"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
