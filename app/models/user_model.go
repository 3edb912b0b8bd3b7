package models

// User document. The _id is issued by the authentication collaborator, not
// by this service.
type User struct {
	ID           string `json:"_id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"` // Unique, lowercased
	Image        string `json:"image" bson:"image"`
	Role         string `json:"role" bson:"role"` // student | instructor | admin
	Suspended    bool   `json:"suspended" bson:"suspended"`
	SignupMethod string `json:"signupMethod,omitempty" bson:"signupMethod,omitempty"`

	// Instructor profile fields
	Headline    string            `json:"headline,omitempty" bson:"headline,omitempty"`
	BioData     string            `json:"bioData,omitempty" bson:"bioData,omitempty"`
	Experience  string            `json:"experience,omitempty" bson:"experience,omitempty"`
	Expertise   []string          `json:"expertise,omitempty" bson:"expertise,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty" bson:"socialLinks,omitempty"`
}
