package queries

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthzResult is the outcome of an ownership or role check, decoupled from
// transport status codes.
type AuthzResult int

const (
	Authorized AuthzResult = iota
	Forbidden
	NotFound
)

type authzProjection struct {
	Email string `bson:"email"`
	Role  string `bson:"role"`
}

func (q *Queries) authorize(ctx context.Context, userID, callerEmail, requiredRole string) (AuthzResult, error) {
	var user authzProjection
	opts := bson.M{"_id": userID}
	err := q.col(colUsers).FindOne(ctx, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFound, nil
	}
	if err != nil {
		return Forbidden, err
	}

	if user.Email != callerEmail {
		return Forbidden, nil
	}
	if requiredRole != "" && user.Role != requiredRole {
		return Forbidden, nil
	}
	return Authorized, nil
}

// AuthorizeUser checks the caller owns the user resource
func (q *Queries) AuthorizeUser(ctx context.Context, userID, callerEmail string) (AuthzResult, error) {
	return q.authorize(ctx, userID, callerEmail, "")
}

// AuthorizeInstructor checks ownership and the instructor role
func (q *Queries) AuthorizeInstructor(ctx context.Context, userID, callerEmail string) (AuthzResult, error) {
	return q.authorize(ctx, userID, callerEmail, "instructor")
}

// AuthorizeAdmin checks ownership and the admin role
func (q *Queries) AuthorizeAdmin(ctx context.Context, userID, callerEmail string) (AuthzResult, error) {
	return q.authorize(ctx, userID, callerEmail, "admin")
}
