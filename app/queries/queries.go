package queries

import (
	"github.com/Shihab066/learning-server/pkg/database"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names
const (
	colUsers      = "users"
	colCourses    = "classes"
	colReviews    = "coursesReviews"
	colCart       = "cart"
	colWishlist   = "wishList"
	colPayments   = "payments"
	colEnrollment = "enrollment"
	colTokens     = "temporaryTokens"
	colFeedback   = "feedback"
	colBanner     = "banner"
	colSuspended  = "suspendedUsers"
	colPlaylists  = "videoPlaylist"
)

// Queries is the data access layer. It is constructed once with the store
// from main, handlers never touch collections directly.
type Queries struct {
	store *database.Store
}

func New(store *database.Store) *Queries {
	return &Queries{store: store}
}

func (q *Queries) col(name string) *mongo.Collection {
	return q.store.Collection(name)
}
