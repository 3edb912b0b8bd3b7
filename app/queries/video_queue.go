package queries

import (
	"context"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
)

// InsertVideoPlaylist stores a fetched playlist manifest for a course video
func (q *Queries) InsertVideoPlaylist(ctx context.Context, playlist models.VideoPlaylist) error {
	_, err := q.col(colPlaylists).InsertOne(ctx, playlist)
	return err
}

// GetVideoPlaylist looks up the stored playlist for a video public id
func (q *Queries) GetVideoPlaylist(ctx context.Context, publicID string) (models.VideoPlaylist, error) {
	var playlist models.VideoPlaylist
	err := q.col(colPlaylists).FindOne(ctx, bson.M{"publicId": publicID}).Decode(&playlist)
	return playlist, err
}
