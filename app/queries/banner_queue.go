package queries

import (
	"context"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
)

// GetBanners lists all banner documents
func (q *Queries) GetBanners(ctx context.Context) ([]models.Banner, error) {
	cursor, err := q.col(colBanner).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// InsertBanner creates one banner
func (q *Queries) InsertBanner(ctx context.Context, banner models.Banner) error {
	_, err := q.col(colBanner).InsertOne(ctx, banner)
	return err
}

// UpdateBanner applies a $set update on one banner
func (q *Queries) UpdateBanner(ctx context.Context, id uint64, set bson.M) (int64, error) {
	result, err := q.col(colBanner).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteBanner removes one banner
func (q *Queries) DeleteBanner(ctx context.Context, id uint64) (int64, error) {
	result, err := q.col(colBanner).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// GetActiveBanners lists the banners shown on the landing slider
func (q *Queries) GetActiveBanners(ctx context.Context) ([]models.Banner, error) {
	cursor, err := q.col(colBanner).Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}
