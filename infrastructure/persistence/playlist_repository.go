package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type PlaylistRepository struct {
	playlists *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{playlists: db.Collection("playlists")}
}

func (r *PlaylistRepository) Insert(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	now := time.Now().UTC()
	playlist.ID = bson.NewObjectID()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}

	if _, err := r.playlists.InsertOne(ctx, playlist); err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	var playlist model.Playlist
	err := r.playlists.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, model.ErrNotFound
	}
	if err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}

func (r *PlaylistRepository) GetByOwner(ctx context.Context, ownerID bson.ObjectID) ([]model.Playlist, error) {
	cursor, err := r.playlists.Find(
		ctx,
		bson.D{{Key: "owner", Value: ownerID}},
		options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var playlists []model.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []model.Playlist{}
	}
	return playlists, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id bson.ObjectID, updates bson.M) (model.Playlist, error) {
	updates["updatedAt"] = time.Now().UTC()
	return r.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: updates}})
}

// AddVideo appends the video unless it is already in the playlist.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) findOneAndUpdate(ctx context.Context, id bson.ObjectID, update bson.D) (model.Playlist, error) {
	res := r.playlists.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var playlist model.Playlist
	err := res.Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, model.ErrNotFound
	}
	if err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.playlists.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
