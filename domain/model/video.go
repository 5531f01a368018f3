package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video represents one uploaded video. VideoFile and Thumbnail are URL
// references to externally stored media.
type Video struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile"   bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail"   bson:"thumbnail"`
	Duration    float64       `json:"duration"    bson:"duration"`
	Views       int64         `json:"views"       bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       bson.ObjectID `json:"owner"       bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updatedAt"`
}

// VideoWithOwner is the listing projection: a video with the owner summary
// joined in. Owner may be empty when the owner reference resolves to no user;
// that is a valid record, not an error.
type VideoWithOwner struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile"   bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail"   bson:"thumbnail"`
	Duration    float64       `json:"duration"    bson:"duration"`
	Views       int64         `json:"views"       bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       *UserSummary  `json:"owner"       bson:"owner,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updatedAt"`
}
