package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Playlist struct {
	ID          bson.ObjectID   `json:"id"          bson:"_id,omitempty"`
	Name        string          `json:"name"        bson:"name"`
	Description string          `json:"description" bson:"description"`
	Videos      []bson.ObjectID `json:"videos"      bson:"videos"`
	Owner       bson.ObjectID   `json:"owner"       bson:"owner"`
	CreatedAt   time.Time       `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"   bson:"updatedAt"`
}
