package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like marks exactly one of Video, Comment or Tweet as liked by LikedBy.
// Toggling an existing like deletes the document.
type Like struct {
	ID        bson.ObjectID  `json:"id"                bson:"_id,omitempty"`
	Video     *bson.ObjectID `json:"video,omitempty"   bson:"video,omitempty"`
	Comment   *bson.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *bson.ObjectID `json:"tweet,omitempty"   bson:"tweet,omitempty"`
	LikedBy   bson.ObjectID  `json:"likedBy"           bson:"likedBy"`
	CreatedAt time.Time      `json:"createdAt"         bson:"createdAt"`
}
