package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	Video     bson.ObjectID `json:"video"     bson:"video"`
	Owner     bson.ObjectID `json:"owner"     bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// CommentWithOwner carries the author summary for listing responses.
type CommentWithOwner struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	Video     bson.ObjectID `json:"video"     bson:"video"`
	Owner     *UserSummary  `json:"owner"     bson:"owner,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
