package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription records that Subscriber follows Channel (both user ids).
type Subscription struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	Subscriber bson.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    bson.ObjectID `json:"channel"    bson:"channel"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"createdAt"`
}
