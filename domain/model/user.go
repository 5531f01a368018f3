package model

import (
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID   `json:"id"                 bson:"_id,omitempty"`
	UserName     string          `json:"username"           bson:"username"`
	Email        string          `json:"email"              bson:"email"`
	FullName     string          `json:"fullName"           bson:"fullName"`
	Avatar       string          `json:"avatar"             bson:"avatar"`
	CoverImage   string          `json:"coverImage"         bson:"coverImage"`
	Password     string          `json:"-"                  bson:"password"`
	WatchHistory []bson.ObjectID `json:"watchHistory"       bson:"watchHistory,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"          bson:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"          bson:"updatedAt"`
}

// UserSummary is the denormalized owner projection embedded into listing
// results. It never carries credentials or private fields.
type UserSummary struct {
	UserName string `json:"username" bson:"username"`
	FullName string `json:"fullName" bson:"fullName"`
	Avatar   string `json:"avatar"   bson:"avatar"`
}

// ChannelProfile is a user profile enriched with subscription counts,
// as rendered on a channel page.
type ChannelProfile struct {
	ID              bson.ObjectID `json:"id"              bson:"_id"`
	UserName        string        `json:"username"        bson:"username"`
	FullName        string        `json:"fullName"        bson:"fullName"`
	Avatar          string        `json:"avatar"          bson:"avatar"`
	CoverImage      string        `json:"coverImage"      bson:"coverImage"`
	SubscriberCount int64         `json:"subscriberCount" bson:"subscriberCount"`
	SubscribedCount int64         `json:"subscribedCount" bson:"subscribedCount"`
	IsSubscribed    bool          `json:"isSubscribed"    bson:"isSubscribed"`
}

type UserClaims struct {
	UserName string `json:"userName"`
	jwt.StandardClaims
}

type ReqLogin struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ReqRegister struct {
	UserName   string `json:"userName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"fullName" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage"`
}
