package server

import (
	"time"

	"videotube/domain/repository"
	httpHandler "videotube/interfaces/http"
	"videotube/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User         httpHandler.IUserHandler
	Video        httpHandler.IVideoHandler
	Comment      httpHandler.ICommentHandler
	Like         httpHandler.ILikeHandler
	Playlist     httpHandler.IPlaylistHandler
	Subscription httpHandler.ISubscriptionHandler
	Tweet        httpHandler.ITweetHandler
	Dashboard    httpHandler.IDashboardHandler
	Health       httpHandler.IHealthHandler
}

func InitiateRouter(h Handlers, userRepository repository.IUser) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:5173", "https://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", h.Health.Healthz)
	router.POST("/register", h.User.Register)
	router.POST("/login", h.User.Login)
	router.POST("/refresh-token", h.User.RefreshToken)

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository))

	users := api.Group("/users")
	{
		users.POST("/logout", h.User.Logout)
		users.GET("/current", h.User.CurrentUser)
		users.POST("/change-password", h.User.ChangePassword)
		users.PATCH("/account", h.User.UpdateAccount)
		users.GET("/channel/:username", h.User.GetChannelProfile)
		users.GET("/watch-history", h.User.GetWatchHistory)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", h.Video.ListVideos)
		videos.POST("", h.Video.PublishVideo)
		videos.GET("/:videoId", h.Video.GetVideoByID)
		videos.PATCH("/:videoId", h.Video.UpdateVideo)
		videos.DELETE("/:videoId", h.Video.DeleteVideo)
		videos.PATCH("/:videoId/toggle-publish", h.Video.TogglePublishStatus)
		videos.GET("/:videoId/comments", h.Comment.ListComments)
		videos.POST("/:videoId/comments", h.Comment.AddComment)
	}

	comments := api.Group("/comments")
	{
		comments.PATCH("/:commentId", h.Comment.UpdateComment)
		comments.DELETE("/:commentId", h.Comment.DeleteComment)
	}

	likes := api.Group("/likes")
	{
		likes.POST("/videos/:videoId", h.Like.ToggleVideoLike)
		likes.POST("/comments/:commentId", h.Like.ToggleCommentLike)
		likes.POST("/tweets/:tweetId", h.Like.ToggleTweetLike)
		likes.GET("/videos", h.Like.GetLikedVideos)
	}

	playlists := api.Group("/playlists")
	{
		playlists.POST("", h.Playlist.CreatePlaylist)
		playlists.GET("/:playlistId", h.Playlist.GetPlaylist)
		playlists.GET("/user/:userId", h.Playlist.GetUserPlaylists)
		playlists.PATCH("/:playlistId", h.Playlist.UpdatePlaylist)
		playlists.PATCH("/:playlistId/videos/:videoId", h.Playlist.AddVideoToPlaylist)
		playlists.DELETE("/:playlistId/videos/:videoId", h.Playlist.RemoveVideoFromPlaylist)
		playlists.DELETE("/:playlistId", h.Playlist.DeletePlaylist)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/channels/:channelId", h.Subscription.ToggleSubscription)
		subscriptions.GET("/channels/:channelId", h.Subscription.GetChannelSubscribers)
		subscriptions.GET("/users/:subscriberId", h.Subscription.GetSubscribedChannels)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", h.Tweet.CreateTweet)
		tweets.GET("/user/:userId", h.Tweet.GetUserTweets)
		tweets.PATCH("/:tweetId", h.Tweet.UpdateTweet)
		tweets.DELETE("/:tweetId", h.Tweet.DeleteTweet)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Dashboard.GetChannelStats)
		dashboard.GET("/videos", h.Dashboard.GetChannelVideos)
	}

	return router
}
