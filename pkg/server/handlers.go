package server

import (
	"playtube/handler"
)

type Handlers struct {
	Health       *handler.Health
	Auth         *handler.Auth
	Video        *handler.Video
	Comment      *handler.Comment
	Tweet        *handler.Tweet
	Playlist     *handler.Playlist
	Like         *handler.Like
	Subscription *handler.Subscription
	Dashboard    *handler.Dashboard
}
