//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewVideoDAO,
	NewCommentDAO,
	NewTweetDAO,
	NewPlaylistDAO,
	NewLikeDAO,
	NewSubscriptionDAO,
	NewWatchHistoryDAO,
)
