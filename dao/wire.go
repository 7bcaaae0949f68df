//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProfileDAO,
	NewCreatorDAO,
	NewPostDAO,
	NewSubscriptionDAO,
	NewSavedPostDAO,
	NewPostLikeDAO,
	NewThreadDAO,
	NewMessageDAO,
	NewQuickReplyDAO,
)
