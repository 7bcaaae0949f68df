package server

import (
	"Fanhub/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Creator      *handler.Creator
	Post         *handler.Post
	Subscription *handler.Subscription
	Library      *handler.Library
	Message      *handler.Message
	QuickReply   *handler.QuickReply
	Admin        *handler.Admin
}
