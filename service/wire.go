package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(AccessService), "*"),
	wire.Bind(new(IAccessService), new(*AccessService)),

	wire.Struct(new(CreatorService), "*"),
	wire.Bind(new(ICreatorService), new(*CreatorService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(SaveService), "*"),
	wire.Bind(new(ISaveService), new(*SaveService)),

	wire.Struct(new(LibraryService), "*"),
	wire.Bind(new(ILibraryService), new(*LibraryService)),

	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),

	wire.Struct(new(QuickReplyService), "*"),
	wire.Bind(new(IQuickReplyService), new(*QuickReplyService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),
)
