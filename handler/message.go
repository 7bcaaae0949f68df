package handler

import (
	"net/http"

	"Fanhub/config"
	"Fanhub/middleware"
	"Fanhub/pkg/context"
	"Fanhub/pkg/response"
	"Fanhub/service"
	"Fanhub/types"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Config         *config.Config
	MessageService service.IMessageService
}

func (h *Message) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/message", authorize)
	g.POST("/send", context.Wrap(h.Send))
	g.GET("/threads", context.Wrap(h.ListThreads))
	g.GET("/threads/:thread_id", context.Wrap(h.ListMessages))
	g.POST("/threads/:thread_id/read", context.Wrap(h.MarkRead))
}

// Send 发私信，会话不存在时自动建立
func (h *Message) Send(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	msg, err := h.MessageService.SendMessage(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, msg)
	return nil
}

// ListThreads 会话列表，附带总未读数
func (h *Message) ListThreads(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	resp, err := h.MessageService.ListThreads(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// ListMessages 会话内消息，仅限会话双方
func (h *Message) ListMessages(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	threadID, err := paramID(c, "thread_id")
	if err != nil {
		return err
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	limit, offset := req.Normalize()

	messages, err := h.MessageService.ListMessages(c.Request.Context(), threadID, userID, limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, types.MessageListResponse{
		Messages: messages,
		HasMore:  len(messages) == limit,
	})
	return nil
}

// MarkRead 把会话标记为已读，清掉自己这侧的未读数
func (h *Message) MarkRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	threadID, err := paramID(c, "thread_id")
	if err != nil {
		return err
	}

	if err := h.MessageService.MarkThreadRead(c.Request.Context(), threadID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"read": true})
	return nil
}
