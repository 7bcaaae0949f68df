package service

import (
	"context"
	"time"

	"Fanhub/dao"
	"Fanhub/dao/cache"
	"Fanhub/models"
	"Fanhub/pkg/response"
	"Fanhub/pkg/snowflake"
	"Fanhub/types"
)

var _ IMessageService = (*MessageService)(nil)

type IMessageService interface {
	SendMessage(ctx context.Context, senderID int64, req *types.SendMessageRequest) (*types.MessageView, error)
	MarkThreadRead(ctx context.Context, threadID, userID int64) error
	ListThreads(ctx context.Context, userID int64) (*types.ThreadListResponse, error)
	ListMessages(ctx context.Context, threadID, userID int64, limit, offset int) ([]*types.MessageView, error)
}

type MessageService struct {
	ThreadDAO  *dao.ThreadDAO
	MessageDAO *dao.MessageDAO
	ProfileDAO *dao.ProfileDAO
	Unread     *cache.UnreadStorage
}

// SendMessage 发私信：保证会话存在后写入消息并更新会话缓存字段，
// 只有接收方的未读数 +1
func (s *MessageService) SendMessage(ctx context.Context, senderID int64, req *types.SendMessageRequest) (*types.MessageView, error) {
	if req.PeerID == senderID {
		return nil, response.ValidationFailed("不能给自己发私信")
	}
	peer, err := s.ProfileDAO.FindById(ctx, req.PeerID)
	if err != nil {
		return nil, err
	}
	if peer == nil {
		return nil, response.NotFound("用户不存在")
	}

	thread, err := s.ThreadDAO.GetOrCreate(ctx, senderID, req.PeerID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:        snowflake.GenID(),
		ThreadID:  thread.ID,
		SenderID:  senderID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.ThreadDAO.AppendMessage(ctx, thread, msg); err != nil {
		return nil, err
	}

	// 接收方的未读角标 +1
	s.Unread.Incr(ctx, req.PeerID, thread.ID)

	return toMessageView(msg), nil
}

// MarkThreadRead 清零自己在该会话的未读，不影响对方
func (s *MessageService) MarkThreadRead(ctx context.Context, threadID, userID int64) error {
	thread, err := s.ThreadDAO.FindById(ctx, threadID)
	if err != nil {
		return err
	}
	// 非参与者不暴露会话是否存在
	if thread == nil || thread.PeerOf(userID) == 0 {
		return response.NotFound("会话不存在")
	}

	if err := s.ThreadDAO.MarkRead(ctx, thread, userID); err != nil {
		return err
	}
	s.Unread.Reset(ctx, userID, threadID)
	return nil
}

// ListThreads 会话列表，带对端资料和自己的未读数
func (s *MessageService) ListThreads(ctx context.Context, userID int64) (*types.ThreadListResponse, error) {
	threads, err := s.ThreadDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	peerIDs := make([]int64, 0, len(threads))
	for _, t := range threads {
		peerIDs = append(peerIDs, t.PeerOf(userID))
	}
	profiles, err := s.ProfileDAO.FindByIDs(ctx, peerIDs)
	if err != nil {
		return nil, err
	}
	profileMap := make(map[int64]*models.Profile, len(profiles))
	for _, p := range profiles {
		profileMap[p.ID] = p
	}

	var totalUnread int64
	views := make([]*types.ThreadView, 0, len(threads))
	for _, t := range threads {
		peerID := t.PeerOf(userID)
		v := &types.ThreadView{
			ID:            t.ID,
			PeerID:        peerID,
			LastMessage:   t.LastMessage,
			LastMessageAt: t.LastMessageAt,
			Unread:        t.UnreadOf(userID),
		}
		if p, ok := profileMap[peerID]; ok {
			v.PeerName = p.DisplayName
			v.PeerAvatar = p.AvatarURL
		}
		totalUnread += v.Unread
		views = append(views, v)
	}

	return &types.ThreadListResponse{
		Threads:     views,
		TotalUnread: totalUnread,
	}, nil
}

// ListMessages 会话内消息，仅参与者可见
func (s *MessageService) ListMessages(ctx context.Context, threadID, userID int64, limit, offset int) ([]*types.MessageView, error) {
	thread, err := s.ThreadDAO.FindById(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread == nil || thread.PeerOf(userID) == 0 {
		return nil, response.NotFound("会话不存在")
	}

	msgs, err := s.MessageDAO.ListByThread(ctx, threadID, limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]*types.MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, toMessageView(m))
	}
	return views, nil
}

func toMessageView(m *models.Message) *types.MessageView {
	return &types.MessageView{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
