package types

type CreateQuickReplyRequest struct {
	Name    string `json:"name" binding:"required,max=50"`
	Content string `json:"content" binding:"required,max=1000"`
}

type UpdateQuickReplyRequest struct {
	Name    string `json:"name" binding:"max=50"`
	Content string `json:"content" binding:"max=1000"`
}

type QuickReply struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}
