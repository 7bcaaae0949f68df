package dao

import (
	"context"
	"time"

	"Fanhub/models"
	"Fanhub/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThreadDAO struct {
	Repo[models.MessageThread]
}

func NewThreadDAO(db *gorm.DB) *ThreadDAO {
	return &ThreadDAO{Repo: NewRepo[models.MessageThread](db)}
}

// GetOrCreate 确保两人会话存在（幂等），参与者顺序已规范化
func (d *ThreadDAO) GetOrCreate(ctx context.Context, uid1, uid2 int64) (*models.MessageThread, error) {
	a, b := models.NormalizePair(uid1, uid2)
	now := time.Now()

	row := &models.MessageThread{
		ID:        snowflake.GenID(),
		UserAID:   a,
		UserBID:   b,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 幂等插入：已存在就不插
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return row, nil
	}

	var existing models.MessageThread
	if err := d.Db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// AppendMessage 发消息：消息写入、last_message 缓存字段更新、接收方未读+1，同一事务。
// 发送方的未读数不动。
func (d *ThreadDAO) AppendMessage(ctx context.Context, thread *models.MessageThread, msg *models.Message) error {
	unreadCol := "unread_b"
	if msg.SenderID == thread.UserBID {
		unreadCol = "unread_a"
	}

	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.MessageThread{}).
			Where("id = ?", thread.ID).
			Updates(map[string]any{
				"last_message":    msg.Content,
				"last_message_at": msg.CreatedAt.UnixMilli(),
				unreadCol:         gorm.Expr(unreadCol+" + ?", 1),
				"updated_at":      time.Now(),
			}).Error
	})
}

// MarkRead 清零 userID 在该会话的未读数并把对方发来的消息标记已读；不影响对方未读状态
func (d *ThreadDAO) MarkRead(ctx context.Context, thread *models.MessageThread, userID int64) error {
	unreadCol := "unread_a"
	if userID == thread.UserBID {
		unreadCol = "unread_b"
	}

	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MessageThread{}).
			Where("id = ?", thread.ID).
			Updates(map[string]any{
				unreadCol:    0,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Message{}).
			Where("thread_id = ? AND sender_id != ? AND is_read = ?", thread.ID, userID, false).
			Update("is_read", true).Error
	})
}

// ListByUser 用户的会话列表（按最近消息倒序）
func (d *ThreadDAO) ListByUser(ctx context.Context, userID int64) ([]*models.MessageThread, error) {
	var threads []*models.MessageThread
	err := d.Db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&threads).Error
	return threads, err
}
