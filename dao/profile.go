package dao

import (
	"context"

	"Fanhub/models"

	"gorm.io/gorm"
)

type ProfileDAO struct {
	Repo[models.Profile]
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{Repo: NewRepo[models.Profile](db)}
}

// FindByEmail 邮箱查询
func (d *ProfileDAO) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return d.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (d *ProfileDAO) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := d.IsExist(ctx, "email = ?", email)
	return exist
}

// UpdateById 按字段更新
func (d *ProfileDAO) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	return d.Db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(data).Error
}

// FindByIDs 批量查询，私信会话列表拼装对端信息用
func (d *ProfileDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Profile, error) {
	if len(ids) == 0 {
		return []*models.Profile{}, nil
	}
	var profiles []*models.Profile
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&profiles).Error
	return profiles, err
}
