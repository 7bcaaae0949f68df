package service

import (
	"context"
	"time"

	"Fanhub/config"
	"Fanhub/dao"
	"Fanhub/models"
	"Fanhub/pkg/jwt"
	"Fanhub/pkg/response"
	"Fanhub/pkg/snowflake"
	"Fanhub/types"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error
}

type AuthService struct {
	Config     *config.Config
	ProfileDAO *dao.ProfileDAO
}

// Register 注册：邮箱唯一，密码 bcrypt 入库，角色固定为 user
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	if s.ProfileDAO.IsEmailExist(ctx, req.Email) {
		return nil, response.Conflict("邮箱已注册")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &models.Profile{
		ID:           snowflake.GenID(),
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.ProfileDAO.Create(ctx, profile); err != nil {
		return nil, err
	}

	return s.issueToken(profile)
}

// Login 登录，校验密码后签发带角色声明的 access token
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	profile, err := s.ProfileDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, response.Unauthenticated("邮箱或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
		return nil, response.Unauthenticated("邮箱或密码错误")
	}

	return s.issueToken(profile)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error {
	updates := map[string]any{"updated_at": time.Now()}
	if req.DisplayName != "" {
		updates["display_name"] = req.DisplayName
	}
	if req.AvatarURL != "" {
		updates["avatar_url"] = req.AvatarURL
	}
	return s.ProfileDAO.UpdateById(ctx, userID, updates)
}

// issueToken 角色声明来自数据库，不接受客户端指定
func (s *AuthService) issueToken(profile *models.Profile) (*types.AuthResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresIn) * time.Second
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), profile.ID, profile.Role, "access", expire)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		UserID:      profile.ID,
		DisplayName: profile.DisplayName,
		Role:        profile.Role,
		AccessToken: token,
	}, nil
}
