package middleware

import (
	"net/http"
	"strings"

	"Fanhub/models"
	"Fanhub/pkg/context"
	"Fanhub/pkg/jwt"
	"Fanhub/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)

		c.Next()
	}
}

// OptionalAuth 读端接口用：带合法 token 则识别用户，不带按匿名访客处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
				c.Set(context.CtxUserID, claims.UserID)
				c.Set(context.CtxRole, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireAdmin 管理端接口把守：角色声明来自服务端签发的 token，客户端无法自行切换
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if context.GetRole(c) != models.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "需要管理员权限")
			return
		}
		c.Next()
	}
}
