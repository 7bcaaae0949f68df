package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误分类：资源不存在 / 未登录 / 无权限 / 并发冲突 / 参数校验失败

func NotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func Unauthenticated(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

func Conflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

func ValidationFailed(msg string) *BizError {
	return NewError(http.StatusUnprocessableEntity, msg)
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
