package handler

import (
	"net/http"
	"strconv"

	"Fanhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// paramID 解析路径里的数字 ID
func paramID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 "+name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return id, nil
}
