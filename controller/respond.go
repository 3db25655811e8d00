package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// respondServiceError 把服务层错误映射为 HTTP 状态码。
func respondServiceError(c *gin.Context, err error, action string) {
	var validation *myErrors.ValidationError
	switch {
	case errors.As(err, &validation):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, validation.Error())
	case errors.Is(err, &myErrors.PostError{Kind: myErrors.PostNotFound}), mysql.IsNotFound(err):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+": 资源不存在")
	case errors.Is(err, &myErrors.PostError{Kind: myErrors.PostSlugExists}),
		errors.Is(err, &myErrors.PostError{Kind: myErrors.PostInvalidPublishState}):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+": "+err.Error())
	}
}

// pathID 解析路径参数 id，失败时已写入 400 响应。
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 ID 格式")
		return 0, false
	}
	return id, true
}

// contextUserID 取网关透传的用户 ID，缺失或非法时返回 nil。
func contextUserID(c *gin.Context) *uint64 {
	value, exists := c.Get(string(constants.UserIDKey))
	if !exists {
		return nil
	}
	raw, ok := value.(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	return &id
}

// requireUserID 后台写操作必须带用户 ID，缺失时已写入 401 响应。
func requireUserID(c *gin.Context) (uint64, bool) {
	id := contextUserID(c)
	if id == nil {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return 0, false
	}
	return *id, true
}
