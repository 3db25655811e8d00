package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// TaxonomyAdminController 后台标签与分类管理
type TaxonomyAdminController struct {
	tags       service.TagService
	categories service.CategoryService
}

func NewTaxonomyAdminController(tags service.TagService, categories service.CategoryService) *TaxonomyAdminController {
	return &TaxonomyAdminController{tags: tags, categories: categories}
}

func (ctrl *TaxonomyAdminController) RegisterRoutes(group *gin.RouterGroup) {
	tags := group.Group("/tags")
	{
		tags.GET("", ctrl.ListTags)
		tags.POST("", ctrl.CreateTag)
		tags.PUT("/:id", ctrl.UpdateTag)
		tags.DELETE("/:id", ctrl.DeleteTag)
	}
	group.GET("/categories", ctrl.ListCategories)
}

// ListTags 后台标签列表
// @Summary      后台标签列表
// @Tags         admin-tags (后台-标签)
// @Produce      json
// @Param        q query string false "名称关键词"
// @Param        sort query string false "排序字段" Enums(id, name, created_at)
// @Param        direction query string false "排序方向" Enums(asc, desc)
// @Param        page query int false "页码" minimum(1)
// @Param        per_page query int false "每页数量" minimum(1) maximum(100)
// @Success      200 {object} vo.TagPageResponseWrapper "标签分页"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/v1/admin/tags [get]
func (ctrl *TaxonomyAdminController) ListTags(c *gin.Context) {
	var req dto.TagIndexRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	page, err := ctrl.tags.GetAll(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "获取标签列表失败")
		return
	}
	response.RespondSuccess(c, page, "标签列表获取成功")
}

// CreateTag 创建标签
// @Summary      创建标签
// @Tags         admin-tags (后台-标签)
// @Accept       json
// @Produce      json
// @Param        request body dto.TagRequest true "标签"
// @Success      200 {object} vo.TagResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Router       /api/v1/admin/tags [post]
func (ctrl *TaxonomyAdminController) CreateTag(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	tag, err := ctrl.tags.CreateTag(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "创建标签失败")
		return
	}
	response.RespondSuccess(c, tag, "标签创建成功")
}

// UpdateTag 更新标签
// @Summary      更新标签
// @Tags         admin-tags (后台-标签)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "标签 ID"
// @Param        request body dto.TagRequest true "标签"
// @Success      200 {object} vo.TagResponseWrapper "更新成功"
// @Failure      404 {object} vo.BaseResponseWrapper "标签不存在"
// @Router       /api/v1/admin/tags/{id} [put]
func (ctrl *TaxonomyAdminController) UpdateTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	tag, err := ctrl.tags.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "更新标签失败")
		return
	}
	response.RespondSuccess(c, tag, "标签更新成功")
}

// DeleteTag 删除标签
// @Summary      删除标签
// @Tags         admin-tags (后台-标签)
// @Produce      json
// @Param        id path uint64 true "标签 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "标签不存在"
// @Router       /api/v1/admin/tags/{id} [delete]
func (ctrl *TaxonomyAdminController) DeleteTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.tags.DeleteTag(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除标签失败")
		return
	}
	response.RespondSuccess[any](c, nil, "标签删除成功")
}

// ListCategories 后台分类列表
// @Summary      后台分类列表
// @Tags         admin-categories (后台-分类)
// @Produce      json
// @Param        only_root query bool false "只返回根分类及其子分类"
// @Param        q query string false "名称关键词"
// @Param        page query int false "页码" minimum(1)
// @Param        per_page query int false "每页数量" minimum(1) maximum(100)
// @Success      200 {object} vo.CategoryPageResponseWrapper "分类分页"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/v1/admin/categories [get]
func (ctrl *TaxonomyAdminController) ListCategories(c *gin.Context) {
	onlyRoot, err := queryBool(c, "only_root")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "only_root 必须是布尔值")
		return
	}
	var pagination dto.PaginationDTO
	if err := c.ShouldBindQuery(&pagination); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的分页参数: "+err.Error())
		return
	}
	page, err := ctrl.categories.GetAll(c.Request.Context(), onlyRoot, c.Query("q"), pagination.Page, pagination.PerPage)
	if err != nil {
		respondServiceError(c, err, "获取分类列表失败")
		return
	}
	response.RespondSuccess(c, page, "分类列表获取成功")
}

func queryBool(c *gin.Context, key string) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
