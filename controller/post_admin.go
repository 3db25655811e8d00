package controller

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/service"
)

// 封面图的表单字段名
const imageField = "image"

// 解析 multipart 表单的内存上限，超出部分写临时文件
const maxFormMemory = 32 << 20

// PostAdminController 后台文章管理
type PostAdminController struct {
	posts   service.PostService
	actions service.PostActionService
}

func NewPostAdminController(posts service.PostService, actions service.PostActionService) *PostAdminController {
	return &PostAdminController{posts: posts, actions: actions}
}

// RegisterRoutes 注册到 /api/v1/admin 分组。
func (ctrl *PostAdminController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPosts)
		posts.POST("", ctrl.CreatePost)
		posts.POST("/bulk", ctrl.BulkDelete)
		posts.POST("/bulk/restore", ctrl.BulkRestore)
		posts.POST("/bulk/force", ctrl.BulkForceDelete)
		posts.GET("/:id", ctrl.GetPost)
		posts.PUT("/:id", ctrl.UpdatePost)
		posts.DELETE("/:id", ctrl.DeletePost)
		posts.PUT("/:id/publish", ctrl.Publish)
		posts.PUT("/:id/unpublish", ctrl.Unpublish)
		posts.POST("/:id/duplicate", ctrl.Duplicate)
	}
}

// ListPosts 后台文章列表
// @Summary      后台文章列表
// @Description  支持关键词、分类、状态、作者、标签、回收站与创建时间范围筛选，默认按创建时间倒序，每页 15 条。
// @Tags         admin-posts (后台-文章)
// @Produce      json
// @Param        q query string false "标题/摘要关键词"
// @Param        sort query string false "排序字段" Enums(published_at, created_at, views_count, status, title)
// @Param        direction query string false "排序方向" Enums(asc, desc)
// @Param        page query int false "页码" minimum(1) default(1)
// @Param        per_page query int false "每页数量" minimum(1) maximum(100) default(15)
// @Param        category_id query uint64 false "分类 ID"
// @Param        status query string false "状态" Enums(draft, pending, published)
// @Param        user_id query uint64 false "作者 ID"
// @Param        tag_id query uint64 false "标签 ID"
// @Param        trashed query string false "回收站" Enums(with, only)
// @Param        created_at_from query string false "创建时间起 (YYYY-MM-DD)"
// @Param        created_at_to query string false "创建时间止 (YYYY-MM-DD)"
// @Success      200 {object} vo.PostPageResponseWrapper "文章分页"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/admin/posts [get]
func (ctrl *PostAdminController) ListPosts(c *gin.Context) {
	var filters dto.PostFilterDTO
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	page, err := ctrl.posts.GetPosts(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err, "获取文章列表失败")
		return
	}
	response.RespondSuccess(c, page, "文章列表获取成功")
}

// GetPost 后台查看文章
// @Summary      后台查看文章
// @Tags         admin-posts (后台-文章)
// @Produce      json
// @Param        id path uint64 true "文章 ID"
// @Success      200 {object} vo.PostDetailResponseWrapper "文章详情"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的文章 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/v1/admin/posts/{id} [get]
func (ctrl *PostAdminController) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := ctrl.posts.GetPost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取文章失败")
		return
	}
	response.RespondSuccess(c, post, "文章获取成功")
}

// CreatePost 创建文章
// @Summary      创建文章
// @Description  multipart/form-data 提交，封面图使用 image 文件字段。作者为当前登录用户。
// @Tags         admin-posts (后台-文章)
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "标题" maxLength(255)
// @Param        slug formData string false "slug，为空时由标题生成"
// @Param        excerpt formData string false "摘要，为空时从正文截取"
// @Param        content formData string true "Markdown 正文"
// @Param        status formData string true "状态" Enums(draft, pending, published)
// @Param        published_at formData string false "发布时间 (RFC3339)，status=published 时必填"
// @Param        category_id formData uint64 false "分类 ID"
// @Param        tag_ids formData []uint64 false "标签 ID" collectionFormat(multi)
// @Param        is_featured formData bool false "是否精选"
// @Param        meta_title formData string false "SEO 标题"
// @Param        meta_description formData string false "SEO 描述"
// @Param        image formData file false "封面图"
// @Success      200 {object} vo.PostDetailResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的表单"
// @Failure      401 {object} vo.BaseResponseWrapper "缺少用户信息"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/admin/posts [post]
func (ctrl *PostAdminController) CreatePost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	req, ok := bindPostRequest(c)
	if !ok {
		return
	}
	image, closeImage, ok := formImage(c)
	if !ok {
		return
	}
	defer closeImage()

	post, err := ctrl.posts.CreatePost(c.Request.Context(), service.CreatePostInput{
		UserID:          userID,
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Status:          entities.PostStatus(req.Status),
		PublishedAt:     req.PublishedAt,
		IsFeatured:      req.IsFeatured,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		TagIDs:          nonZero(req.TagIDs),
		Image:           image,
	})
	if err != nil {
		respondServiceError(c, err, "创建文章失败")
		return
	}
	response.RespondSuccess(c, post, "文章创建成功")
}

// UpdatePost 更新文章
// @Summary      更新文章
// @Description  表单字段同创建。未提交 tag_ids 时不改动标签，提交空值清空标签。remove_image=true 删除封面图。
// @Tags         admin-posts (后台-文章)
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path uint64 true "文章 ID"
// @Param        title formData string true "标题" maxLength(255)
// @Param        content formData string true "Markdown 正文"
// @Param        status formData string true "状态" Enums(draft, pending, published)
// @Param        remove_image formData bool false "删除封面图"
// @Param        image formData file false "新的封面图"
// @Success      200 {object} vo.PostDetailResponseWrapper "更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的表单"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/admin/posts/{id} [put]
func (ctrl *PostAdminController) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindPostRequest(c)
	if !ok {
		return
	}
	image, closeImage, ok := formImage(c)
	if !ok {
		return
	}
	defer closeImage()

	in := service.UpdatePostInput{
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Status:          entities.PostStatus(req.Status),
		PublishedAt:     req.PublishedAt,
		IsFeatured:      req.IsFeatured,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Image:           image,
		RemoveImage:     req.RemoveImage,
	}
	if _, sent := c.Request.PostForm["tag_ids"]; sent {
		tagIDs := nonZero(req.TagIDs)
		in.TagIDs = &tagIDs
	}

	post, err := ctrl.posts.UpdatePost(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err, "更新文章失败")
		return
	}
	response.RespondSuccess(c, post, "文章更新成功")
}

// DeletePost 软删除文章
// @Summary      删除文章
// @Description  先删除封面图再软删除文章。
// @Tags         admin-posts (后台-文章)
// @Produce      json
// @Param        id path uint64 true "文章 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/admin/posts/{id} [delete]
func (ctrl *PostAdminController) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.posts.DeletePost(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除文章失败")
		return
	}
	response.RespondSuccess[any](c, nil, "文章删除成功")
}

// Publish 发布文章
// @Summary      发布文章
// @Tags         admin-posts (后台-文章)
// @Produce      json
// @Param        id path uint64 true "文章 ID"
// @Success      200 {object} vo.PostResponseWrapper "发布成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/v1/admin/posts/{id}/publish [put]
func (ctrl *PostAdminController) Publish(c *gin.Context) {
	ctrl.runAction(c, ctrl.actions.Publish, "发布文章失败", "文章已发布")
}

// Unpublish 撤回文章为草稿
// @Summary      撤回文章
// @Tags         admin-posts (后台-文章)
// @Produce      json
// @Param        id path uint64 true "文章 ID"
// @Success      200 {object} vo.PostResponseWrapper "撤回成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/v1/admin/posts/{id}/unpublish [put]
func (ctrl *PostAdminController) Unpublish(c *gin.Context) {
	ctrl.runAction(c, ctrl.actions.Unpublish, "撤回文章失败", "文章已撤回")
}

// Duplicate 复制文章
// @Summary      复制文章
// @Description  复制为草稿，标题追加 " (Copy)"，标签一并复制。
// @Tags         admin-posts (后台-文章)
// @Produce      json
// @Param        id path uint64 true "文章 ID"
// @Success      200 {object} vo.PostResponseWrapper "复制成功"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在"
// @Router       /api/v1/admin/posts/{id}/duplicate [post]
func (ctrl *PostAdminController) Duplicate(c *gin.Context) {
	ctrl.runAction(c, ctrl.actions.Duplicate, "复制文章失败", "文章复制成功")
}

// BulkDelete 批量软删除
// @Summary      批量删除文章
// @Tags         admin-posts (后台-文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkIDsRequest true "文章 ID 列表 (1..100)"
// @Success      200 {object} vo.BulkResultResponseWrapper "受影响行数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 ID 列表"
// @Router       /api/v1/admin/posts/bulk [post]
func (ctrl *PostAdminController) BulkDelete(c *gin.Context) {
	ctrl.runBulk(c, ctrl.actions.BulkDelete, "批量删除文章失败", "批量删除成功")
}

// BulkRestore 批量恢复
// @Summary      批量恢复文章
// @Tags         admin-posts (后台-文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkIDsRequest true "文章 ID 列表 (1..100)"
// @Success      200 {object} vo.BulkResultResponseWrapper "受影响行数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 ID 列表"
// @Router       /api/v1/admin/posts/bulk/restore [post]
func (ctrl *PostAdminController) BulkRestore(c *gin.Context) {
	ctrl.runBulk(c, ctrl.actions.BulkRestore, "批量恢复文章失败", "批量恢复成功")
}

// BulkForceDelete 批量物理删除
// @Summary      批量物理删除文章
// @Description  物理删除，包括回收站中的文章，并清理封面图。
// @Tags         admin-posts (后台-文章)
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkIDsRequest true "文章 ID 列表 (1..100)"
// @Success      200 {object} vo.BulkResultResponseWrapper "受影响行数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 ID 列表"
// @Router       /api/v1/admin/posts/bulk/force [post]
func (ctrl *PostAdminController) BulkForceDelete(c *gin.Context) {
	ctrl.runBulk(c, ctrl.actions.BulkForceDelete, "批量物理删除文章失败", "批量物理删除成功")
}

func (ctrl *PostAdminController) runAction(c *gin.Context, fn func(ctx context.Context, id uint64) (*vo.PostVO, error), failure, success string) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := fn(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, failure)
		return
	}
	response.RespondSuccess(c, post, success)
}

func (ctrl *PostAdminController) runBulk(c *gin.Context, fn func(ctx context.Context, ids []uint64) (int64, error), failure, success string) {
	var req dto.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}
	affected, err := fn(c.Request.Context(), req.UniqueIDs())
	if err != nil {
		respondServiceError(c, err, failure)
		return
	}
	response.RespondSuccess(c, vo.BulkResultVO{Affected: affected}, success)
}

// bindPostRequest 绑定并校验文章表单，失败时已写入 400 响应。
func bindPostRequest(c *gin.Context) (dto.PostRequest, bool) {
	var req dto.PostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return req, false
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "校验请求数据失败")
		return req, false
	}
	return req, true
}

// formImage 读取可选的封面图文件，返回的 close 必须调用。
func formImage(c *gin.Context) (*service.ImageUpload, func(), bool) {
	noop := func() {}
	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, true
	}
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "读取封面图失败: "+err.Error())
		return nil, noop, false
	}
	file, err := header.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "打开封面图失败: "+err.Error())
		return nil, noop, false
	}
	return newImageUpload(header, file), func() { _ = file.Close() }, true
}

func newImageUpload(header *multipart.FileHeader, file multipart.File) *service.ImageUpload {
	return &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}
}

// nonZero 去掉空表单值绑定出来的 0。
func nonZero(ids []uint64) []uint64 {
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			out = append(out, id)
		}
	}
	return out
}
