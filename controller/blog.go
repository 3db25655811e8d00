package controller

import (
	"context"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/service"
)

// BlogController 前台接口：首页信息流、文章、分类与标签。
type BlogController struct {
	home       service.HomeService
	articles   service.ArticleService
	categories service.CategoryService
	tags       service.TagFrontService
}

func NewBlogController(home service.HomeService, articles service.ArticleService, categories service.CategoryService, tags service.TagFrontService) *BlogController {
	return &BlogController{home: home, articles: articles, categories: categories, tags: tags}
}

// RegisterRoutes 注册到 /api/v1/blog 分组。
func (ctrl *BlogController) RegisterRoutes(group *gin.RouterGroup) {
	home := group.Group("/home")
	{
		home.GET("/latest", ctrl.Latest)
		home.GET("/featured", ctrl.Featured)
		home.GET("/trending", ctrl.Trending)
		home.GET("/feed", ctrl.Feed)
		home.GET("/authors", ctrl.TopAuthors)
	}
	group.GET("/articles", ctrl.ListArticles)
	group.GET("/articles/:slug", ctrl.GetArticle)
	group.GET("/articles/:slug/related", ctrl.RelatedArticles)
	group.GET("/categories", ctrl.Categories)
	group.GET("/tags", ctrl.Tags)
}

// Latest 最新文章
// @Summary      最新文章
// @Tags         blog-home (前台-首页)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "最新发布的 6 篇文章"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/blog/home/latest [get]
func (ctrl *BlogController) Latest(c *gin.Context) {
	respondPosts(c, ctrl.home.GetLatestPosts, "获取最新文章失败")
}

// Featured 精选文章
// @Summary      精选文章
// @Tags         blog-home (前台-首页)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "精选文章"
// @Router       /api/v1/blog/home/featured [get]
func (ctrl *BlogController) Featured(c *gin.Context) {
	respondPosts(c, ctrl.home.GetFeaturedPosts, "获取精选文章失败")
}

// Trending 热门文章
// @Summary      热门文章
// @Description  最近 14 天内发布的文章按浏览量与点赞数排序。
// @Tags         blog-home (前台-首页)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "热门文章"
// @Router       /api/v1/blog/home/trending [get]
func (ctrl *BlogController) Trending(c *gin.Context) {
	respondPosts(c, ctrl.home.GetTrendingPosts, "获取热门文章失败")
}

// Feed 个性化信息流
// @Summary      个性化信息流
// @Description  登录用户返回其写作分类下其他作者的文章，匿名或无结果时回落为最新文章。
// @Tags         blog-home (前台-首页)
// @Produce      json
// @Param        X-User-ID header string false "用户 ID (由网关透传)"
// @Success      200 {object} vo.PostListResponseWrapper "信息流"
// @Router       /api/v1/blog/home/feed [get]
func (ctrl *BlogController) Feed(c *gin.Context) {
	userID := contextUserID(c)
	respondPosts(c, func(ctx context.Context) ([]vo.PostVO, error) {
		return ctrl.home.GetPersonalizedFeed(ctx, userID)
	}, "获取信息流失败")
}

// TopAuthors 热门作者
// @Summary      热门作者
// @Tags         blog-home (前台-首页)
// @Produce      json
// @Success      200 {object} vo.AuthorListResponseWrapper "按文章数排序的作者"
// @Router       /api/v1/blog/home/authors [get]
func (ctrl *BlogController) TopAuthors(c *gin.Context) {
	authors, err := ctrl.home.GetTopAuthors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取作者榜失败")
		return
	}
	response.RespondSuccess(c, authors, "作者榜获取成功")
}

// ListArticles 文章列表
// @Summary      文章列表
// @Description  只返回已发布文章。category 与 tag 为 slug。
// @Tags         blog-articles (前台-文章)
// @Produce      json
// @Param        search query string false "关键词"
// @Param        category query string false "分类 slug"
// @Param        tag query string false "标签 slug"
// @Param        sort query string false "排序字段" Enums(created_at, views_count, likes_count)
// @Param        direction query string false "排序方向" Enums(asc, desc)
// @Param        page query int false "页码" minimum(1)
// @Param        per_page query int false "每页数量" minimum(1) maximum(100)
// @Success      200 {object} vo.PostPageResponseWrapper "文章分页"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数或分类/标签不存在"
// @Router       /api/v1/blog/articles [get]
func (ctrl *BlogController) ListArticles(c *gin.Context) {
	var req dto.ArticleIndexRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	page, err := ctrl.articles.GetArticles(c.Request.Context(), dto.PostQueryFromRequest(req.ToMap()))
	if err != nil {
		respondServiceError(c, err, "获取文章列表失败")
		return
	}
	response.RespondSuccess(c, page, "文章列表获取成功")
}

// GetArticle 文章详情
// @Summary      文章详情
// @Description  正文渲染为清理过的 HTML。
// @Tags         blog-articles (前台-文章)
// @Produce      json
// @Param        slug path string true "文章 slug"
// @Success      200 {object} vo.PostDetailResponseWrapper "文章详情"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在或未发布"
// @Router       /api/v1/blog/articles/{slug} [get]
func (ctrl *BlogController) GetArticle(c *gin.Context) {
	post, err := ctrl.articles.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "获取文章失败")
		return
	}
	response.RespondSuccess(c, post, "文章获取成功")
}

// RelatedArticles 相关文章
// @Summary      相关文章
// @Tags         blog-articles (前台-文章)
// @Produce      json
// @Param        slug path string true "文章 slug"
// @Success      200 {object} vo.PostListResponseWrapper "同分类的其他文章"
// @Failure      404 {object} vo.BaseResponseWrapper "文章不存在或未发布"
// @Router       /api/v1/blog/articles/{slug}/related [get]
func (ctrl *BlogController) RelatedArticles(c *gin.Context) {
	slug := c.Param("slug")
	respondPosts(c, func(ctx context.Context) ([]vo.PostVO, error) {
		return ctrl.articles.GetRelatedPosts(ctx, slug)
	}, "获取相关文章失败")
}

// Categories 分类列表
// @Summary      分类列表
// @Tags         blog-taxonomy (前台-分类与标签)
// @Produce      json
// @Success      200 {object} vo.CategoryListResponseWrapper "有已发布文章的分类"
// @Router       /api/v1/blog/categories [get]
func (ctrl *BlogController) Categories(c *gin.Context) {
	categories, err := ctrl.categories.GetCategoriesWithPosts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取分类失败")
		return
	}
	response.RespondSuccess(c, categories, "分类获取成功")
}

// Tags 标签列表
// @Summary      标签列表
// @Tags         blog-taxonomy (前台-分类与标签)
// @Produce      json
// @Success      200 {object} vo.TagListResponseWrapper "有已发布文章的标签"
// @Router       /api/v1/blog/tags [get]
func (ctrl *BlogController) Tags(c *gin.Context) {
	tags, err := ctrl.tags.GetTagsWithPosts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取标签失败")
		return
	}
	response.RespondSuccess(c, tags, "标签获取成功")
}

func respondPosts(c *gin.Context, fn func(ctx context.Context) ([]vo.PostVO, error), failure string) {
	posts, err := fn(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, failure)
		return
	}
	response.RespondSuccess(c, posts, "获取成功")
}
