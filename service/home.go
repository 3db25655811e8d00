package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// HomeService 首页各信息流。仓库层负责缓存，这里只做组装。
type HomeService interface {
	GetLatestPosts(ctx context.Context) ([]vo.PostVO, error)
	GetFeaturedPosts(ctx context.Context) ([]vo.PostVO, error)
	GetTopAuthors(ctx context.Context) ([]vo.AuthorVO, error)
	GetTrendingPosts(ctx context.Context) ([]vo.PostVO, error)
	// GetPersonalizedFeed userID 为 nil 表示匿名访问。
	GetPersonalizedFeed(ctx context.Context, userID *uint64) ([]vo.PostVO, error)
}

type homeService struct {
	posts   mysql.PostRepository
	users   mysql.UserRepository
	storage FileStorage
}

func NewHomeService(posts mysql.PostRepository, users mysql.UserRepository, storage FileStorage) HomeService {
	return &homeService{posts: posts, users: users, storage: storage}
}

func (s *homeService) GetLatestPosts(ctx context.Context) ([]vo.PostVO, error) {
	posts, err := s.posts.GetLatestPosts(ctx, constant.LatestPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("查询最新文章失败: %w", err)
	}
	return vo.NewPostVOs(posts, storageURL(s.storage)), nil
}

func (s *homeService) GetFeaturedPosts(ctx context.Context) ([]vo.PostVO, error) {
	posts, err := s.posts.GetFeaturedPosts(ctx, constant.FeaturedPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("查询精选文章失败: %w", err)
	}
	return vo.NewPostVOs(posts, storageURL(s.storage)), nil
}

func (s *homeService) GetTopAuthors(ctx context.Context) ([]vo.AuthorVO, error) {
	users, err := s.users.GetTopAuthors(ctx, constant.TopAuthorsLimit)
	if err != nil {
		return nil, fmt.Errorf("查询作者榜失败: %w", err)
	}
	return vo.NewAuthorVOs(users), nil
}

func (s *homeService) GetTrendingPosts(ctx context.Context) ([]vo.PostVO, error) {
	posts, err := s.posts.GetTrendingPosts(ctx, constant.TrendingPostsLimit, constant.TrendingPostsDays)
	if err != nil {
		return nil, fmt.Errorf("查询热门文章失败: %w", err)
	}
	return vo.NewPostVOs(posts, storageURL(s.storage)), nil
}

func (s *homeService) GetPersonalizedFeed(ctx context.Context, userID *uint64) ([]vo.PostVO, error) {
	posts, err := s.posts.GetPersonalizedFeed(ctx, userID, constant.FeedPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("查询个性化信息流失败: %w", err)
	}
	return vo.NewPostVOs(posts, storageURL(s.storage)), nil
}
