package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/service"
)

// SeedOptions 控制生成的数据量。
type SeedOptions struct {
	Users       int
	Categories  int
	Tags        int
	Posts       int
	Concurrency int
}

// SeedResult 各类数据实际创建的数量
type SeedResult struct {
	Users      int
	Categories int
	Tags       int
	Posts      int64
	Failed     int64
}

// Seed 作者与分类直接写仓库，标签与文章经过服务层，缓存版本号随写入递增。
func Seed(ctx context.Context, repos *dependencies.Repositories, tags service.TagService, posts service.PostService, logger *zap.Logger, opts SeedOptions) (SeedResult, error) {
	var result SeedResult

	userIDs := make([]uint64, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &entities.User{
			Name:  gofakeit.Name(),
			Email: fmt.Sprintf("%s.%d@example.com", strings.ToLower(gofakeit.Username()), i),
			Role:  "author",
		}
		if _, err := repos.Users.Create(ctx, user); err != nil {
			return result, fmt.Errorf("创建作者失败: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}
	result.Users = len(userIDs)

	categoryIDs := make([]uint64, 0, opts.Categories)
	for i := 0; i < opts.Categories; i++ {
		name := fmt.Sprintf("%s %d", gofakeit.BuzzWord(), i+1)
		category := &entities.Category{Name: name, Slug: fmt.Sprintf("category-%d", i+1)}
		if _, err := repos.Categories.Create(ctx, category); err != nil {
			return result, fmt.Errorf("创建分类失败: %w", err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}
	result.Categories = len(categoryIDs)

	tagIDs := make([]uint64, 0, opts.Tags)
	for i := 0; i < opts.Tags; i++ {
		tag, err := tags.CreateTag(ctx, dto.TagRequest{
			Name: fmt.Sprintf("%s %d", gofakeit.HackerNoun(), i+1),
		})
		if err != nil {
			return result, fmt.Errorf("创建标签失败: %w", err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}
	result.Tags = len(tagIDs)

	if opts.Posts > 0 && len(userIDs) == 0 {
		return result, fmt.Errorf("生成文章至少需要一个作者")
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	var wg sync.WaitGroup
	var created, failed atomic.Int64
	semaphore := make(chan struct{}, concurrency)

	for i := 0; i < opts.Posts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}
		in := fakePost(i, userIDs, categoryIDs, tagIDs)

		go func(index int, in service.CreatePostInput) {
			defer wg.Done()
			defer func() { <-semaphore }()

			post, err := posts.CreatePost(ctx, in)
			if err != nil {
				failed.Add(1)
				logger.Error(fmt.Sprintf("创建文章 %d/%d 失败", index+1, opts.Posts), zap.String("title", in.Title), zap.Error(err))
				return
			}
			created.Add(1)
			logger.Debug(fmt.Sprintf("成功创建文章 %d/%d", index+1, opts.Posts), zap.Uint64("post_id", post.ID))
		}(i, in)
	}
	wg.Wait()

	result.Posts = created.Load()
	result.Failed = failed.Load()
	return result, nil
}

// fakePost 随机生成文章，约一半为已发布，发布时间落在最近 30 天内。
func fakePost(index int, userIDs, categoryIDs, tagIDs []uint64) service.CreatePostInput {
	in := service.CreatePostInput{
		UserID:     userIDs[index%len(userIDs)],
		Title:      fmt.Sprintf("%s %d", strings.TrimSuffix(gofakeit.Sentence(gofakeit.Number(4, 8)), "."), index+1),
		Content:    fakeMarkdown(),
		Status:     entities.PostStatusDraft,
		IsFeatured: gofakeit.Number(1, 10) == 1,
	}
	if len(categoryIDs) > 0 {
		id := categoryIDs[gofakeit.Number(0, len(categoryIDs)-1)]
		in.CategoryID = &id
	}
	for _, id := range tagIDs {
		if gofakeit.Bool() {
			in.TagIDs = append(in.TagIDs, id)
		}
	}

	switch gofakeit.Number(0, 3) {
	case 0:
		in.Status = entities.PostStatusPending
	case 1, 2:
		at := time.Now().Add(-time.Duration(gofakeit.Number(1, 30*24)) * time.Hour)
		in.Status = entities.PostStatusPublished
		in.PublishedAt = &at
	}
	return in
}

func fakeMarkdown() string {
	var b strings.Builder
	b.WriteString("## " + gofakeit.Sentence(4) + "\n\n")
	b.WriteString(gofakeit.Paragraph(2, 4, 12, "\n\n"))
	b.WriteString("\n\n```go\nfmt.Println(\"" + gofakeit.Word() + "\")\n```\n")
	return b.String()
}
