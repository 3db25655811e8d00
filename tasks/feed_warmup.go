package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/service"
)

// FeedWarmupTask 定时调用首页各信息流，让仓库缓存在版本号变更后尽快重新填充。
type FeedWarmupTask struct {
	home   service.HomeService
	cron   *cron.Cron
	logger *zap.Logger
}

// NewFeedWarmupTask 创建并启动预热任务。spec 为空时使用 constant.FeedWarmupCronSpec。
func NewFeedWarmupTask(home service.HomeService, spec string, logger *zap.Logger) (*FeedWarmupTask, error) {
	if spec == "" {
		spec = constant.FeedWarmupCronSpec
	}
	task := &FeedWarmupTask{
		home:   home,
		cron:   cron.New(),
		logger: logger,
	}

	entryID, err := task.cron.AddFunc(spec, task.run)
	if err != nil {
		logger.Error("添加信息流预热 cron 作业失败", zap.String("schedule", spec), zap.Error(err))
		return nil, fmt.Errorf("添加信息流预热 cron 作业失败: %w", err)
	}
	task.cron.Start()
	logger.Info("信息流预热定时任务已启动", zap.String("schedule", spec), zap.Int("cronEntryID", int(entryID)))
	return task, nil
}

func (t *FeedWarmupTask) run() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), constant.FeedWarmupTimeout)
	defer cancel()

	if err := t.Warm(ctx); err != nil {
		t.logger.Error("信息流预热部分失败", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return
	}
	t.logger.Info("信息流预热完成", zap.Duration("duration", time.Since(start)))
}

// Warm 依次读取各信息流。单个失败不影响其余的，所有错误合并返回。
func (t *FeedWarmupTask) Warm(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"latest", func(ctx context.Context) error { _, err := t.home.GetLatestPosts(ctx); return err }},
		{"featured", func(ctx context.Context) error { _, err := t.home.GetFeaturedPosts(ctx); return err }},
		{"trending", func(ctx context.Context) error { _, err := t.home.GetTrendingPosts(ctx); return err }},
		{"authors", func(ctx context.Context) error { _, err := t.home.GetTopAuthors(ctx); return err }},
		// 匿名信息流，登录用户的信息流按用户区分，不预热
		{"feed", func(ctx context.Context) error { _, err := t.home.GetPersonalizedFeed(ctx, nil); return err }},
	}

	var errs []error
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := step.fn(ctx); err != nil {
			t.logger.Warn("预热信息流失败", zap.String("feed", step.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
		}
	}
	return errors.Join(errs...)
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭。
func (t *FeedWarmupTask) Stop() context.Context {
	t.logger.Info("正在停止信息流预热定时任务...")
	return t.cron.Stop()
}
