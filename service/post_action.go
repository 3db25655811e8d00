package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// PostActionService 文章的状态流转、复制与批量操作。
type PostActionService interface {
	// Duplicate 在事务中加锁读取原文并复制为新草稿。
	Duplicate(ctx context.Context, id uint64) (*vo.PostVO, error)
	Publish(ctx context.Context, id uint64) (*vo.PostVO, error)
	Unpublish(ctx context.Context, id uint64) (*vo.PostVO, error)

	// 批量操作接受 1..100 个 id，返回受影响行数。
	BulkDelete(ctx context.Context, ids []uint64) (int64, error)
	BulkRestore(ctx context.Context, ids []uint64) (int64, error)
	// BulkForceDelete 物理删除后再清理这些文章的封面图。
	BulkForceDelete(ctx context.Context, ids []uint64) (int64, error)
}

type postActionService struct {
	posts   mysql.PostRepository
	tx      *mysql.TxManager
	storage FileStorage
	logger  *zap.Logger
}

func NewPostActionService(posts mysql.PostRepository, tx *mysql.TxManager, storage FileStorage, logger *zap.Logger) PostActionService {
	return &postActionService{posts: posts, tx: tx, storage: storage, logger: logger}
}

func (s *postActionService) Duplicate(ctx context.Context, id uint64) (*vo.PostVO, error) {
	var copied *entities.Post
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		source, err := s.posts.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		copied, err = s.posts.Duplicate(ctx, source)
		return err
	})
	if err != nil {
		return nil, wrapPostErr("复制文章失败", id, err)
	}
	s.logger.Info("文章已复制", zap.Uint64("sourceID", id), zap.Uint64("newID", copied.ID))
	out := vo.NewPostVO(copied, storageURL(s.storage))
	return &out, nil
}

func (s *postActionService) Publish(ctx context.Context, id uint64) (*vo.PostVO, error) {
	return s.transition(ctx, id, "发布文章失败", s.posts.Publish)
}

func (s *postActionService) Unpublish(ctx context.Context, id uint64) (*vo.PostVO, error) {
	return s.transition(ctx, id, "撤回文章失败", s.posts.Unpublish)
}

func (s *postActionService) transition(ctx context.Context, id uint64, action string, fn func(context.Context, *entities.Post) (*entities.Post, error)) (*vo.PostVO, error) {
	post, err := s.posts.FindOrFail(ctx, id, mysql.QueryOptions{Columns: []string{"id"}})
	if err != nil {
		return nil, wrapPostErr(action, id, err)
	}
	updated, err := fn(ctx, post)
	if err != nil {
		return nil, wrapPostErr(action, id, err)
	}
	out := vo.NewPostVO(updated, storageURL(s.storage))
	return &out, nil
}

func (s *postActionService) BulkDelete(ctx context.Context, ids []uint64) (int64, error) {
	if err := validateBulkIDs(ids); err != nil {
		return 0, err
	}
	affected, err := s.posts.DeleteMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("批量删除文章失败: %w", err)
	}
	s.logger.Info("批量删除文章", zap.Int("requested", len(ids)), zap.Int64("affected", affected))
	return affected, nil
}

func (s *postActionService) BulkRestore(ctx context.Context, ids []uint64) (int64, error) {
	if err := validateBulkIDs(ids); err != nil {
		return 0, err
	}
	affected, err := s.posts.Restore(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("批量恢复文章失败: %w", err)
	}
	s.logger.Info("批量恢复文章", zap.Int("requested", len(ids)), zap.Int64("affected", affected))
	return affected, nil
}

func (s *postActionService) BulkForceDelete(ctx context.Context, ids []uint64) (int64, error) {
	if err := validateBulkIDs(ids); err != nil {
		return 0, err
	}
	posts, err := s.posts.GetByIDsIncludingTrashed(ctx, ids, []string{"id", "image"})
	if err != nil {
		return 0, fmt.Errorf("查询待删除文章失败: %w", err)
	}

	affected, err := s.posts.ForceDelete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("批量物理删除文章失败: %w", err)
	}

	if s.storage != nil {
		for _, p := range posts {
			key := deref(p.Image)
			if key == "" {
				continue
			}
			if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
				s.logger.Warn("删除封面图失败，需要人工清理", zap.Uint64("postID", p.ID), zap.String("key", key), zap.Error(err))
			}
		}
	}
	s.logger.Info("批量物理删除文章", zap.Int("requested", len(ids)), zap.Int64("affected", affected))
	return affected, nil
}

func validateBulkIDs(ids []uint64) error {
	if len(ids) == 0 {
		return &myErrors.ValidationError{Field: "ids", Message: "is required"}
	}
	if len(ids) > constant.MaxBulkIDs {
		return &myErrors.ValidationError{Field: "ids", Message: fmt.Sprintf("must not contain more than %d ids", constant.MaxBulkIDs)}
	}
	for _, id := range ids {
		if id == 0 {
			return &myErrors.ValidationError{Field: "ids", Message: "must contain positive integers"}
		}
	}
	return nil
}

// wrapPostErr 记录不存在统一转为 PostNotFound。
func wrapPostErr(action string, id uint64, err error) error {
	err = notFoundAs(err, myErrors.ErrPostNotFound(id))
	return fmt.Errorf("%s: %w", action, err)
}
