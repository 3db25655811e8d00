package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Xushengqwer/blog_service/constant"
)

// FileStorage 存放文章封面图。数据库里只保存 Store 返回的对象 key。
type FileStorage interface {
	Store(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// ImageUpload 是一次封面图上传，由控制器从 multipart 表单构造。
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// imageObjectKey 生成 post_images/YYYYMMDD/<userID>_<uuid>.<ext>
func imageObjectKey(filename string, userID uint64, now time.Time) string {
	return fmt.Sprintf("%s%s/%d_%s%s",
		constant.COSObjectKeyPrefixPostImages,
		now.Format("20060102"),
		userID,
		uuid.NewString(),
		strings.ToLower(filepath.Ext(filename)),
	)
}

// storageURL 在没有配置存储时返回 nil，VO 中不生成图片地址。
func storageURL(storage FileStorage) func(string) string {
	if storage == nil {
		return nil
	}
	return storage.URL
}
