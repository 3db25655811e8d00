package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
)

// COSStorage 把文章封面图存放在腾讯云 COS，实现 service.FileStorage。
// 数据库中只保存对象 key，对外访问地址由 URL 拼接。
type COSStorage struct {
	client     *cos.Client
	publicBase *url.URL
	logger     *zap.Logger
}

// InitCOS 初始化腾讯云 COS 存储。
func InitCOS(cfg *config.COSConfig, logger *zap.Logger) (*COSStorage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("COS 配置不能为nil")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		logger.Error("COS 配置不完整", zap.String("bucket", cfg.BucketName), zap.String("region", cfg.Region))
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	bucketURL, err := url.Parse(fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL 失败: %w", err)
	}

	publicBase := bucketURL
	if cfg.BaseURL != "" {
		if publicBase, err = url.Parse(cfg.BaseURL); err != nil {
			logger.Error("解析 COS 公共访问 BaseURL 失败", zap.String("baseURL", cfg.BaseURL), zap.Error(err))
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			// 出站请求带上追踪上下文
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	})

	logger.Info("COS 存储初始化成功",
		zap.String("bucket", cfg.BucketName),
		zap.String("region", cfg.Region),
		zap.String("publicBase", publicBase.String()),
	)
	return NewCOSStorage(client, publicBase, logger), nil
}

// NewCOSStorage 用现成的 cos.Client 构造存储，测试中可指向 httptest 服务。
func NewCOSStorage(client *cos.Client, publicBase *url.URL, logger *zap.Logger) *COSStorage {
	return &COSStorage{client: client, publicBase: publicBase, logger: logger}
}

// Store 上传对象并返回对象 key。
func (s *COSStorage) Store(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}

	resp, err := s.client.Object.Put(ctx, key, reader, opts)
	if err != nil {
		s.logger.Error("COS 文件上传失败", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("上传文件 '%s' 到 COS 失败: %w", key, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", s.statusError("上传", key, resp)
	}

	s.logger.Info("COS 文件上传成功", zap.String("key", key), zap.Int64("size", size))
	return key, nil
}

// Delete 删除对象。对象不存在 (404) 视为成功。
func (s *COSStorage) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return nil
	}
	resp, err := s.client.Object.Delete(ctx, key)
	if err != nil {
		if cos.IsNotFoundError(err) {
			return nil
		}
		s.logger.Error("COS 对象删除失败", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("从 COS 删除对象 '%s' 失败: %w", key, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		s.logger.Info("COS 对象删除成功", zap.String("key", key))
		return nil
	}
	return s.statusError("删除", key, resp)
}

// URL 返回对象的公开访问地址。
func (s *COSStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	basePath := s.publicBase.Path
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	u := *s.publicBase
	u.Path = basePath + strings.TrimPrefix(key, "/")
	return u.String()
}

func (s *COSStorage) statusError(action, key string, resp *cos.Response) error {
	body, _ := io.ReadAll(resp.Body)
	s.logger.Error("COS 返回非成功状态码",
		zap.String("action", action),
		zap.String("key", key),
		zap.Int("status", resp.StatusCode),
		zap.String("body", string(body)),
	)
	return fmt.Errorf("COS %s失败，状态码: %d, 响应: %s", action, resp.StatusCode, string(body))
}
