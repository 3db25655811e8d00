package consumer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/event"
)

// ChangeHandler 消费其他实例发出的仓库变更事件，递增本地缓存版本号 (含依赖的命名空间)。
// 自己发出的事件已经由本地事件总线处理过，直接跳过。
type ChangeHandler struct {
	invalidator cache.Invalidator
	origin      string
	logger      *zap.Logger
}

var _ MessageHandler = (*ChangeHandler)(nil)

func NewChangeHandler(invalidator cache.Invalidator, origin string, logger *zap.Logger) *ChangeHandler {
	return &ChangeHandler{invalidator: invalidator, origin: origin, logger: logger}
}

func (h *ChangeHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var evt event.RepositoryChanged
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		h.logger.Error("反序列化仓库变更事件失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}
	if evt.Namespace == "" {
		h.logger.Warn("仓库变更事件缺少命名空间，已忽略", zap.String("eventID", evt.EventID))
		return nil
	}
	if evt.Origin == h.origin {
		return nil
	}

	h.logger.Debug("收到远端仓库变更事件",
		zap.String("eventID", evt.EventID),
		zap.String("namespace", evt.Namespace),
		zap.String("op", string(evt.Op)),
		zap.String("origin", evt.Origin))
	return event.BumpAffected(ctx, h.invalidator, evt.Namespace)
}
