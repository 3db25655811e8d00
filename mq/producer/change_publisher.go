package producer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/repo/event"
)

// ChangePublisher 是事件总线的监听器，把本实例产生的变更事件异步转发到 Kafka。
// 发送在独立的 goroutine 中进行，不阻塞写请求；失败只记录日志。
type ChangePublisher struct {
	producer *KafkaProducer
	logger   *zap.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

var _ event.Listener = (*ChangePublisher)(nil)

func NewChangePublisher(producer *KafkaProducer, logger *zap.Logger) *ChangePublisher {
	return &ChangePublisher{producer: producer, logger: logger, timeout: constant.EventPublishTimeout}
}

func (p *ChangePublisher) Handle(ctx context.Context, evt event.RepositoryChanged) error {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()
		if err := p.producer.SendRepositoryChanged(sendCtx, evt); err != nil {
			p.logger.Error("转发仓库变更事件失败",
				zap.String("eventID", evt.EventID),
				zap.String("namespace", evt.Namespace),
				zap.Error(err))
		}
	}()
	return nil
}

// Wait 等待所有进行中的发送结束，关闭生产者之前调用。
func (p *ChangePublisher) Wait() {
	p.wg.Wait()
}
