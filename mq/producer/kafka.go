package producer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/repo/event"
)

// MessageWriter 是 kafka.Writer 中生产者用到的部分。
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer MessageWriter
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return NewKafkaProducerWithWriter(writer, cfg.Topics, logger)
}

// NewKafkaProducerWithWriter 使用给定的 writer 创建生产者。
func NewKafkaProducerWithWriter(writer MessageWriter, topics config.Topics, logger *zap.Logger) *KafkaProducer {
	return &KafkaProducer{writer: writer, logger: logger, topics: topics}
}

// SendEvent 把事件序列化为 JSON 后发送到指定主题，key 用于分区。
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, key string, evt any) error {
	eventBytes, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
		return err
	}
	p.logger.Info("Kafka 消息发送成功", zap.String("topic", topic))
	return nil
}

// SendRepositoryChanged 发送仓库变更事件，以命名空间作分区 key，保证同一命名空间的事件有序。
func (p *KafkaProducer) SendRepositoryChanged(ctx context.Context, evt event.RepositoryChanged) error {
	return p.SendEvent(ctx, p.topics.RepositoryChanged, evt.Namespace, evt)
}

// Close 关闭底层 writer，刷出缓冲中的消息。
func (p *KafkaProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		return err
	}
	return nil
}
