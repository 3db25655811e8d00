package constant

import "time"

// 分页
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
	DefaultPage    = 1
)

// PaginationOptions 是后台列表可选的每页条数。
var PaginationOptions = []int{10, 15, 25, 50, 100}

// 首页各信息流的默认条数
const (
	LatestPostsLimit   = 6
	FeaturedPostsLimit = 4
	TrendingPostsLimit = 6
	TrendingPostsDays  = 14
	FeedPostsLimit     = 6
	TopAuthorsLimit    = 4
	RelatedPostsLimit  = 3
)

// 批量操作
const MaxBulkIDs = 100

// ExcerptLength 是自动生成摘要时保留的字符数 (rune)。
const ExcerptLength = 160

// DuplicateTitleSuffix 追加在复制出的文章标题后。
const DuplicateTitleSuffix = " (Copy)"

// COSObjectKeyPrefixPostImages 是文章封面图在 COS 中的对象 key 前缀。
// 完整 key 形如 "post_images/20240501/12_<uuid>.png"
const COSObjectKeyPrefixPostImages = "post_images/"

// 定时任务
const (
	// FeedWarmupCronSpec 每 5 分钟预热一次首页信息流缓存。
	FeedWarmupCronSpec = "*/5 * * * *"
	// FeedWarmupTimeout 是单次预热的超时时间。
	FeedWarmupTimeout = 2 * time.Minute
)

// 事件投递
const (
	// EventPublishTimeout 是异步发送变更事件到 Kafka 的超时时间。
	EventPublishTimeout = 5 * time.Second
	// ConsumerHandleTimeout 是处理单条 Kafka 消息的超时时间。
	ConsumerHandleTimeout = 30 * time.Second
)
