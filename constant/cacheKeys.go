package constant

// 缓存与事件使用的命名空间，每种实体一个。
const (
	NamespacePost     = "post"
	NamespaceUser     = "user"
	NamespaceTag      = "tag"
	NamespaceCategory = "category"
)

// DefaultCachePrefix 是未配置前缀时缓存 key 使用的前缀。
// 完整的条目 key 形如 "repo:post:find:<args>:v3"，
// 版本号 key 形如 "repo:post:version"。
const DefaultCachePrefix = "repo"
