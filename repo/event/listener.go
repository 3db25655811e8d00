package event

import (
	"context"
	"errors"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/repo/cache"
)

// dependentNamespaces 记录哪些命名空间的缓存读依赖另一个命名空间的数据。
// 标签云、分类列表和热门作者按已发布文章聚合，文章读取会预加载作者、分类和标签。
var dependentNamespaces = map[string][]string{
	constant.NamespacePost:     {constant.NamespaceTag, constant.NamespaceCategory, constant.NamespaceUser},
	constant.NamespaceTag:      {constant.NamespacePost},
	constant.NamespaceCategory: {constant.NamespacePost},
	constant.NamespaceUser:     {constant.NamespacePost},
}

// AffectedNamespaces 返回一次写操作需要失效的命名空间，第一个总是写操作本身的命名空间。
func AffectedNamespaces(namespace string) []string {
	return append([]string{namespace}, dependentNamespaces[namespace]...)
}

// BumpAffected 递增写操作影响到的全部命名空间版本号。单个失败不影响其余命名空间。
func BumpAffected(ctx context.Context, inv cache.Invalidator, namespace string) error {
	var errs []error
	for _, ns := range AffectedNamespaces(namespace) {
		if err := inv.Bump(ctx, ns); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// VersionBumpListener 收到变更事件后递增对应命名空间及其依赖方的缓存版本号。
func VersionBumpListener(inv cache.Invalidator) Listener {
	return ListenerFunc(func(ctx context.Context, evt RepositoryChanged) error {
		return BumpAffected(ctx, inv, evt.Namespace)
	})
}
