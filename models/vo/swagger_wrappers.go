package vo

// swag 不支持泛型，这里为 response.APIResponse[T] 的每种 Data 定义具体包装器。

// PostPageResponseWrapper 对应 response.APIResponse[vo.PostPageVO]
type PostPageResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    PostPageVO `json:"data"`
}

// PostResponseWrapper 对应 response.APIResponse[vo.PostVO]
type PostResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    PostVO `json:"data"`
}

// PostListResponseWrapper 对应 response.APIResponse[[]vo.PostVO]
type PostListResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    []PostVO `json:"data"`
}

// PostDetailResponseWrapper 对应 response.APIResponse[vo.PostDetailVO]
type PostDetailResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    PostDetailVO `json:"data"`
}

// BulkResultResponseWrapper 对应 response.APIResponse[vo.BulkResultVO]
type BulkResultResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    BulkResultVO `json:"data"`
}

// TagPageResponseWrapper 对应 response.APIResponse[vo.TagPageVO]
type TagPageResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    TagPageVO `json:"data"`
}

// TagResponseWrapper 对应 response.APIResponse[vo.TagVO]
type TagResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    TagVO  `json:"data"`
}

// TagListResponseWrapper 对应 response.APIResponse[[]vo.TagVO]
type TagListResponseWrapper struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message,omitempty" example:"success"`
	Data    []TagVO `json:"data"`
}

// CategoryListResponseWrapper 对应 response.APIResponse[[]vo.CategoryVO]
type CategoryListResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    []CategoryVO `json:"data"`
}

// CategoryPageResponseWrapper 对应 response.APIResponse[vo.CategoryPageVO]
type CategoryPageResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    CategoryPageVO `json:"data"`
}

// AuthorListResponseWrapper 对应 response.APIResponse[[]vo.AuthorVO]
type AuthorListResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    []AuthorVO `json:"data"`
}

// BaseResponseWrapper 只包含 Code 和 Message，用于错误响应以及没有数据的成功响应。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}
