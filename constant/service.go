package constant

const (
	ServiceName    = "blog-service"
	ServiceVersion = "1.0.0"
)
