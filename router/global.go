package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/controller"
)

// SetupRouter 配置 Gin 引擎、全局中间件和路由。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.BlogConfig,
	postAdminController *controller.PostAdminController,
	taxonomyAdminController *controller.TaxonomyAdminController,
	blogController *controller.BlogController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	router := gin.New()

	// 中间件顺序: 追踪 -> panic 恢复 -> 访问日志 -> 超时 -> 用户上下文
	router.Use(otelgin.Middleware(constant.ServiceName))
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))
	router.Use(commonMiddleware.UserContextMiddleware())
	logger.Debug("已注册全局中间件")

	admin := router.Group("/api/v1/admin")
	postAdminController.RegisterRoutes(admin)
	taxonomyAdminController.RegisterRoutes(admin)

	blog := router.Group("/api/v1/blog")
	blogController.RegisterRoutes(blog)
	logger.Info("控制器路由已注册", zap.Strings("groups", []string{"/api/v1/admin", "/api/v1/blog"}))

	// 访问 /swagger/index.html 查看接口文档
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
