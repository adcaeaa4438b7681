// internal/api/router.go
package api

import (
	"fmt"

	"github.com/Corphon/DocSummarizerMCP/internal/config"
	"github.com/Corphon/DocSummarizerMCP/internal/di"
	"github.com/Corphon/DocSummarizerMCP/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置HTTP路由
func SetupRouter() (*gin.Engine, error) {
	// 获取配置
	cfg := config.GetCurrentConfig()

	// 获取依赖注入容器
	container := di.GetContainer()

	// ✅ 只从容器获取服务，不再创建新实例
	summaryService, ok := container.Get("summary").(*services.SummaryService)
	if !ok {
		return nil, fmt.Errorf("摘要服务未正确初始化")
	}

	configService, ok := container.Get("config").(*services.ConfigService)
	if !ok {
		return nil, fmt.Errorf("配置服务未正确初始化")
	}

	statsService, ok := container.Get("stats").(*services.StatsService)
	if !ok {
		return nil, fmt.Errorf("统计服务未正确初始化")
	}

	progressService, ok := container.Get("progress").(*services.ProgressService)
	if !ok {
		return nil, fmt.Errorf("进度服务未正确初始化")
	}

	// ✅ 创建API处理器 - 只传递从容器获取的服务
	handler := NewHandler(
		summaryService,
		configService,
		statsService,
		progressService,
	)

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	r := gin.Default()

	// 启用CORS
	r.Use(cors.Default())
	r.Use(RequestIDMiddleware())

	// ===============================
	// 健康检查
	// ===============================
	r.GET("/health", handler.Health)

	// WebSocket 支持
	r.GET("/ws/summarize/:id", handler.SummarizeWebSocket)
	r.GET("/ws/status", handler.GetWebSocketStatus)

	// ===============================
	// API 路由
	// ===============================
	apiGroup := r.Group("/api")
	apiGroup.Use(DefaultRateLimit())
	{
		// 摘要接口（O(n²)计算，限流更严）
		summarize := apiGroup.Group("")
		summarize.Use(SummarizeRateLimit())
		{
			summarize.POST("/summarize", handler.Summarize)
			summarize.POST("/summarize/async", handler.SummarizeAsync)
			summarize.POST("/upload", handler.Upload)
		}

		apiGroup.GET("/providers", handler.GetProviders)
		apiGroup.GET("/settings", handler.GetSettings)
		apiGroup.PUT("/settings", handler.UpdateSettings)
		apiGroup.GET("/stats", handler.GetStats)
	}

	return r, nil
}
