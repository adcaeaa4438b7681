// internal/app/app.go
package app

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Corphon/DocSummarizerMCP/internal/config"
	"github.com/Corphon/DocSummarizerMCP/internal/di"
	"github.com/Corphon/DocSummarizerMCP/internal/services"
)

// App 表示应用程序实例
type App struct {
	stopChan chan struct{}
}

var (
	instance *App
	appOnce  sync.Once
)

// GetApp 获取应用实例（单例模式）
func GetApp() *App {
	appOnce.Do(func() {
		instance = &App{
			stopChan: make(chan struct{}),
		}
	})
	return instance
}

// InitServices 按依赖顺序初始化所有服务并注册到容器
func InitServices() error {
	container := di.GetContainer()
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		return fmt.Errorf("配置系统未初始化")
	}

	// 词典服务没有依赖，最先创建
	lexiconService := services.NewLexiconService(cfg.LexiconFile)
	container.Register("lexicon", lexiconService)

	// 摘要服务依赖词典构建的情感分析器
	summaryService := services.NewSummaryService(lexiconService.Analyzer())
	container.Register("summary", summaryService)

	// 其他必要服务
	container.Register("config", services.NewConfigService())
	container.Register("stats", services.NewStatsService(filepath.Join(cfg.DataDir, "stats")))
	container.Register("progress", services.NewProgressService())

	return nil
}

// Shutdown 停止后台任务
func (a *App) Shutdown() {
	container := di.GetContainer()
	if statsService, ok := container.Get("stats").(*services.StatsService); ok {
		statsService.Close()
	}
	close(a.stopChan)
}
