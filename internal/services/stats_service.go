// internal/services/stats_service.go
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Corphon/DocSummarizerMCP/internal/utils"
)

// UsageStats 表示摘要接口的使用统计
type UsageStats struct {
	TodayRequests  int            `json:"today_requests"`
	TotalRequests  int            `json:"total_requests"`
	MethodRequests map[string]int `json:"method_requests"` // 按方法标签计数
	DailyStats     map[string]int `json:"daily_stats"`
	LastUpdated    time.Time      `json:"last_updated"`
}

// StatsService 提供使用统计功能
// 统计数据定期批量落盘，摘要结果本身不做任何持久化
type StatsService struct {
	BasePath    string
	statsFile   string
	mutex       sync.Mutex
	cachedStats *UsageStats

	// 批量保存控制
	isDirty      bool
	lastSaveTime time.Time
	saveInterval time.Duration
	stopChan     chan struct{}
}

// NewStatsService 创建统计服务实例
func NewStatsService(basePath string) *StatsService {
	if basePath == "" {
		basePath = "data/stats"
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		fmt.Printf("Warning: Failed to create stats directory: %v\n", err)
	}

	service := &StatsService{
		BasePath:     basePath,
		statsFile:    filepath.Join(basePath, "usage_stats.json"),
		saveInterval: 30 * time.Second,
		stopChan:     make(chan struct{}),
	}

	service.startPeriodicSave()

	return service
}

// RecordRequest 记录一次摘要请求
func (s *StatsService) RecordRequest(method string, elapsed time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ensureStatsUnlocked()

	today := time.Now().Format("2006-01-02")
	if s.cachedStats.LastUpdated.Format("2006-01-02") != today {
		s.cachedStats.TodayRequests = 0
	}

	s.cachedStats.TodayRequests++
	s.cachedStats.TotalRequests++
	s.cachedStats.MethodRequests[method]++
	s.cachedStats.DailyStats[today]++
	s.cachedStats.LastUpdated = time.Now()
	s.isDirty = true

	utils.GetMetricsCollector().RecordDuration("stats.request."+method, elapsed)
}

// GetStats 返回统计数据的副本
func (s *StatsService) GetStats() *UsageStats {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ensureStatsUnlocked()

	statsCopy := *s.cachedStats
	statsCopy.MethodRequests = make(map[string]int, len(s.cachedStats.MethodRequests))
	for k, v := range s.cachedStats.MethodRequests {
		statsCopy.MethodRequests[k] = v
	}
	statsCopy.DailyStats = make(map[string]int, len(s.cachedStats.DailyStats))
	for k, v := range s.cachedStats.DailyStats {
		statsCopy.DailyStats[k] = v
	}
	return &statsCopy
}

// Close 停止后台保存并落盘
func (s *StatsService) Close() {
	close(s.stopChan)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.isDirty && s.cachedStats != nil {
		s.saveStatsUnlocked()
	}
}

// ensureStatsUnlocked 初始化统计数据（调用方需持锁）
func (s *StatsService) ensureStatsUnlocked() {
	if s.cachedStats != nil {
		return
	}

	// 尝试加载现有数据
	if data, err := os.ReadFile(s.statsFile); err == nil {
		var loaded UsageStats
		if json.Unmarshal(data, &loaded) == nil {
			if loaded.MethodRequests == nil {
				loaded.MethodRequests = make(map[string]int)
			}
			if loaded.DailyStats == nil {
				loaded.DailyStats = make(map[string]int)
			}
			s.cachedStats = &loaded
			return
		}
	}

	s.cachedStats = &UsageStats{
		MethodRequests: make(map[string]int),
		DailyStats:     make(map[string]int),
		LastUpdated:    time.Now(),
	}
}

// startPeriodicSave 启动定期保存
func (s *StatsService) startPeriodicSave() {
	go func() {
		ticker := time.NewTicker(s.saveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.mutex.Lock()
				if s.isDirty && s.cachedStats != nil {
					if err := s.saveStatsUnlocked(); err != nil {
						fmt.Printf("警告: 保存统计数据失败: %v\n", err)
					} else {
						s.isDirty = false
						s.lastSaveTime = time.Now()
					}
				}
				s.mutex.Unlock()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// saveStatsUnlocked 保存统计数据（调用方需持锁）
func (s *StatsService) saveStatsUnlocked() error {
	data, err := json.MarshalIndent(s.cachedStats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.statsFile, data, 0644)
}
