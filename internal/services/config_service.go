// internal/services/config_service.go
package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Corphon/DocSummarizerMCP/internal/config"
)

// ConfigService 提供配置管理功能
type ConfigService struct {
	// 缓存最近获取的配置，减少反复访问底层存储
	cachedConfig *config.AppConfig

	// 配置更新时间
	lastUpdated time.Time

	// 配置变更事件订阅者
	subscribers []ConfigChangeSubscriber

	// 互斥锁保护内部状态
	mu sync.RWMutex
}

// ConfigChangeSubscriber 配置变更订阅者接口
type ConfigChangeSubscriber interface {
	OnConfigChanged(oldConfig, newConfig *config.AppConfig)
}

// NewConfigService 创建配置服务实例
func NewConfigService() *ConfigService {
	service := &ConfigService{
		lastUpdated: time.Now(),
		subscribers: make([]ConfigChangeSubscriber, 0),
	}

	// 初始化时加载配置到缓存
	service.cachedConfig = config.GetCurrentConfig()

	return service
}

// GetCurrentConfig 获取当前配置
func (s *ConfigService) GetCurrentConfig() *config.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cachedConfig == nil {
		return config.GetCurrentConfig()
	}

	return s.cachedConfig
}

// Subscribe 注册配置变更订阅者
func (s *ConfigService) Subscribe(sub ConfigChangeSubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// UpdateLLMConfig 更新LLM提供商和配置
func (s *ConfigService) UpdateLLMConfig(provider string, configMap map[string]string) error {
	if provider == "" {
		return errors.New("provider cannot be empty")
	}

	// 确保必需的配置项存在
	if _, ok := configMap["api_key"]; !ok {
		log.Println("Warning: LLM config missing api_key")
	}

	// 确保有默认模型
	if _, ok := configMap["default_model"]; !ok {
		switch provider {
		case "openai":
			configMap["default_model"] = "gpt-4o-mini"
		case "anthropic":
			configMap["default_model"] = "claude-3-5-haiku-latest"
		case "openrouter":
			configMap["default_model"] = "openai/gpt-4o-mini"
		}
	}

	s.mu.Lock()
	oldConfig := s.cachedConfig

	if err := config.UpdateLLMConfig(provider, configMap); err != nil {
		s.mu.Unlock()
		return err
	}

	s.cachedConfig = config.GetCurrentConfig()
	s.lastUpdated = time.Now()
	newConfig := s.cachedConfig
	subscribers := append([]ConfigChangeSubscriber{}, s.subscribers...)
	s.mu.Unlock()

	// 在锁外通知订阅者
	for _, sub := range subscribers {
		sub.OnConfigChanged(oldConfig, newConfig)
	}

	return nil
}
