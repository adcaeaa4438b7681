// internal/services/lexicon_service.go
package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/Corphon/DocSummarizerMCP/internal/quality"
	"github.com/Corphon/DocSummarizerMCP/internal/storage"
	"github.com/Corphon/DocSummarizerMCP/internal/utils"
)

// LexiconService 提供情感词典加载功能
// 支持 AFINN 格式的外部词典文件（每行 "词\t权重"），
// 文件缺失或解析失败时退回内置词典
type LexiconService struct {
	lexiconFile string
	cache       *storage.FileCacheService
}

// NewLexiconService 创建词典服务
func NewLexiconService(lexiconFile string) *LexiconService {
	return &LexiconService{
		lexiconFile: lexiconFile,
		cache:       storage.NewFileCacheService(10, 30*time.Minute),
	}
}

// Load 返回情感词典
func (s *LexiconService) Load() map[string]int {
	if s.lexiconFile == "" {
		return quality.DefaultLexicon()
	}

	lines, err := s.cache.ReadLines(s.lexiconFile)
	if err != nil {
		utils.GetLogger().Warn("读取词典文件失败，使用内置词典", map[string]interface{}{
			"file":  s.lexiconFile,
			"error": err.Error(),
		})
		return quality.DefaultLexicon()
	}

	lexicon := make(map[string]int, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			continue
		}
		if weight, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			lexicon[strings.ToLower(strings.TrimSpace(parts[0]))] = weight
		}
	}

	if len(lexicon) == 0 {
		return quality.DefaultLexicon()
	}
	return lexicon
}

// Analyzer 基于当前词典构建情感分析器
func (s *LexiconService) Analyzer() quality.SentimentAnalyzer {
	return quality.NewSentimentAnalyzer(s.Load())
}
