// internal/quality/sentiment.go
package quality

import (
	"math"
	"strings"

	"github.com/Corphon/DocSummarizerMCP/internal/models"
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

// SentimentAnalyzer 词典法情感分析器
// 值类型，无共享可变状态，可安全并发使用
type SentimentAnalyzer struct {
	lexicon map[string]int
}

// NewSentimentAnalyzer 创建情感分析器
// lexicon 为 nil 时使用内置默认词典
func NewSentimentAnalyzer(lexicon map[string]int) SentimentAnalyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return SentimentAnalyzer{lexicon: lexicon}
}

// Analyze 对文本做一次极性打分
// 返回原始整数得分、按词数归一化的 comparative（2位小数）
// 以及命中的正负向词列表
func (a SentimentAnalyzer) Analyze(text string) *models.SentimentScore {
	tokens := textproc.Tokenize(text)

	result := &models.SentimentScore{
		Positive: []string{},
		Negative: []string{},
	}

	for _, token := range tokens {
		word := strings.Trim(token, ".,!?;:\"'()[]")
		weight, ok := a.lexicon[word]
		if !ok {
			continue
		}
		result.Score += weight
		if weight > 0 {
			result.Positive = append(result.Positive, word)
		} else if weight < 0 {
			result.Negative = append(result.Negative, word)
		}
	}

	if len(tokens) > 0 {
		result.Comparative = round2(float64(result.Score) / float64(len(tokens)))
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
