// internal/quality/metrics.go
package quality

import (
	"github.com/Corphon/DocSummarizerMCP/internal/models"
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

// confidence 的加权配比
const (
	coverageWeight  = 0.4
	coherenceWeight = 0.3
	diversityWeight = 0.3
)

// Evaluator 计算摘要的质量信号
type Evaluator struct {
	sentiment SentimentAnalyzer
}

// NewEvaluator 创建质量评估器，情感分析器以值方式注入
func NewEvaluator(sentiment SentimentAnalyzer) *Evaluator {
	return &Evaluator{sentiment: sentiment}
}

// Evaluate 计算 coverage/coherence/diversity/confidence 与情感极性
// selected 必须是摘要内顺序的选中句子列表
// 四项标量均四舍五入到2位小数；coverage 不做上界截断，
// 抽象式摘要引入新词时可能超过1
func (e *Evaluator) Evaluate(original, summary string, selected []string) *models.QualityMetrics {
	coverage := e.coverage(original, summary)
	coherence := e.coherence(selected)
	diversity := e.diversity(summary)
	confidence := coverageWeight*coverage + coherenceWeight*coherence + diversityWeight*diversity

	return &models.QualityMetrics{
		Coverage:   round2(coverage),
		Coherence:  round2(coherence),
		Diversity:  round2(diversity),
		Confidence: round2(confidence),
		Sentiment:  e.sentiment.Analyze(summary),
	}
}

// coverage = 摘要唯一词元数 / 原文唯一词元数
func (e *Evaluator) coverage(original, summary string) float64 {
	originalUnique := uniqueTokens(original)
	if len(originalUnique) == 0 {
		return 0
	}
	return float64(len(uniqueTokens(summary))) / float64(len(originalUnique))
}

// coherence = 相邻选中句子的平均余弦相似度
// 少于2句时按完全连贯计为1
func (e *Evaluator) coherence(selected []string) float64 {
	if len(selected) < 2 {
		return 1
	}
	var sum float64
	for i := 0; i < len(selected)-1; i++ {
		sum += textproc.Similarity(selected[i], selected[i+1])
	}
	return sum / float64(len(selected)-1)
}

// diversity = 摘要唯一词元数 / 摘要总词元数
func (e *Evaluator) diversity(summary string) float64 {
	tokens := textproc.Tokenize(summary)
	if len(tokens) == 0 {
		return 0
	}
	return float64(len(uniqueTokens(summary))) / float64(len(tokens))
}

func uniqueTokens(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range textproc.Tokenize(text) {
		set[t] = struct{}{}
	}
	return set
}
