// internal/models/summary.go
package models

import "time"

// Provenance 表示摘要结果的来源类别
type Provenance string

const (
	// ProvenancePrimary 表示结果由请求的方法本身产生
	ProvenancePrimary Provenance = "primary"
	// ProvenanceFallback 表示外部抽象式方法失败后由本地降级路径产生
	ProvenanceFallback Provenance = "fallback"
)

// 方法标签常量
const (
	MethodCentrality        = "centrality"
	MethodEigenvector       = "eigenvector"
	MethodFrequency         = "frequency"
	MethodAbstractive       = "abstractive"
	MethodFrequencyFallback = "frequency_fallback"
)

// SummaryResult 表示单个摘要方法的最终产物
// 所有字段在构造完成后不再修改，仅在单次请求范围内存活
type SummaryResult struct {
	Method         string          `json:"method"`     // 方法标签
	Provenance     Provenance      `json:"provenance"` // primary / fallback
	Summary        string          `json:"summary"`    // 拼接后的摘要文本
	Sentences      []string        `json:"sentences"`  // 选中句子，始终按原文顺序
	ProcessingTime time.Duration   `json:"processing_time_ns"`
	ProcessingMS   float64         `json:"processing_ms"`
	Metrics        *QualityMetrics `json:"metrics"`
	Visualization  *Visualization  `json:"visualization,omitempty"`
}

// QualityMetrics 表示摘要的质量信号
// coverage/coherence/diversity/confidence 均已四舍五入到2位小数
type QualityMetrics struct {
	Coverage   float64         `json:"coverage"`
	Coherence  float64         `json:"coherence"`
	Diversity  float64         `json:"diversity"`
	Confidence float64         `json:"confidence"`
	Sentiment  *SentimentScore `json:"sentiment"`
}

// SentimentScore 表示词典法情感打分的输出
type SentimentScore struct {
	Score       int      `json:"score"`       // 原始整数得分
	Comparative float64  `json:"comparative"` // 按词数归一化后的得分（2位小数）
	Positive    []string `json:"positive"`    // 命中的正向词
	Negative    []string `json:"negative"`    // 命中的负向词
}
