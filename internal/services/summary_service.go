// internal/services/summary_service.go
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Corphon/DocSummarizerMCP/internal/config"
	"github.com/Corphon/DocSummarizerMCP/internal/errors"
	"github.com/Corphon/DocSummarizerMCP/internal/llm"
	"github.com/Corphon/DocSummarizerMCP/internal/models"
	"github.com/Corphon/DocSummarizerMCP/internal/quality"
	"github.com/Corphon/DocSummarizerMCP/internal/ranker"
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
	"github.com/Corphon/DocSummarizerMCP/internal/utils"
	"github.com/Corphon/DocSummarizerMCP/internal/viz"
)

// 抽象式摘要的系统提示
const abstractiveSystemPrompt = `You are an expert summarizer. ` +
	`Produce a concise, faithful summary of the document the user provides. ` +
	`Output only the summary text, no preamble.`

// SummaryService 摘要引擎的编排服务
// 各方法只读取输入文本并分配自己的中间产物，可安全并发调用，
// 同一文档的各方法结果相互独立、与执行顺序无关
type SummaryService struct {
	evaluator  *quality.Evaluator
	vizBuilder *viz.Builder

	// getProvider 可在测试中替换以模拟外部服务
	getProvider func(name string, cfg map[string]string) (llm.Provider, error)
}

// NewSummaryService 创建摘要服务
// 情感分析器以值方式注入质量评估与可视化两个消费方
func NewSummaryService(sentiment quality.SentimentAnalyzer) *SummaryService {
	return &SummaryService{
		evaluator:   quality.NewEvaluator(sentiment),
		vizBuilder:  viz.NewBuilder(sentiment),
		getProvider: llm.GetProvider,
	}
}

// SummarizeCentrality 图中心性方法
func (s *SummaryService) SummarizeCentrality(ctx context.Context, text string, count int) (*models.SummaryResult, error) {
	return s.runExtractive(ctx, models.MethodCentrality, text, count, ranker.Centrality)
}

// SummarizeEigenvector 幂迭代方法
func (s *SummaryService) SummarizeEigenvector(ctx context.Context, text string, count int) (*models.SummaryResult, error) {
	return s.runExtractive(ctx, models.MethodEigenvector, text, count, ranker.Eigenvector)
}

// SummarizeFrequency 词频方法
func (s *SummaryService) SummarizeFrequency(ctx context.Context, text string, count int) (*models.SummaryResult, error) {
	return s.runExtractive(ctx, models.MethodFrequency, text, count, ranker.Frequency)
}

// SummarizeByMethod 按方法标签分发
func (s *SummaryService) SummarizeByMethod(ctx context.Context, method, text string, count int) (*models.SummaryResult, error) {
	switch method {
	case models.MethodCentrality:
		return s.SummarizeCentrality(ctx, text, count)
	case models.MethodEigenvector:
		return s.SummarizeEigenvector(ctx, text, count)
	case models.MethodFrequency:
		return s.SummarizeFrequency(ctx, text, count)
	case models.MethodAbstractive:
		return s.SummarizeAbstractive(ctx, text, count)
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("未知的摘要方法: %s", method), nil)
	}
}

// SummarizeAll 并发运行多个方法，返回与 methods 顺序对齐的结果
// 任一方法失败则整个请求失败，不定义跨方法的部分结果
func (s *SummaryService) SummarizeAll(ctx context.Context, methods []string, text string, count int) ([]*models.SummaryResult, error) {
	results := make([]*models.SummaryResult, len(methods))
	errs := make([]error, len(methods))

	var wg sync.WaitGroup
	for i, method := range methods {
		wg.Add(1)
		go func(i int, method string) {
			defer wg.Done()
			results[i], errs[i] = s.SummarizeByMethod(ctx, method, text, count)
		}(i, method)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.WrapError(err, fmt.Sprintf("方法 %s 失败", methods[i]), errors.ErrorTypeError)
		}
	}
	return results, nil
}

// SummarizeAbstractive 调用外部LLM生成抽象式摘要
// 网络调用只尝试一次并受超时约束；任何失败（网络错误、非成功响应、
// 空响应）都降级为词频法结果，打上 fallback 标记，绝不把失败抛给调用方
func (s *SummaryService) SummarizeAbstractive(ctx context.Context, text string, count int) (*models.SummaryResult, error) {
	start := time.Now()
	cfg := config.GetCurrentConfig()
	logger := utils.GetLogger()

	provider, err := s.getProvider(cfg.LLMProvider, cfg.LLMConfig)
	if err != nil {
		logger.Warn("LLM提供者不可用，降级为词频法", map[string]interface{}{
			"provider": cfg.LLMProvider,
			"error":    err.Error(),
		})
		return s.fallback(ctx, text, count, start)
	}

	timeout := time.Duration(cfg.AbstractiveTimeoutSec) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// 文档截断到固定上限，目标长度区间由请求句数推出
	doc := text
	if len(doc) > cfg.MaxDocumentChars {
		doc = doc[:cfg.MaxDocumentChars]
	}
	prompt := fmt.Sprintf("Summarize the following document in %d to %d sentences:\n\n%s",
		count, count+1, doc)

	resp, err := provider.CompleteText(callCtx, llm.CompletionRequest{
		Prompt:       prompt,
		SystemPrompt: abstractiveSystemPrompt,
		MaxTokens:    count * 120,
		Temperature:  0.3,
	})
	if err != nil || resp == nil || strings.TrimSpace(resp.Text) == "" {
		// 失败原因归类后再记录，降级行为对所有类别一致
		switch {
		case err == nil:
			err = errors.NewUpstreamError("外部摘要服务返回空内容", nil)
		case stderrors.Is(err, context.DeadlineExceeded):
			err = errors.NewTimeoutError("外部摘要服务超时", err)
		default:
			err = errors.NewUpstreamError("外部摘要服务调用失败", err)
		}
		logger.Warn("抽象式摘要调用失败，降级为词频法", map[string]interface{}{
			"provider": cfg.LLMProvider,
			"error":    err.Error(),
		})
		utils.GetMetricsCollector().IncrementCounter("summarize.abstractive.fallback")
		return s.fallback(ctx, text, count, start)
	}

	summary := strings.TrimSpace(resp.Text)
	generated := textproc.Segment(summary)

	// 可视化仍基于原文句子，得分取词频法（抽象式方法本身不产生句子得分）
	sentences := textproc.Segment(text)
	ranking := ranker.Frequency(sentences, count)
	visualization := s.buildVisualization(sentences, ranking)

	result := &models.SummaryResult{
		Method:         models.MethodAbstractive,
		Provenance:     models.ProvenancePrimary,
		Summary:        summary,
		Sentences:      generated,
		ProcessingTime: time.Since(start),
		ProcessingMS:   float64(time.Since(start).Microseconds()) / 1000,
		Metrics:        s.evaluator.Evaluate(text, summary, generated),
		Visualization:  visualization,
	}
	s.record(models.MethodAbstractive, result.ProcessingTime)
	return result, nil
}

// fallback 抽象式方法失败时的本地降级路径
// 内容与词频法完全一致，只是方法标签与来源标记不同，
// 下游可据此提示可靠性下降
func (s *SummaryService) fallback(ctx context.Context, text string, count int, start time.Time) (*models.SummaryResult, error) {
	result, err := s.SummarizeFrequency(ctx, text, count)
	if err != nil {
		return nil, err
	}
	result.Method = models.MethodFrequencyFallback
	result.Provenance = models.ProvenanceFallback
	result.ProcessingTime = time.Since(start)
	result.ProcessingMS = float64(time.Since(start).Microseconds()) / 1000
	return result, nil
}

// runExtractive 三个本地抽取式方法的共同骨架
func (s *SummaryService) runExtractive(ctx context.Context, method, text string, count int,
	rank func([]string, int) *ranker.Ranking) (*models.SummaryResult, error) {

	if count < 1 {
		return nil, errors.NewValidationError("请求句数必须不小于1", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	sentences := textproc.Segment(text)
	ranking := rank(sentences, count)

	selected := make([]string, 0, len(ranking.Selected))
	for _, idx := range ranking.Selected {
		selected = append(selected, sentences[idx])
	}

	summary := ""
	if len(selected) > 0 {
		summary = strings.Join(selected, ". ") + "."
	}

	result := &models.SummaryResult{
		Method:         method,
		Provenance:     models.ProvenancePrimary,
		Summary:        summary,
		Sentences:      selected,
		ProcessingTime: time.Since(start),
		ProcessingMS:   float64(time.Since(start).Microseconds()) / 1000,
		Metrics:        s.evaluator.Evaluate(text, summary, selected),
		Visualization:  s.buildVisualization(sentences, ranking),
	}
	s.record(method, result.ProcessingTime)
	return result, nil
}

// buildVisualization 补齐缺失的矩阵后构建可视化数据
// 词频法与短路路径下排序阶段没有矩阵，这里单独计算一次
func (s *SummaryService) buildVisualization(sentences []string, ranking *ranker.Ranking) *models.Visualization {
	matrix := ranking.Matrix
	if matrix == nil {
		matrix = textproc.BuildSimilarityMatrix(sentences)
	}
	return s.vizBuilder.Build(sentences, ranking.Scores, matrix)
}

func (s *SummaryService) record(method string, elapsed time.Duration) {
	metrics := utils.GetMetricsCollector()
	metrics.IncrementCounter("summarize." + method)
	metrics.RecordDuration("summarize."+method+".duration_ms", elapsed)
}
