// internal/quality/metrics_test.go
package quality

import (
	"math"
	"testing"

	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(NewSentimentAnalyzer(nil))
}

// TestCoherenceVacuous 少于2个选中句子时 coherence 为1
func TestCoherenceVacuous(t *testing.T) {
	e := newTestEvaluator()

	metrics := e.Evaluate("Cats are mammals. Dogs bark loudly.", "Cats are mammals.", []string{"Cats are mammals"})
	if metrics.Coherence != 1 {
		t.Errorf("单句摘要期望 coherence=1，实际 %v", metrics.Coherence)
	}

	metrics = e.Evaluate("Cats are mammals.", "", nil)
	if metrics.Coherence != 1 {
		t.Errorf("空摘要期望 coherence=1，实际 %v", metrics.Coherence)
	}
}

// TestCoherenceComputed 两句以上时应用实际公式而不是短路值
func TestCoherenceComputed(t *testing.T) {
	e := newTestEvaluator()

	selected := []string{
		"Cats are mammals in nature",
		"Dogs are mammals too really",
		"Birds can fly very high",
	}
	summary := "Cats are mammals in nature. Dogs are mammals too really. Birds can fly very high."
	metrics := e.Evaluate(summary, summary, selected)

	// 手工重算相邻对的平均相似度
	want := (textproc.Similarity(selected[0], selected[1]) +
		textproc.Similarity(selected[1], selected[2])) / 2
	want = math.Round(want*100) / 100

	if metrics.Coherence != want {
		t.Errorf("coherence 期望 %v，实际 %v", want, metrics.Coherence)
	}
	if metrics.Coherence == 1 {
		t.Error("多句摘要不应落入短路值1")
	}
}

// TestCoverageExtractive 抽取式摘要的 coverage 必然不超过1
func TestCoverageExtractive(t *testing.T) {
	e := newTestEvaluator()

	original := "Cats are mammals. Dogs are mammals too. Birds can fly."
	summary := "Cats are mammals."
	metrics := e.Evaluate(original, summary, []string{"Cats are mammals"})

	if metrics.Coverage <= 0 || metrics.Coverage > 1 {
		t.Errorf("coverage %v 超出抽取式摘要的自然范围", metrics.Coverage)
	}

	// 全文作为摘要时 coverage 应为1
	metrics = e.Evaluate(original, original, textproc.Segment(original))
	if metrics.Coverage != 1 {
		t.Errorf("全文摘要期望 coverage=1，实际 %v", metrics.Coverage)
	}
}

// TestDiversityTypeTokenRatio diversity 是类符/形符比
func TestDiversityTypeTokenRatio(t *testing.T) {
	e := newTestEvaluator()

	// 4个词元，3个唯一（"word" 重复）
	metrics := e.Evaluate("word other word things", "word other word things", nil)
	if metrics.Diversity != 0.75 {
		t.Errorf("diversity 期望 0.75，实际 %v", metrics.Diversity)
	}
}

// TestConfidenceBlend confidence 是固定权重的加权和
func TestConfidenceBlend(t *testing.T) {
	e := newTestEvaluator()

	original := "Cats are mammals. Dogs are mammals too. Birds can fly high."
	summary := "Cats are mammals. Dogs are mammals too."
	selected := []string{"Cats are mammals", "Dogs are mammals too"}
	metrics := e.Evaluate(original, summary, selected)

	// 用未舍入的中间值重算会产生微小偏差，这里从舍入后的值验证量级
	want := 0.4*metrics.Coverage + 0.3*metrics.Coherence + 0.3*metrics.Diversity
	if math.Abs(metrics.Confidence-want) > 0.02 {
		t.Errorf("confidence %v 与权重混合 %v 偏差过大", metrics.Confidence, want)
	}
}

// TestMetricsRounding 四项标量均舍入到2位小数
func TestMetricsRounding(t *testing.T) {
	e := newTestEvaluator()

	original := "Cats are mammals. Dogs are mammals too. Birds can fly. Fish live in water."
	summary := "Cats are mammals. Dogs are mammals too."
	selected := []string{"Cats are mammals", "Dogs are mammals too"}
	metrics := e.Evaluate(original, summary, selected)

	for name, v := range map[string]float64{
		"coverage":   metrics.Coverage,
		"coherence":  metrics.Coherence,
		"diversity":  metrics.Diversity,
		"confidence": metrics.Confidence,
	} {
		if math.Round(v*100)/100 != v {
			t.Errorf("%s=%v 未舍入到2位小数", name, v)
		}
	}
}

// TestSentimentAnalyzer 词典法情感打分
func TestSentimentAnalyzer(t *testing.T) {
	a := NewSentimentAnalyzer(nil)

	result := a.Analyze("This is a great and wonderful success")
	if result.Score <= 0 {
		t.Errorf("正向文本期望正得分，实际 %d", result.Score)
	}
	if len(result.Positive) != 3 {
		t.Errorf("期望命中3个正向词，实际 %v", result.Positive)
	}
	if len(result.Negative) != 0 {
		t.Errorf("不应命中负向词，实际 %v", result.Negative)
	}

	result = a.Analyze("A terrible failure and awful disaster")
	if result.Score >= 0 {
		t.Errorf("负向文本期望负得分，实际 %d", result.Score)
	}
	if len(result.Negative) == 0 {
		t.Error("应命中负向词")
	}
}

// TestSentimentComparative comparative 按词数归一化并舍入到2位小数
func TestSentimentComparative(t *testing.T) {
	lexicon := map[string]int{"good": 3}
	a := NewSentimentAnalyzer(lexicon)

	// 3分 / 3词元 = 1.00
	result := a.Analyze("good good day")
	if result.Score != 6 {
		t.Errorf("期望原始得分6，实际 %d", result.Score)
	}
	if result.Comparative != 2.0 {
		t.Errorf("期望 comparative=2.0，实际 %v", result.Comparative)
	}

	if math.Round(result.Comparative*100)/100 != result.Comparative {
		t.Errorf("comparative=%v 未舍入到2位小数", result.Comparative)
	}
}

// TestSentimentEmpty 空文本的情感分数为零值
func TestSentimentEmpty(t *testing.T) {
	a := NewSentimentAnalyzer(nil)
	result := a.Analyze("")

	if result.Score != 0 || result.Comparative != 0 {
		t.Errorf("空文本期望零分，实际 score=%d comparative=%v", result.Score, result.Comparative)
	}
	if len(result.Positive) != 0 || len(result.Negative) != 0 {
		t.Error("空文本不应命中任何词")
	}
}
