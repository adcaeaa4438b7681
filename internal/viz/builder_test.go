// internal/viz/builder_test.go
package viz

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Corphon/DocSummarizerMCP/internal/quality"
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

func newTestBuilder() *Builder {
	return NewBuilder(quality.NewSentimentAnalyzer(nil))
}

// TestGraphNodeCap 超过25个句子时图节点恰好封顶在25
func TestGraphNodeCap(t *testing.T) {
	b := newTestBuilder()

	sentences := make([]string, 30)
	scores := make([]float64, 30)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("Sentence number %d talks about different topics entirely", i)
		scores[i] = float64(30 - i)
	}
	matrix := textproc.BuildSimilarityMatrix(sentences)

	viz := b.Build(sentences, scores, matrix)
	if len(viz.Nodes) != 25 {
		t.Fatalf("期望恰好25个节点，实际 %d", len(viz.Nodes))
	}

	// 得分最高的25句应当入图，即索引0..24
	seen := make(map[int]bool)
	for _, node := range viz.Nodes {
		seen[node.ID] = true
	}
	for i := 0; i < 25; i++ {
		if !seen[i] {
			t.Errorf("高分句子 %d 未进入图中", i)
		}
	}
	for i := 25; i < 30; i++ {
		if seen[i] {
			t.Errorf("低分句子 %d 不应进入图中", i)
		}
	}
}

// TestGraphExactCount 不足25句时节点数等于句子数
func TestGraphExactCount(t *testing.T) {
	b := newTestBuilder()

	sentences := []string{
		"Cats are mammals in nature",
		"Dogs are mammals too really",
		"Birds can fly very high",
	}
	scores := []float64{0.3, 0.2, 0.1}
	matrix := textproc.BuildSimilarityMatrix(sentences)

	viz := b.Build(sentences, scores, matrix)
	if len(viz.Nodes) != 3 {
		t.Fatalf("期望3个节点，实际 %d", len(viz.Nodes))
	}
}

// TestGraphEdges 边需超过阈值，不含自环，且只连向入图节点
func TestGraphEdges(t *testing.T) {
	b := newTestBuilder()

	sentences := []string{
		"alpha beta gamma delta epsilon",
		"alpha beta gamma delta zeta",
		"completely unrelated words entirely",
	}
	scores := []float64{3, 2, 1}
	// 手工矩阵：0-1强相关，0-2弱于阈值
	matrix := [][]float64{
		{0, 0.8, 0.05},
		{0.8, 0, 0.05},
		{0.05, 0.05, 0},
	}

	viz := b.Build(sentences, scores, matrix)
	for _, node := range viz.Nodes {
		for _, conn := range node.Connections {
			if conn.Target == node.ID {
				t.Errorf("节点 %d 存在自环", node.ID)
			}
			if conn.Weight <= 0.1 {
				t.Errorf("节点 %d 的边权 %v 低于阈值", node.ID, conn.Weight)
			}
		}
	}

	// 节点0应只有指向1的一条边
	for _, node := range viz.Nodes {
		if node.ID != 0 {
			continue
		}
		if len(node.Connections) != 1 || node.Connections[0].Target != 1 {
			t.Errorf("节点0的连接期望 [1]，实际 %+v", node.Connections)
		}
	}
}

// TestGraphPreviewTruncation 节点文本截断到100字符
func TestGraphPreviewTruncation(t *testing.T) {
	b := newTestBuilder()

	long := strings.Repeat("word ", 40) // 200字符
	sentences := []string{long, "Short sentence stays whole"}
	scores := []float64{1, 0.5}
	matrix := textproc.BuildSimilarityMatrix(sentences)

	viz := b.Build(sentences, scores, matrix)
	for _, node := range viz.Nodes {
		if len(node.Text) > 100 {
			t.Errorf("节点 %d 预览长度 %d 超过100", node.ID, len(node.Text))
		}
	}
	if viz.Nodes[1].Text != "Short sentence stays whole" {
		t.Errorf("短句不应被截断，实际 %q", viz.Nodes[1].Text)
	}
}

// TestGraphPreviewMultibyte 多字节文本按字符截断，不产生无效UTF-8
func TestGraphPreviewMultibyte(t *testing.T) {
	b := newTestBuilder()

	long := strings.Repeat("日", 120) // 360字节，120个字符
	sentences := []string{long}
	scores := []float64{1}
	matrix := textproc.BuildSimilarityMatrix(sentences)

	viz := b.Build(sentences, scores, matrix)
	text := viz.Nodes[0].Text
	if !utf8.ValidString(text) {
		t.Fatalf("节点预览不是合法UTF-8: %q", text)
	}
	if utf8.RuneCountInString(text) != 100 {
		t.Errorf("预览期望100个字符，实际 %d", utf8.RuneCountInString(text))
	}
}

// TestClustersLimit 主题簇最多3个，空簇被丢弃
func TestClustersLimit(t *testing.T) {
	b := newTestBuilder()

	// 超过12个不同的长关键词，保证3组都有素材
	sentences := []string{
		"apple banana cherry durian elderberry",
		"figs grape honeydew jackfruit kiwi",
		"lemon mango nectarine orange papaya",
		"apple banana cherry again here",
	}
	scores := []float64{1, 1, 1, 1}
	matrix := textproc.BuildSimilarityMatrix(sentences)

	viz := b.Build(sentences, scores, matrix)
	if len(viz.Clusters) > 3 {
		t.Fatalf("主题簇超过3个: %d", len(viz.Clusters))
	}
	for i, c := range viz.Clusters {
		if len(c.Sentences) == 0 {
			t.Errorf("簇 %d 为空却未被丢弃", i)
		}
		if len(c.Keywords) == 0 || len(c.Keywords) > 4 {
			t.Errorf("簇 %d 关键词数 %d 超出每组上限", i, len(c.Keywords))
		}
	}
}

// TestClustersOverlap 同一句子可以属于多个簇
func TestClustersOverlap(t *testing.T) {
	b := newTestBuilder()

	// 句子0同时覆盖高频与低频关键词，应跨簇出现
	sentences := []string{
		"alpha alpha alpha beta gamma delta epsilon zeta theta kappa lambda sigma omega extra",
		"alpha words only here today",
		"omega words only here today",
	}
	scores := []float64{1, 1, 1}
	matrix := textproc.BuildSimilarityMatrix(sentences)

	viz := b.Build(sentences, scores, matrix)
	if len(viz.Clusters) < 2 {
		t.Skip("关键词分布不足以形成多个簇")
	}

	membership := 0
	for _, c := range viz.Clusters {
		for _, idx := range c.Sentences {
			if idx == 0 {
				membership++
			}
		}
	}
	if membership < 2 {
		t.Errorf("句子0期望出现在多个簇，实际 %d 个", membership)
	}
}

// TestClusterKeywordLength 关键词只统计长度≥4的词元
func TestClusterKeywordLength(t *testing.T) {
	b := newTestBuilder()

	sentences := []string{
		"cat dog fox elephant elephant elephant",
		"cat dog fox elephant once more",
	}
	scores := []float64{1, 1}
	matrix := textproc.BuildSimilarityMatrix(sentences)

	viz := b.Build(sentences, scores, matrix)
	for _, c := range viz.Clusters {
		for _, kw := range c.Keywords {
			if len(kw) < 4 {
				t.Errorf("短词 %q 不应成为关键词", kw)
			}
		}
	}
}
