// internal/viz/builder.go
package viz

import (
	"sort"

	"github.com/Corphon/DocSummarizerMCP/internal/models"
	"github.com/Corphon/DocSummarizerMCP/internal/quality"
	"github.com/Corphon/DocSummarizerMCP/internal/ranker"
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

const (
	// maxNodes 句子关系图的节点上限，约束渲染与布局开销
	maxNodes = 25
	// edgeThreshold 相似度超过该值才生成边
	edgeThreshold = 0.1
	// previewLength 节点文本预览的截断长度
	previewLength = 100

	// 主题簇参数：取前12个关键词，每4个一组，最多3组
	topKeywords      = 12
	keywordsPerGroup = 4
	maxClusters      = 3

	// 关键词统计只计长度≥4的词元
	minKeywordLength = 4
)

// 各主题簇的展示颜色，按组序分配
var clusterColors = []string{"#4e79a7", "#f28e2b", "#59a14f"}

// Builder 从排序产物派生可视化数据
type Builder struct {
	sentiment quality.SentimentAnalyzer
}

// NewBuilder 创建可视化构建器
func NewBuilder(sentiment quality.SentimentAnalyzer) *Builder {
	return &Builder{sentiment: sentiment}
}

// Build 生成句子关系图与主题簇
// scores 与 matrix 必须与 sentences 的索引对齐
func (b *Builder) Build(sentences []string, scores []float64, matrix [][]float64) *models.Visualization {
	return &models.Visualization{
		Nodes:    b.buildGraph(sentences, scores, matrix),
		Clusters: b.buildClusters(sentences),
	}
}

// buildGraph 选取得分最高的25个句子作为节点
// 边只在被可视化的节点之间计算，相似度需超过阈值，不含自环
func (b *Builder) buildGraph(sentences []string, scores []float64, matrix [][]float64) []models.SentenceNode {
	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	// 稳定排序，得分相同时保持原文顺序
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	count := len(indices)
	if count > maxNodes {
		count = maxNodes
	}
	visualized := indices[:count]

	inGraph := make(map[int]bool, count)
	for _, idx := range visualized {
		inGraph[idx] = true
	}

	nodes := make([]models.SentenceNode, 0, count)
	for _, idx := range visualized {
		node := models.SentenceNode{
			ID:          idx,
			Text:        truncate(sentences[idx], previewLength),
			Score:       scores[idx],
			Sentiment:   b.sentiment.Analyze(sentences[idx]).Comparative,
			Connections: []models.Connection{},
		}
		for target := range matrix[idx] {
			if target == idx || !inGraph[target] {
				continue
			}
			if matrix[idx][target] > edgeThreshold {
				node.Connections = append(node.Connections, models.Connection{
					Target: target,
					Weight: matrix[idx][target],
				})
			}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// buildClusters 基于高频关键词的主题聚类
// 关键词按频率取前12个，每4个一组；句子命中任一关键词即进入该簇，
// 允许同一句子出现在多个簇中；空簇丢弃
func (b *Builder) buildClusters(sentences []string) []models.TopicCluster {
	freq := ranker.GlobalFrequency(sentences, minKeywordLength-1)

	keywords := make([]string, 0, len(freq))
	for word := range freq {
		keywords = append(keywords, word)
	}
	// 频率降序，同频按字典序保证确定性
	sort.Slice(keywords, func(a, b int) bool {
		if freq[keywords[a]] != freq[keywords[b]] {
			return freq[keywords[a]] > freq[keywords[b]]
		}
		return keywords[a] < keywords[b]
	})
	if len(keywords) > topKeywords {
		keywords = keywords[:topKeywords]
	}

	tokenized := make([][]string, len(sentences))
	for i, s := range sentences {
		tokenized[i] = tokenSet(s)
	}

	clusters := make([]models.TopicCluster, 0, maxClusters)
	for g := 0; g < maxClusters; g++ {
		start := g * keywordsPerGroup
		if start >= len(keywords) {
			break
		}
		end := start + keywordsPerGroup
		if end > len(keywords) {
			end = len(keywords)
		}
		group := keywords[start:end]

		matched := []int{}
		for i := range sentences {
			if containsAny(tokenized[i], group) {
				matched = append(matched, i)
			}
		}
		if len(matched) == 0 {
			continue
		}

		clusters = append(clusters, models.TopicCluster{
			Keywords:  append([]string{}, group...),
			Sentences: matched,
			Color:     clusterColors[g%len(clusterColors)],
			// 布局起始坐标按组序摆放，无语义含义
			CenterX: float64(100 + 200*g),
			CenterY: 150,
		})
	}
	return clusters
}

// truncate 按字符数截断，不能按字节切否则会切碎多字节字符
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func tokenSet(sentence string) []string {
	return textproc.Tokenize(sentence)
}

func containsAny(tokens []string, keywords []string) bool {
	for _, t := range tokens {
		for _, k := range keywords {
			if t == k {
				return true
			}
		}
	}
	return false
}
