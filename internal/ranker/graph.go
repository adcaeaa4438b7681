// internal/ranker/graph.go
package ranker

import (
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

const (
	// dampingFactor PageRank式阻尼系数
	dampingFactor = 0.85
	// rankIterations 固定迭代轮数，不做收敛检查
	rankIterations = 50
)

// Centrality 基于句子相似度图的中心性排序
// 构建对称相似度矩阵后做50轮带阻尼的同步迭代更新：
// new[i] = (1-d) + d * Σ_j sim[j][i]/rowSum(j) * score[j]
func Centrality(sentences []string, count int) *Ranking {
	n := len(sentences)
	if n <= count {
		return shortCircuit(n)
	}

	matrix := textproc.BuildSimilarityMatrix(sentences)

	rowSums := make([]float64, n)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			rowSums[j] += matrix[j][k]
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0
	}

	for iter := 0; iter < rankIterations; iter++ {
		// Jacobi式同步更新，一轮内所有得分基于上一轮的快照
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				if j == i || rowSums[j] == 0 {
					continue
				}
				sum += matrix[j][i] / rowSums[j] * scores[j]
			}
			next[i] = (1 - dampingFactor) + dampingFactor*sum
		}
		scores = next
	}

	return &Ranking{
		Scores:   scores,
		Selected: selectTop(scores, count),
		Matrix:   matrix,
	}
}
