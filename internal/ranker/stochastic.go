// internal/ranker/stochastic.go
package ranker

import (
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

// sparsifyThreshold 低于该阈值的相似度在归一化前被置零
const sparsifyThreshold = 0.1

// Eigenvector 基于行归一化转移矩阵的幂迭代排序
// 得分沿入边流动：new[i] = Σ_j m[j][i] * score[j]（相对行方向转置）
// 全零行保持全零，没有足够相似邻居的句子不传播得分
func Eigenvector(sentences []string, count int) *Ranking {
	n := len(sentences)
	if n <= count {
		return shortCircuit(n)
	}

	matrix := textproc.BuildSimilarityMatrix(sentences)

	// 在副本上稀疏化并按行归一化，原始矩阵保留给可视化层
	trans := make([][]float64, n)
	for i := 0; i < n; i++ {
		trans[i] = make([]float64, n)
		var rowSum float64
		for j := 0; j < n; j++ {
			if matrix[i][j] >= sparsifyThreshold {
				trans[i][j] = matrix[i][j]
				rowSum += trans[i][j]
			}
		}
		if rowSum == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			trans[i][j] /= rowSum
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	for iter := 0; iter < rankIterations; iter++ {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				sum += trans[j][i] * scores[j]
			}
			next[i] = sum
		}
		scores = next
	}

	return &Ranking{
		Scores:   scores,
		Selected: selectTop(scores, count),
		Matrix:   matrix,
	}
}
