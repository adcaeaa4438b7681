// internal/textproc/similarity.go
package textproc

import "math"

// Similarity 计算两个句子的余弦相似度
// 在词元并集上构造词频向量，返回 [0,1]；任一向量模长为0时返回0而不是NaN
// 对称：Similarity(a,b) == Similarity(b,a)
func Similarity(a, b string) float64 {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)

	// 并集上的点积与模长
	union := make(map[string]struct{}, len(countsA)+len(countsB))
	for t := range countsA {
		union[t] = struct{}{}
	}
	for t := range countsB {
		union[t] = struct{}{}
	}

	var dot, magA, magB float64
	for t := range union {
		va := float64(countsA[t])
		vb := float64(countsB[t])
		dot += va * vb
		magA += va * va
		magB += vb * vb
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// BuildSimilarityMatrix 构建 n×n 相似度矩阵，对角线恒为0
// O(n²) 次成对比较，是大文档的主要开销
func BuildSimilarityMatrix(sentences []string) [][]float64 {
	n := len(sentences)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := Similarity(sentences[i], sentences[j])
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
