// internal/ranker/selection.go
package ranker

import "sort"

// Ranking 表示一次排序方法的输出
type Ranking struct {
	Scores   []float64   // 每个句子的重要性得分，与句子索引对齐
	Selected []int       // 选中句子的索引，始终按原文顺序升序
	Matrix   [][]float64 // 原始对称相似度矩阵，频率法与短路路径下为 nil
}

// selectTop 按得分取前 count 个句子
// 得分相同时优先取靠前的句子，选出后再按原文顺序重排
func selectTop(scores []float64, count int) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}

	sort.Slice(indices, func(a, b int) bool {
		ia, ib := indices[a], indices[b]
		if scores[ia] != scores[ib] {
			return scores[ia] > scores[ib]
		}
		return ia < ib
	})

	if count > len(indices) {
		count = len(indices)
	}
	selected := make([]int, count)
	copy(selected, indices[:count])
	sort.Ints(selected)
	return selected
}

// shortCircuit 在句子数不超过请求数时直接返回全部句子
func shortCircuit(n int) *Ranking {
	selected := make([]int, n)
	for i := range selected {
		selected[i] = i
	}
	return &Ranking{
		Scores:   make([]float64, n),
		Selected: selected,
	}
}
