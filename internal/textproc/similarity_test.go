// internal/textproc/similarity_test.go
package textproc

import (
	"math"
	"testing"
)

// TestSimilaritySymmetric 相似度必须对称
func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"cats are mammals", "dogs are mammals too"},
		{"birds can fly", "fish live in water"},
		{"the quick brown fox", "the lazy dog sleeps"},
	}

	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Errorf("相似度不对称: sim(%q,%q)=%v, sim(%q,%q)=%v",
				pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

// TestSimilarityBounds 相似度必须落在 [0,1]
func TestSimilarityBounds(t *testing.T) {
	sentences := []string{
		"cats are mammals",
		"dogs are mammals too",
		"completely unrelated words here",
		"cats are mammals",
	}

	const epsilon = 1e-9
	for _, a := range sentences {
		for _, b := range sentences {
			sim := Similarity(a, b)
			if sim < 0 || sim > 1+epsilon {
				t.Errorf("sim(%q,%q)=%v 超出 [0,1]", a, b, sim)
			}
			if math.IsNaN(sim) || math.IsInf(sim, 0) {
				t.Errorf("sim(%q,%q)=%v 不是有限值", a, b, sim)
			}
		}
	}
}

// TestSimilarityIdentical 相同句子的相似度应为1
func TestSimilarityIdentical(t *testing.T) {
	sim := Similarity("cats are mammals", "cats are mammals")
	if math.Abs(sim-1) > 1e-9 {
		t.Errorf("相同句子期望相似度1，实际 %v", sim)
	}
}

// TestSimilarityDegenerate 空句子返回0而不是NaN
func TestSimilarityDegenerate(t *testing.T) {
	cases := [][2]string{
		{"", "cats are mammals"},
		{"cats are mammals", ""},
		{"", ""},
		{"   ", "cats"},
	}
	for _, c := range cases {
		if sim := Similarity(c[0], c[1]); sim != 0 {
			t.Errorf("sim(%q,%q) 期望0，实际 %v", c[0], c[1], sim)
		}
	}
}

// TestSimilarityNoOverlap 无公共词元时相似度为0
func TestSimilarityNoOverlap(t *testing.T) {
	if sim := Similarity("alpha beta gamma", "delta epsilon zeta"); sim != 0 {
		t.Errorf("无交集句子期望相似度0，实际 %v", sim)
	}
}

// TestBuildSimilarityMatrix 矩阵对称且对角线为0
func TestBuildSimilarityMatrix(t *testing.T) {
	sentences := []string{
		"cats are mammals",
		"dogs are mammals too",
		"birds can fly",
	}
	matrix := BuildSimilarityMatrix(sentences)

	if len(matrix) != len(sentences) {
		t.Fatalf("矩阵行数期望 %d，实际 %d", len(sentences), len(matrix))
	}
	for i := range matrix {
		if len(matrix[i]) != len(sentences) {
			t.Fatalf("矩阵第 %d 行列数期望 %d，实际 %d", i, len(sentences), len(matrix[i]))
		}
		if matrix[i][i] != 0 {
			t.Errorf("对角线 [%d][%d] 期望0，实际 %v", i, i, matrix[i][i])
		}
		for j := range matrix[i] {
			if matrix[i][j] != matrix[j][i] {
				t.Errorf("矩阵不对称: [%d][%d]=%v, [%d][%d]=%v",
					i, j, matrix[i][j], j, i, matrix[j][i])
			}
		}
	}

	// "cats are mammals" 与 "dogs are mammals too" 有公共词元，相似度应为正
	if matrix[0][1] <= 0 {
		t.Errorf("有重叠词元的句子相似度应为正，实际 %v", matrix[0][1])
	}
}
