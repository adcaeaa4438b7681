// internal/ranker/frequency.go
package ranker

import (
	"github.com/Corphon/DocSummarizerMCP/internal/textproc"
)

// minFrequencyTokenLength 词频统计只计长度超过3的词元
const minFrequencyTokenLength = 3

// Frequency 基于全文词频的排序，不依赖相似度矩阵
// 句子得分 = 其词元全局频率之和 / 句子词元数（均值而非总和，
// 偏好整体高频词汇的句子而不是靠单个高频词取胜的长句）
func Frequency(sentences []string, count int) *Ranking {
	n := len(sentences)
	if n <= count {
		return shortCircuit(n)
	}

	freq := GlobalFrequency(sentences, minFrequencyTokenLength)

	scores := make([]float64, n)
	for i, sentence := range sentences {
		tokens := textproc.Tokenize(sentence)
		if len(tokens) == 0 {
			continue
		}
		var sum float64
		for _, t := range tokens {
			sum += float64(freq[t])
		}
		scores[i] = sum / float64(len(tokens))
	}

	return &Ranking{
		Scores:   scores,
		Selected: selectTop(scores, count),
	}
}

// GlobalFrequency 统计所有句子中长度超过 minLen 的词元的出现次数
func GlobalFrequency(sentences []string, minLen int) map[string]int {
	freq := make(map[string]int)
	for _, sentence := range sentences {
		for _, t := range textproc.Tokenize(sentence) {
			if len(t) > minLen {
				freq[t]++
			}
		}
	}
	return freq
}
