// internal/textproc/segment.go
package textproc

import (
	"regexp"
	"strings"
)

// 句子终结符：一个或多个 . ! ?
// 不做缩写/小数点识别，"e.g." 和 "3.14" 会被切开，这是已接受的近似
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// 过短的片段不算句子
const minSentenceLength = 10

// Segment 将原始文本切分为有序句子序列
// 纯函数，空输入返回空序列，永不失败
func Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	pieces := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		trimmed := strings.TrimSpace(piece)
		if len(trimmed) > minSentenceLength {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// Tokenize 把句子按空白切分为小写词元
func Tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}
