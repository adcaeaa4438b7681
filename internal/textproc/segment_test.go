// internal/textproc/segment_test.go
package textproc

import (
	"testing"
)

// TestSegmentBasic 测试基本的句子切分
func TestSegmentBasic(t *testing.T) {
	text := "Cats are mammals. Dogs are mammals too! Birds can fly?"
	sentences := Segment(text)

	expected := []string{"Cats are mammals", "Dogs are mammals too", "Birds can fly"}
	if len(sentences) != len(expected) {
		t.Fatalf("期望 %d 个句子，实际 %d 个: %v", len(expected), len(sentences), sentences)
	}
	for i, want := range expected {
		if sentences[i] != want {
			t.Errorf("句子 %d: 期望 %q，实际 %q", i, want, sentences[i])
		}
	}
}

// TestSegmentEmpty 空输入返回空序列而不是错误
func TestSegmentEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if got := Segment(input); len(got) != 0 {
			t.Errorf("输入 %q 期望空序列，实际 %v", input, got)
		}
	}
}

// TestSegmentDiscardsShortFragments 过短片段被丢弃
func TestSegmentDiscardsShortFragments(t *testing.T) {
	// "Short." 修剪后只有5个字符，应被丢弃
	text := "Short. This sentence is long enough to keep."
	sentences := Segment(text)

	if len(sentences) != 1 {
		t.Fatalf("期望1个句子，实际 %d 个: %v", len(sentences), sentences)
	}
	if sentences[0] != "This sentence is long enough to keep" {
		t.Errorf("意外的句子: %q", sentences[0])
	}

	// 恰好10个字符的片段同样被丢弃（长度必须严格大于10）
	if got := Segment("exactly10c."); len(got) != 0 {
		t.Errorf("10字符片段应被丢弃，实际 %v", got)
	}
}

// TestSegmentPunctuationRuns 连续标点算作一个边界
func TestSegmentPunctuationRuns(t *testing.T) {
	text := "Is this really happening?! Yes it certainly is..."
	sentences := Segment(text)

	if len(sentences) != 2 {
		t.Fatalf("期望2个句子，实际 %d 个: %v", len(sentences), sentences)
	}
}

// TestSegmentNaiveBoundaries 缩写与小数点会被切开，这是已接受的近似行为
func TestSegmentNaiveBoundaries(t *testing.T) {
	text := "The value of pi is 3.14159 in many textbooks everywhere."
	sentences := Segment(text)

	// "The value of pi is 3" 和 "14159 in many textbooks everywhere" 都超过10字符
	if len(sentences) != 2 {
		t.Fatalf("小数点应被当作句子边界，期望2个句子，实际 %d 个: %v", len(sentences), sentences)
	}
}

// TestTokenize 测试词元化
func TestTokenize(t *testing.T) {
	tokens := Tokenize("Cats ARE  Mammals")
	expected := []string{"cats", "are", "mammals"}

	if len(tokens) != len(expected) {
		t.Fatalf("期望 %v，实际 %v", expected, tokens)
	}
	for i := range expected {
		if tokens[i] != expected[i] {
			t.Errorf("词元 %d: 期望 %q，实际 %q", i, expected[i], tokens[i])
		}
	}

	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("空输入期望空词元序列，实际 %v", got)
	}
}
