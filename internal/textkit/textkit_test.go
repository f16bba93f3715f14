package textkit

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \t \n  ", ""},
		{"collapses inner whitespace", "데이터   분석가\t모집", "데이터 분석가 모집"},
		{"preserves line breaks", "첫 줄  입니다\r\n둘째   줄", "첫 줄 입니다\n둘째 줄"},
		{"trims outer blank lines", "\n\n본문\n\n", "본문"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"korean and english", "SQL을 활용한 데이터 분석", []string{"sql을", "활용한", "데이터", "분석"}},
		{"tech terms survive", "C++ 및 C# 및 Node.js 경험", []string{"c++", "및", "c#", "및", "node.js", "경험"}},
		{"trailing dots stripped", "배포했습니다. 끝.", []string{"배포했습니다", "끝"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.input)
			if len(got) != len(tc.expected) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.input, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("Tokenize(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity(nil, nil); got != 1 {
		t.Fatalf("two empty sets should be identical, got %v", got)
	}
	if got := Similarity([]string{"a"}, nil); got != 0 {
		t.Fatalf("one empty set should have no overlap, got %v", got)
	}
	if got := Similarity([]string{"a", "b"}, []string{"b", "c"}); got != 1.0/3.0 {
		t.Fatalf("expected jaccard 1/3, got %v", got)
	}
	if got := Similarity([]string{"a", "a", "b"}, []string{"b", "a"}); got != 1 {
		t.Fatalf("duplicates must not affect the set index, got %v", got)
	}
}

func TestKeywordMatcherBoundaries(t *testing.T) {
	java := NewKeywordMatcher("java")

	if java.Matches("자바스크립트와 JavaScript 경험") {
		t.Fatalf("java must not match inside javascript")
	}
	if !java.Matches("Java 백엔드 개발 3년") {
		t.Fatalf("java should match as a standalone word")
	}
	if !java.Matches("java로 작성했습니다") {
		t.Fatalf("java should match when followed by a korean particle")
	}

	cpp := NewKeywordMatcher("c++")
	if !cpp.Matches("C++ 기반 엔진 개발") {
		t.Fatalf("c++ should match despite ending in a symbol")
	}

	korean := NewKeywordMatcher("리액트")
	if !korean.Matches("리액트와 타입스크립트를 사용") {
		t.Fatalf("korean keywords match by containment")
	}

	empty := NewKeywordMatcher("   ")
	if empty.Matches("anything") {
		t.Fatalf("empty keyword must never match")
	}
}

func TestWindow(t *testing.T) {
	s := "가나다라마바사"
	// bytes 6..9 cover "다"
	got := Window(s, 6, 9, 2)
	if got != "가나다라마" {
		t.Fatalf("Window = %q, want %q", got, "가나다라마")
	}

	if got := Window(s, -5, len(s)+10, 3); got != s {
		t.Fatalf("out-of-range offsets must clamp, got %q", got)
	}

	long := strings.Repeat("a", 100)
	if got := Window(long, 50, 50, 10); len(got) != 20 {
		t.Fatalf("expected 20 bytes of ascii context, got %d", len(got))
	}
}
