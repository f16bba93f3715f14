package signals

import "testing"

func TestBuildProofSignalsQualified(t *testing.T) {
	resume := `전환율을 15% 개선했습니다.
서버 비용을 1,200만원 절감했습니다.
배포 리드타임을 3일 단축했습니다.`

	got := BuildProofSignals(resume, "")

	if got.ProofCount != 3 {
		t.Fatalf("expected 3 qualified proofs, got %d (notes: %v)", got.ProofCount, got.ProofNotes)
	}
	if got.ResumeSignalScore != 0.7 {
		t.Fatalf("3-5 proofs map to 0.7, got %v", got.ResumeSignalScore)
	}
}

func TestBuildProofSignalsRejectsIncidentalNumbers(t *testing.T) {
	resume := `재직기간 2022-03-01 ~ 2023-04-01
연락처 010-1234-5678
회의는 매일 10:30에 진행
2021년 입사`

	got := BuildProofSignals(resume, "")

	if got.ProofCount != 0 {
		t.Fatalf("dates, phones and clock times must never count, got %d", got.ProofCount)
	}
	if got.ResumeSignalScore != 0.35 {
		t.Fatalf("no proof maps to 0.35, got %v", got.ResumeSignalScore)
	}
}

func TestBuildProofSignalsUnqualifiedNumber(t *testing.T) {
	// A quantified figure without achievement language nearby counts as raw
	// only.
	got := BuildProofSignals("행사에 1,234명이 방문했습니다.", "")

	if got.ProofCountRaw != 1 {
		t.Fatalf("expected 1 raw number, got %d", got.ProofCountRaw)
	}
	if got.ProofCount != 0 {
		t.Fatalf("expected 0 qualified proofs, got %d", got.ProofCount)
	}
	if len(got.ProofNotes) == 0 {
		t.Fatalf("a rejected number should leave a note")
	}
}

func TestBuildProofSignalsIncludesPortfolio(t *testing.T) {
	got := BuildProofSignals(
		"데이터 분석 업무를 담당했습니다.",
		"대시보드 도입으로 리포트 작성 시간을 80% 절감했습니다.",
	)

	if got.ProofCount != 1 {
		t.Fatalf("portfolio proof should count, got %d", got.ProofCount)
	}
	if got.ResumeSignalScore != 0.5 {
		t.Fatalf("1-2 proofs map to 0.5, got %v", got.ResumeSignalScore)
	}
}

func TestProofScoreSteps(t *testing.T) {
	cases := []struct {
		qualified int
		expected  float64
	}{
		{0, 0.35},
		{1, 0.5},
		{2, 0.5},
		{3, 0.7},
		{5, 0.7},
		{6, 0.85},
		{20, 0.85},
	}

	for _, tc := range cases {
		if got := proofScore(tc.qualified); got != tc.expected {
			t.Fatalf("proofScore(%d) = %v, want %v", tc.qualified, got, tc.expected)
		}
	}
}

func TestBuildProofSignalsEmpty(t *testing.T) {
	got := BuildProofSignals("", "")
	if got.ProofCount != 0 || got.ProofCountRaw != 0 {
		t.Fatalf("empty input must yield zero counts: %+v", got)
	}
	if got.ResumeSignalScore != 0.35 {
		t.Fatalf("empty input maps to the 0.35 floor, got %v", got.ResumeSignalScore)
	}
}
