package patterns

import "strings"

// Phrase tables used by the metrics aggregator and the detector bank.
// Immutable static configuration: loaded once, never mutated at runtime,
// shared across concurrent analyses without locking.

var strongVerbs = []string{
	"주도", "설계", "구축", "도입", "기획", "결정", "개편", "출시", "총괄", "리드",
	"led ", "designed", "built", "launched", "owned", "drove", "initiated", "architected",
}

var weakVerbs = []string{
	"지원", "참여", "보조", "서포트", "수행", "협조", "담당",
	"assisted", "participated", "supported", "helped", "contributed to",
}

var decisionTerms = []string{
	"의사결정", "결정했", "선택했", "우선순위", "판단했", "권한",
	"decided", "chose", "prioritized", "made the call",
}

var initiationTerms = []string{
	"제안", "먼저", "주도적으로", "자발적으로", "직접 시작",
	"proposed", "initiated", "kicked off", "pitched",
}

var soloTerms = []string{"혼자", "단독", "1인", "by myself", "on my own", "solo"}

var teamTerms = []string{"우리 팀", "저희 팀", "함께", "협업", "our team", "we ", "together"}

var impactVerbTerms = []string{
	"개선", "향상", "증가", "감소", "절감", "단축", "달성", "성장", "확대", "최적화",
	"improved", "increased", "reduced", "achieved", "grew", "optimized", "boosted",
}

var processVerbTerms = []string{
	"진행", "수행", "운영", "관리", "처리", "정리", "작성",
	"conducted", "performed", "managed", "operated", "processed", "maintained",
}

var hedgingTerms = []string{
	"같습니다", "듯합니다", "것 같아요", "아마", "어느 정도", "나름",
	"maybe", "perhaps", "i think", "i guess", "somewhat", "kind of", "sort of",
}

var weakAssertionTerms = []string{
	"노력했습니다", "해보았습니다", "시도했습니다", "배우고 싶", "부족하지만",
	"tried to", "attempted to", "hoped to", "wanted to",
}

var passiveTerms = []string{
	"되었습니다", "되었고", "진행되었", "이루어졌", "주어진",
	"was done", "were made", "was given", "was assigned",
}

var buzzwordTerms = []string{
	"열정", "성실", "책임감", "소통", "긍정적", "최선", "꼼꼼", "빠르게 배우",
	"passionate", "hardworking", "team player", "detail-oriented", "fast learner", "synergy",
}

var vagueDutyTerms = []string{
	"다양한 업무", "여러 업무", "업무 전반", "각종 업무", "기타 업무", "제반 업무",
	"various tasks", "general duties", "miscellaneous",
}

var genericIntroTerms = []string{
	"성실하고 책임감", "어려서부터", "항상 최선을", "맡은 바 최선",
	"hardworking and passionate", "i am a team player",
}

var vendorTerms = []string{
	"si업체", "si 업체", "외주", "파견", "하청", "에이전시", "수주",
	"vendor", "outsourcing", "subcontract", "agency work",
}

// countPhrases counts phrase occurrences in lowered text and collects up to
// six distinct matched phrases as evidence.
func countPhrases(lowered string, phrases []string) (int, []string) {
	count := 0
	var evidence []string
	for _, p := range phrases {
		n := strings.Count(lowered, p)
		if n == 0 {
			continue
		}
		count += n
		if len(evidence) < 6 {
			evidence = append(evidence, strings.TrimSpace(p))
		}
	}
	return count, evidence
}
