// README: Prompt builder; renders conditions and catalog sample into one generation request.
package plan

import (
	"fmt"
	"strings"
)

// SystemPrompt is the fixed role instruction sent with every generation request.
const SystemPrompt = "당신은 서산 지역 전문 여행 코디네이터입니다."

// BuildPrompt assembles the user prompt for one generation request. The call
// asks for all three plans at once; structural rules are stated explicitly but
// enforcement happens in the repairer, not here.
func BuildPrompt(cond TravelConditions, c CandidateSet) string {
	var b strings.Builder

	area := cond.Area
	if area == "" {
		area = AreaCoast
	}

	fmt.Fprintf(&b, "서산에서 %s 지역의 %s 여행 코스 3개를 추천해줘.\n", area, cond.Duration)
	b.WriteString("다음은 관광지와 가게 목록이야:\n\n[관광지]\n")
	for _, a := range c.Attractions {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", a.Name, a.Category, a.Area)
	}
	b.WriteString("\n[가게]\n")
	for _, e := range c.Eateries {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", e.Name, e.Type, e.Location)
	}

	b.WriteString("\n규칙:\n")
	b.WriteString("- 코스는 정확히 3개 만들어줘.\n")
	b.WriteString("- 각 코스는 관광지 3곳과 가게 2곳, 총 5곳을 관광지-가게-관광지-관광지-가게 순서로 구성해줘.\n")
	b.WriteString("- 장소 이름은 반드시 위 목록에 있는 이름만 그대로 사용해줘.\n")
	b.WriteString("- 세 코스 사이에 같은 장소를 중복해서 넣지 말아줘.\n")
	b.WriteString("- 장소는 앞 장소에서 가까운 곳으로 골라줘.\n")

	if cond.Companion != "" || cond.Theme != "" {
		with := cond.Companion
		if with == "" {
			with = "여행자"
		}
		theme := cond.Theme
		if theme == "" {
			theme = "여행"
		}
		fmt.Fprintf(&b, "- 설명에는 %s와 함께하기 좋은 이유와 '%s' 테마를 꼭 담아줘.\n", with, theme)
	}
	b.WriteString("- 각 장소의 description은 2문장 이상, 감성적이고 따뜻하게 써줘. 예: '아이의 웃음소리가 퍼지는 모래사장' 같은 느낌으로.\n")
	b.WriteString("- 각 코스의 summary는 장소들의 특징을 담은 감성적인 한 문장으로, 16자 내로 써줘. 예: '시간이 멈춘 골목에서 첫걸음을 떼다'.\n")

	b.WriteString("\n설명 없이 아래 형태의 순수 JSON만 응답해줘:\n")
	b.WriteString(`{
  "plans": [
    {
      "summary": "여행 요약",
      "course": [
        {"order": 1, "type": "관광지", "name": "간월암", "description": "자세한 설명"},
        {"order": 2, "type": "가게", "name": "양평해장국", "description": "자세한 설명"}
      ]
    }
  ]
}`)

	return b.String()
}
