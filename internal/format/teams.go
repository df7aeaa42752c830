// MS Teams MessageCard 포맷터
//
// 일반 알림과 resolve 알림을 다르게 처리:
//   - trigger/acknowledge/unknown: severity 색상 카드 + facts + actions + images
//   - resolve: 고정 형태의 초록색 RESOLVED 카드 (dedup/routing key만 표시)

package format

import (
	"fmt"
	"strings"

	"github.com/alert-relay/backend/internal/model"
)

// 기본 액션 라벨
const (
	defaultClientLabel = "View in Monitoring Service"
	defaultLinkLabel   = "View Details"
)

// TeamsCard - MS Teams MessageCard 페이로드
type TeamsCard struct {
	Type       string         `json:"@type"`
	Context    string         `json:"@context"`
	ThemeColor string         `json:"themeColor"`
	Summary    string         `json:"summary"`
	Title      string         `json:"title"`
	Sections   []TeamsSection `json:"sections"`
	Actions    []TeamsAction  `json:"potentialAction,omitempty"`
}

// TeamsSection - 카드 본문 섹션 (facts 또는 images)
type TeamsSection struct {
	ActivityTitle    string       `json:"activityTitle,omitempty"`
	ActivitySubtitle string       `json:"activitySubtitle,omitempty"`
	Facts            []TeamsFact  `json:"facts,omitempty"`
	Markdown         bool         `json:"markdown,omitempty"`
	Images           []TeamsImage `json:"images,omitempty"`
}

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type TeamsImage struct {
	Image string `json:"image"`
	Title string `json:"title"`
}

// TeamsAction - OpenUri 액션 버튼
type TeamsAction struct {
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Targets []TeamsTarget `json:"targets"`
}

type TeamsTarget struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// Teams - AlertRecord를 MS Teams MessageCard로 변환 (순수 함수)
func Teams(rec *model.AlertRecord) TeamsCard {
	// resolve 알림은 별도의 고정 카드로 처리
	if rec.EventAction == model.ActionResolve {
		return teamsResolvedCard(rec)
	}

	// 1. facts 구성: 표준 필드 + custom details (입력 순서 유지)
	facts := []TeamsFact{
		{Name: "Severity", Value: rec.RawSeverity},
		{Name: "Source", Value: rec.Source},
		{Name: "Component", Value: rec.Component},
		{Name: "Group", Value: rec.Group},
		{Name: "Class", Value: rec.Class},
	}
	for _, d := range rec.Details {
		facts = append(facts, TeamsFact{Name: d.Key, Value: d.Value})
	}

	// 2. actions 구성: client_url 우선, 이후 links 순서대로
	var actions []TeamsAction
	if rec.ClientURL != "" {
		name := rec.ClientName
		if name == "" {
			name = defaultClientLabel
		}
		actions = append(actions, openURI(name, rec.ClientURL))
	}
	for _, link := range rec.Links {
		name := link.Text
		if name == "" {
			name = defaultLinkLabel
		}
		actions = append(actions, openURI(name, link.Href))
	}

	card := TeamsCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: SeverityColor(rec.Severity),
		Summary:    rec.Summary,
		Title:      fmt.Sprintf("Webhook %s: %s", strings.ToUpper(rec.EventAction), rec.Summary),
		Sections: []TeamsSection{
			{
				ActivityTitle:    "Webhook Alert",
				ActivitySubtitle: fmt.Sprintf("Triggered at %s", rec.Timestamp),
				Facts:            facts,
				Markdown:         true,
			},
		},
		Actions: actions,
	}

	// 3. 이미지가 있을 때만 이미지 섹션 추가
	if len(rec.Images) > 0 {
		images := make([]TeamsImage, 0, len(rec.Images))
		for _, img := range rec.Images {
			title := img.Alt
			if title == "" {
				title = "Alert Image"
			}
			images = append(images, TeamsImage{Image: img.Src, Title: title})
		}
		card.Sections = append(card.Sections, TeamsSection{Images: images})
	}

	return card
}

// teamsResolvedCard - resolve 이벤트 전용 고정 카드
func teamsResolvedCard(rec *model.AlertRecord) TeamsCard {
	return TeamsCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: resolvedColor,
		Summary:    "Alert RESOLVED",
		Title:      "Alert RESOLVED",
		Sections: []TeamsSection{
			{
				ActivityTitle: "Alert Resolved",
				Facts: []TeamsFact{
					{Name: "Event Action", Value: strings.ToUpper(rec.EventAction)},
					{Name: "Dedup Key", Value: rec.DedupKey},
					{Name: "Routing Key", Value: rec.RoutingKey},
				},
				Markdown: true,
			},
		},
	}
}

func openURI(name, uri string) TeamsAction {
	return TeamsAction{
		Type:    "OpenUri",
		Name:    name,
		Targets: []TeamsTarget{{OS: "default", URI: uri}},
	}
}
