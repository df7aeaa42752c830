// Google Chat 카드 포맷터
//
// Teams와 동일한 severity 색상 매핑을 쓰지만 facts 대신 keyValue 위젯을 사용한다.
// 섹션 순서: keyValue 위젯 → 이미지 (첫 이미지에 src가 있을 때만) → 버튼

package format

import (
	"fmt"
	"strings"

	"github.com/alert-relay/backend/internal/model"
)

const chatHeaderIcon = "https://www.gstatic.com/images/icons/material/system/1x/error_black_48dp.png"

// ChatPayload - Google Chat 카드 메시지 페이로드
type ChatPayload struct {
	Cards []ChatCard `json:"cards"`
}

type ChatCard struct {
	Header   ChatHeader    `json:"header"`
	Sections []ChatSection `json:"sections"`
}

type ChatHeader struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"imageUrl,omitempty"`
	ImageStyle string `json:"imageStyle,omitempty"`
}

type ChatSection struct {
	Widgets []ChatWidget `json:"widgets"`
}

// ChatWidget - keyValue, image, buttons 중 하나만 채워진다
type ChatWidget struct {
	KeyValue *ChatKeyValue `json:"keyValue,omitempty"`
	Image    *ChatImage    `json:"image,omitempty"`
	Buttons  []ChatButton  `json:"buttons,omitempty"`
}

type ChatKeyValue struct {
	TopLabel string `json:"topLabel"`
	Content  string `json:"content"`
}

type ChatImage struct {
	ImageURL string `json:"imageUrl"`
}

type ChatButton struct {
	TextButton ChatTextButton `json:"textButton"`
}

type ChatTextButton struct {
	Text    string      `json:"text"`
	OnClick ChatOnClick `json:"onClick"`
}

type ChatOnClick struct {
	OpenLink ChatOpenLink `json:"openLink"`
}

type ChatOpenLink struct {
	URL string `json:"url"`
}

// Chat - AlertRecord를 Google Chat 카드로 변환 (순수 함수)
func Chat(rec *model.AlertRecord) ChatPayload {
	// 1. keyValue 위젯: 표준 필드 + custom details (입력 순서 유지)
	widgets := []ChatWidget{
		keyValue("Severity", rec.RawSeverity),
		keyValue("Source", rec.Source),
		keyValue("Component", rec.Component),
		keyValue("Group", rec.Group),
		keyValue("Class", rec.Class),
	}
	for _, d := range rec.Details {
		widgets = append(widgets, keyValue(d.Key, d.Value))
	}

	card := ChatCard{
		Header: ChatHeader{
			Title:      fmt.Sprintf("Webhook %s", strings.ToUpper(rec.EventAction)),
			Subtitle:   rec.Summary,
			ImageURL:   chatHeaderIcon,
			ImageStyle: "AVATAR",
		},
		Sections: []ChatSection{{Widgets: widgets}},
	}

	// 2. 첫 이미지에 src가 있을 때만 이미지 섹션 추가
	if len(rec.Images) > 0 && rec.Images[0].Src != "" {
		card.Sections = append(card.Sections, ChatSection{
			Widgets: []ChatWidget{{Image: &ChatImage{ImageURL: rec.Images[0].Src}}},
		})
	}

	// 3. 버튼: client_url 우선, 이후 links (text/href 둘 다 있는 것만)
	var buttons []ChatButton
	if rec.ClientURL != "" {
		text := rec.ClientName
		if text == "" {
			text = defaultClientLabel
		}
		buttons = append(buttons, textButton(text, rec.ClientURL))
	}
	for _, link := range rec.Links {
		if link.Text == "" || link.Href == "" {
			continue
		}
		buttons = append(buttons, textButton(link.Text, link.Href))
	}
	if len(buttons) > 0 {
		card.Sections = append(card.Sections, ChatSection{
			Widgets: []ChatWidget{{Buttons: buttons}},
		})
	}

	return ChatPayload{Cards: []ChatCard{card}}
}

func keyValue(label, content string) ChatWidget {
	return ChatWidget{KeyValue: &ChatKeyValue{TopLabel: label, Content: content}}
}

func textButton(text, url string) ChatButton {
	return ChatButton{
		TextButton: ChatTextButton{
			Text:    text,
			OnClick: ChatOnClick{OpenLink: ChatOpenLink{URL: url}},
		},
	}
}
