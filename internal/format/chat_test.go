package format

import (
	"strings"
	"testing"
)

func TestChatCardWidgets(t *testing.T) {
	rec := mustParse(t, `{
		"event_action": "trigger",
		"payload": {
			"summary": "Disk full", "severity": "warning", "source": "host1",
			"custom_details": {"mount": "/var", "usage": "91%"}
		}
	}`)

	payload := Chat(rec)
	if len(payload.Cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(payload.Cards))
	}
	card := payload.Cards[0]

	if !strings.Contains(card.Header.Title, "TRIGGER") {
		t.Errorf("header title = %q", card.Header.Title)
	}
	if card.Header.Subtitle != "Disk full" {
		t.Errorf("header subtitle = %q", card.Header.Subtitle)
	}
	if len(card.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(card.Sections))
	}

	widgets := card.Sections[0].Widgets
	wantLabels := []string{"Severity", "Source", "Component", "Group", "Class", "mount", "usage"}
	if len(widgets) != len(wantLabels) {
		t.Fatalf("got %d widgets, want %d", len(widgets), len(wantLabels))
	}
	for i, label := range wantLabels {
		kv := widgets[i].KeyValue
		if kv == nil || kv.TopLabel != label {
			t.Errorf("widgets[%d] = %+v, want topLabel %q", i, widgets[i], label)
		}
	}
	if widgets[5].KeyValue.Content != "/var" || widgets[6].KeyValue.Content != "91%" {
		t.Errorf("detail widgets out of order: %+v", widgets[5:])
	}
}

func TestChatImageSection(t *testing.T) {
	tests := []struct {
		name         string
		images       string
		wantSections int
	}{
		{name: "with-src", images: `[{"src": "https://img.example/a.png"}]`, wantSections: 2},
		{name: "empty-src", images: `[{"src": "", "alt": "x"}]`, wantSections: 1},
		{name: "no-images", images: `[]`, wantSections: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := mustParse(t, `{"event_action":"trigger","payload":{"summary":"s"},"images":`+tt.images+`}`)
			card := Chat(rec).Cards[0]
			if len(card.Sections) != tt.wantSections {
				t.Fatalf("got %d sections, want %d", len(card.Sections), tt.wantSections)
			}
			if tt.wantSections == 2 {
				img := card.Sections[1].Widgets[0].Image
				if img == nil || img.ImageURL != "https://img.example/a.png" {
					t.Errorf("image widget = %+v", card.Sections[1].Widgets[0])
				}
			}
		})
	}
}

// text나 href가 빠진 링크는 버튼에서 제외된다
func TestChatButtons(t *testing.T) {
	rec := mustParse(t, `{
		"event_action": "trigger",
		"payload": {"summary": "s"},
		"client_url": "https://mon.example",
		"links": [
			{"text": "Runbook", "href": "https://wiki.example/rb"},
			{"text": "", "href": "https://x.example"},
			{"text": "no-href"}
		]
	}`)

	card := Chat(rec).Cards[0]
	last := card.Sections[len(card.Sections)-1]
	buttons := last.Widgets[0].Buttons
	if len(buttons) != 2 {
		t.Fatalf("got %d buttons, want 2: %+v", len(buttons), buttons)
	}
	if buttons[0].TextButton.Text != "View in Monitoring Service" {
		t.Errorf("buttons[0].Text = %q", buttons[0].TextButton.Text)
	}
	if buttons[1].TextButton.Text != "Runbook" ||
		buttons[1].TextButton.OnClick.OpenLink.URL != "https://wiki.example/rb" {
		t.Errorf("buttons[1] = %+v", buttons[1])
	}
}

func TestChatNoButtonSectionWhenEmpty(t *testing.T) {
	rec := mustParse(t, `{"event_action":"trigger","payload":{"summary":"s"}}`)
	card := Chat(rec).Cards[0]
	if len(card.Sections) != 1 {
		t.Fatalf("got %d sections, want only the keyValue section", len(card.Sections))
	}
}
