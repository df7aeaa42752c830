// sink 공통 severity 색상 매핑

package format

import "github.com/alert-relay/backend/internal/model"

// resolve 카드 전용 색상
const resolvedColor = "#00FF00" // green

// SeverityColor - severity에 따른 카드 색상 반환 (Teams, Chat 공통)
func SeverityColor(severity string) string {
	switch severity {
	case model.SeverityCritical:
		return "#FF0000" // red
	case model.SeverityWarning:
		return "#FFA500" // orange
	case model.SeverityInfo:
		return "#0000FF" // blue
	default:
		return "#808080" // grey
	}
}
