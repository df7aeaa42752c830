// 전송 결과 및 전송 실패 타입 정의
// Client 레이어에서만 생성되고 service/handler로 전달된다

package client

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeliveryReceipt - 단일 전송 시도 성공 결과
type DeliveryReceipt struct {
	ID         string    `json:"id"`
	Sink       string    `json:"sink"`
	StatusCode int       `json:"statusCode,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	SentAt     time.Time `json:"sentAt"`
}

// NewDeliveryReceipt - receipt 생성 (ID는 uuid)
func NewDeliveryReceipt(sink string, statusCode int, detail string) *DeliveryReceipt {
	return &DeliveryReceipt{
		ID:         uuid.NewString(),
		Sink:       sink,
		StatusCode: statusCode,
		Detail:     detail,
		SentAt:     time.Now().UTC(),
	}
}

// DeliveryError - 다운스트림 sink가 거부했거나 도달 불가
// 진단을 위해 상태 코드와 응답 본문을 그대로 보존한다
type DeliveryError struct {
	Sink       string
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s delivery failed: %v", e.Sink, e.Err)
	}
	return fmt.Sprintf("%s delivery failed: status=%d body=%s", e.Sink, e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
