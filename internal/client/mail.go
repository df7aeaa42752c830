// SMTP 전송 클라이언트 (gomail 기반)
//
// 수신자별로 한 통씩 전송하며, 한 명의 실패가 나머지 전송을 막지 않는다.
// 집계 정책: 한 명이라도 성공하면 성공 receipt (실패 수신자는 detail에 기록),
// 전원 실패 시 *DeliveryError 반환

package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alert-relay/backend/internal/config"
	"gopkg.in/gomail.v2"
)

// smtpSendTimeout - gomail 다이얼러에는 타임아웃이 없어서 전송 단위로 제한
const smtpSendTimeout = 10 * time.Second

// mailSender - 테스트에서 실제 SMTP 연결을 대체하기 위한 인터페이스
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailClient 구조체 정의
type MailClient struct {
	newSender func(cfg config.EmailConfig) mailSender
}

// MailClient 객체 생성
func NewMailClient() *MailClient {
	return &MailClient{
		newSender: func(cfg config.EmailConfig) mailSender {
			port, err := strconv.Atoi(cfg.SMTPPort)
			if err != nil {
				port = 587
			}
			return gomail.NewDialer(cfg.SMTPHost, port, cfg.Username, cfg.Password)
		},
	}
}

// Send - 설정된 수신자 전원에게 동일한 메일 전송
func (c *MailClient) Send(cfg config.EmailConfig, subject, body string) (*DeliveryReceipt, error) {
	sender := c.newSender(cfg)

	var failed []string
	sent := 0
	for _, recipient := range cfg.Recipients {
		m := gomail.NewMessage()
		m.SetAddressHeader("From", cfg.From, cfg.FromName)
		m.SetHeader("To", recipient)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)

		if err := sendWithTimeout(sender, m); err != nil {
			// 개별 실패는 기록만 하고 다음 수신자 계속 시도
			failed = append(failed, fmt.Sprintf("%s: %v", recipient, err))
			continue
		}
		sent++
	}

	if sent == 0 {
		return nil, &DeliveryError{
			Sink: "email",
			Err:  fmt.Errorf("all %d recipients failed: %s", len(cfg.Recipients), strings.Join(failed, "; ")),
		}
	}

	detail := fmt.Sprintf("sent to %d/%d recipients", sent, len(cfg.Recipients))
	if len(failed) > 0 {
		detail += "; failed: " + strings.Join(failed, "; ")
	}
	return NewDeliveryReceipt("email", 0, detail), nil
}

// sendWithTimeout - SMTP 전송 1회를 smtpSendTimeout 안으로 제한
func sendWithTimeout(sender mailSender, m *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(smtpSendTimeout):
		return fmt.Errorf("smtp send timed out after %s", smtpSendTimeout)
	}
}
