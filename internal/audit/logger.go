// 감사 로그 기록기
//
// 인바운드 원본 페이로드를 JSON Lines 형식으로 파일에 남긴다.
// 기록은 항상 best-effort: 실패해도 요청 처리에 영향을 주지 않는다.

package audit

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger - JSON Lines 감사 로그 기록기
// nil receiver도 안전하게 no-op으로 동작한다
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

type entry struct {
	Timestamp string          `json:"timestamp"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewLogger - dir/payload.log에 기록하는 Logger 생성
// dir이 빈 값이면 비활성화(nil) 반환
func NewLogger(dir string) *Logger {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[Audit] Failed to create log dir %s: %v", dir, err)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "payload.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[Audit] Failed to open payload log: %v", err)
		return nil
	}
	return &Logger{file: f}
}

// Log - 한 줄 기록 (best-effort, 실패는 무시)
func (l *Logger) Log(message string, data []byte) {
	if l == nil {
		return
	}

	// data가 유효한 JSON이 아니면 문자열로 감싼다
	raw := json.RawMessage(data)
	if len(data) == 0 || !json.Valid(data) {
		quoted, err := json.Marshal(string(data))
		if err != nil {
			return
		}
		raw = quoted
	}

	line, err := json.Marshal(entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
		Data:      raw,
	})
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.file.Write(append(line, '\n'))
}

// Close - 로그 파일 닫기
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.file.Close()
}
