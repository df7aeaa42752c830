// 팀(테넌트) 레지스트리 - 메모리 전용
//
// 등록은 덮어쓰기(last-write-wins), 만료 없음, 프로세스 재시작 시 소실.
// 동시 요청이 조회하는 동안 등록이 일어날 수 있으므로 RWMutex로 보호한다.
// 엔트리는 통째로 교체되는 불투명 레코드라 팀 단위 잠금은 불필요.

package store

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrTeamNotFound = errors.New("team not found")

// Team - 등록된 팀의 sink 타깃 정보
// 비밀번호는 bcrypt 해시로만 보관한다
type Team struct {
	ID           string
	WebhookURL   string
	Username     string
	PasswordHash []byte
}

// TeamStore - 레지스트리 인터페이스
type TeamStore interface {
	Register(id, webhookURL, username, password string) error
	Lookup(id string) (*Team, error)
	List() []string
	Authenticate(id, username, password string) error
}

// MemoryTeamStore - RWMutex로 보호되는 인메모리 구현
type MemoryTeamStore struct {
	mu    sync.RWMutex
	teams map[string]*Team
}

func NewMemoryTeamStore() *MemoryTeamStore {
	return &MemoryTeamStore{teams: make(map[string]*Team)}
}

// Register - 팀 등록 (동일 ID 재등록 시 기존 엔트리 덮어쓰기)
func (s *MemoryTeamStore) Register(id, webhookURL, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[id] = &Team{
		ID:           id,
		WebhookURL:   webhookURL,
		Username:     username,
		PasswordHash: hash,
	}
	return nil
}

// Lookup - 팀 조회 (없으면 ErrTeamNotFound)
func (s *MemoryTeamStore) Lookup(id string) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	if !ok {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

// List - 등록된 팀 ID 목록 (정렬된 순서)
func (s *MemoryTeamStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.teams))
	for id := range s.teams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Authenticate - 팀 basic auth 자격 증명 검증
func (s *MemoryTeamStore) Authenticate(id, username, password string) error {
	team, err := s.Lookup(id)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(team.Username), []byte(username)) != 1 {
		return errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(team.PasswordHash, []byte(password)); err != nil {
		return errors.New("invalid credentials")
	}
	return nil
}
