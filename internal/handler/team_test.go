package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alert-relay/backend/internal/client"
	"github.com/alert-relay/backend/internal/config"
	"github.com/alert-relay/backend/internal/service"
	"github.com/alert-relay/backend/internal/store"
	"github.com/gin-gonic/gin"
)

func newTeamRouter(t *testing.T) (*gin.Engine, *store.MemoryTeamStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	teams := store.NewMemoryTeamStore()
	authSvc, err := service.NewAuthService(config.AdminConfig{
		Username:     "admin",
		Password:     "password123",
		JWTAccessTTL: "15m",
	})
	if err != nil {
		t.Fatal(err)
	}

	teamSvc := service.NewTeamRelayService(teams, client.NewWebhookClient(), nil)
	h := NewTeamHandler(teamSvc, teams)

	r := gin.New()
	admin := r.Group("/", AdminAuth(authSvc))
	admin.POST("/register", h.Register)
	admin.GET("/teams", h.ListTeams)
	r.POST("/:teamId", TeamAuth(teams), h.Notify)
	return r, teams
}

func adminRegister(r http.Handler, teamID, webhookURL, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"teamId": teamID, "webhookUrl": webhookURL})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "password123")
	if username != "" {
		req.Header.Set("X-Username", username)
	}
	if password != "" {
		req.Header.Set("X-Password", password)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndNotifyFlow(t *testing.T) {
	var downstreamBody string
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		buf := new(bytes.Buffer)
		buf.ReadFrom(req.Body)
		downstreamBody = buf.String()
	}))
	defer downstream.Close()

	r, _ := newTeamRouter(t)

	if w := adminRegister(r, "team-a", downstream.URL, "user-a", "pass-a"); w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	// 등록된 팀 자격 증명으로 알림 전송
	req := httptest.NewRequest(http.MethodPost, "/team-a", bytes.NewBufferString(
		`{"event_action":"resolve","payload":{"summary":"Disk full","severity":"critical"},"dedup_key":"xyz"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("user-a", "pass-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("notify status = %d, body = %s", w.Code, w.Body.String())
	}
	for _, want := range []string{`"themeColor":"#00FF00"`, "Dedup Key", "xyz"} {
		if !strings.Contains(downstreamBody, want) {
			t.Errorf("downstream payload missing %q:\n%s", want, downstreamBody)
		}
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r, _ := newTeamRouter(t)

	w := adminRegister(r, "team-a", "", "", "pass")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	for _, want := range []string{"webhookUrl", "X-Username"} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("body missing %q: %s", want, w.Body.String())
		}
	}
}

func TestRegisterRequiresAdminAuth(t *testing.T) {
	r, _ := newTeamRouter(t)

	body, _ := json.Marshal(map[string]string{"teamId": "t", "webhookUrl": "https://x"})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.SetBasicAuth("admin", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") == "" {
		t.Error("missing WWW-Authenticate challenge")
	}
}

func TestNotifyUnknownTeam(t *testing.T) {
	r, _ := newTeamRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/ghost", bytes.NewBufferString(`{}`))
	req.SetBasicAuth("u", "p")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestNotifyWrongTeamCredentials(t *testing.T) {
	r, teams := newTeamRouter(t)
	if err := teams.Register("team-a", "https://hooks.example/a", "user-a", "pass-a"); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/team-a", bytes.NewBufferString(`{}`))
	req.SetBasicAuth("user-a", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestListTeams(t *testing.T) {
	r, teams := newTeamRouter(t)
	for _, id := range []string{"bravo", "alpha"} {
		if err := teams.Register(id, "https://hooks.example/"+id, "u", "p"); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.SetBasicAuth("admin", "password123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Teams []string `json:"teams"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Teams) != 2 || resp.Teams[0] != "alpha" || resp.Teams[1] != "bravo" {
		t.Errorf("teams = %v", resp.Teams)
	}
}
