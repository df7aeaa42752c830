package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RelayResponse - /webhook 처리 결과 응답
type RelayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RegisterResponse - 팀 등록 응답
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TeamListResponse - 등록된 팀 목록 응답
type TeamListResponse struct {
	Teams []string `json:"teams"`
}

// LoginResponse - 관리자 로그인 응답
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}
