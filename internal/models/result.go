package models

// ScoreResult holds the four component scores and their composite.
// All values are integers in [0,100]; Overall is the truncated mean
// of the other four.
type ScoreResult struct {
	Overall     int `json:"overall"`
	Keyword     int `json:"keyword"`
	Skill       int `json:"skill"`
	Readability int `json:"readability"`
	Format      int `json:"format"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type HistoryEntry struct {
	ID             string      `json:"id"`
	JobFilePath    string      `json:"job_file_path"`
	ResumeFilePath string      `json:"resume_file_path"`
	Scores         ScoreResult `json:"scores"`
	CreatedAt      string      `json:"created_at"`
}
