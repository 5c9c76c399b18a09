package models

import "time"

// Draft is a client-local UI-shape form under edit. FormID is zero until the
// draft is published for the first time.
type Draft struct {
	Key         string     `json:"key"`
	FormID      int64      `json:"form_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Data        UIFormData `json:"data"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Session is the client-local persisted login.
type Session struct {
	UserID   int64
	Username string
	Token    string
}
