package models

type Memory struct {
	ID        int64  `json:"id"`
	AgentID   string `json:"agent_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
