package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"vadimgribanov.com/remember/internal/database"
	"vadimgribanov.com/remember/internal/models"
)

type MemoryRepo struct {
	db *database.DB
}

func NewMemoryRepo(db *database.DB) *MemoryRepo {
	return &MemoryRepo{db: db}
}

func (repo *MemoryRepo) SaveMemory(agentID, key, value string) error {
	now := time.Now().Unix()

	query := `
		INSERT INTO agent_memory (agent_id, key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(agent_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	_, err := repo.db.Exec(query, agentID, key, value, now, now)
	if err != nil {
		return fmt.Errorf("failed to save memory: %w", err)
	}

	return nil
}

func (repo *MemoryRepo) GetMemory(agentID, key string) (*models.Memory, error) {
	query := `
		SELECT id, agent_id, key, value, created_at, updated_at
		FROM agent_memory
		WHERE agent_id = ? AND key = ?
	`

	var memory models.Memory
	err := repo.db.QueryRow(query, agentID, key).Scan(
		&memory.ID, &memory.AgentID, &memory.Key, &memory.Value,
		&memory.CreatedAt, &memory.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Memory not found
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}

	return &memory, nil
}

func (repo *MemoryRepo) ListMemories(agentID string) ([]models.Memory, error) {
	query := `
		SELECT id, agent_id, key, value, created_at, updated_at
		FROM agent_memory
		WHERE agent_id = ?
		ORDER BY updated_at DESC
	`

	rows, err := repo.db.Query(query, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer rows.Close()

	var memories []models.Memory
	for rows.Next() {
		var memory models.Memory
		err := rows.Scan(
			&memory.ID, &memory.AgentID, &memory.Key, &memory.Value,
			&memory.CreatedAt, &memory.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		memories = append(memories, memory)
	}

	return memories, nil
}

// DeleteMemory issues the delete unconditionally: a missing row is not an
// error, and callers get no signal about whether anything matched.
func (repo *MemoryRepo) DeleteMemory(agentID, key string) error {
	query := `DELETE FROM agent_memory WHERE agent_id = ? AND key = ?`
	_, err := repo.db.Exec(query, agentID, key)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	return nil
}
