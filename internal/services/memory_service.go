package services

import (
	"fmt"

	"golang.org/x/exp/slices"
	"vadimgribanov.com/remember/internal/models"
)

// Usage is reported when an invocation carries fewer than the two required
// positional arguments.
const Usage = "Usage: remember <action> <agent_id> [key] [value]"

var knownActions = []string{"set", "get", "list", "delete"}

type MemoryRepo interface {
	SaveMemory(agentID, key, value string) error
	GetMemory(agentID, key string) (*models.Memory, error)
	ListMemories(agentID string) ([]models.Memory, error)
	DeleteMemory(agentID, key string) error
}

type MemoryService struct {
	memoryRepo MemoryRepo
}

func NewMemoryService(memoryRepo MemoryRepo) *MemoryService {
	return &MemoryService{memoryRepo: memoryRepo}
}

// Dispatch runs one action against the store. argv holds the raw positional
// arguments after the program name: action, agent_id, then the action's own
// arguments. Argument problems never reach the repository; they come back as
// an Error result before any statement is issued. A non-nil error is always a
// storage failure and must terminate the process.
func (s *MemoryService) Dispatch(argv []string) (Result, error) {
	if len(argv) < 2 {
		return Error{Message: Usage}, nil
	}

	action := argv[0]
	agentID := argv[1]
	args := argv[2:]

	if !slices.Contains(knownActions, action) {
		return Error{Message: fmt.Sprintf("Unknown action: %s. Use set, get, list, or delete.", action)}, nil
	}

	switch action {
	case "set":
		if len(args) < 2 {
			return Error{Message: "set requires <key> and <value>"}, nil
		}
		return s.handleSet(agentID, args[0], args[1])
	case "get":
		if len(args) < 1 {
			return Error{Message: "get requires <key>"}, nil
		}
		return s.handleGet(agentID, args[0])
	case "list":
		return s.handleList(agentID)
	default:
		if len(args) < 1 {
			return Error{Message: "delete requires <key>"}, nil
		}
		return s.handleDelete(agentID, args[0])
	}
}

func (s *MemoryService) handleSet(agentID, key, value string) (Result, error) {
	if err := s.memoryRepo.SaveMemory(agentID, key, value); err != nil {
		return nil, err
	}
	return Remembered{Status: "remembered", Key: key, Value: value}, nil
}

func (s *MemoryService) handleGet(agentID, key string) (Result, error) {
	memory, err := s.memoryRepo.GetMemory(agentID, key)
	if err != nil {
		return nil, err
	}

	if memory == nil {
		return NotFound{Error: "not found", Key: key}, nil
	}

	return Found{Key: memory.Key, Value: memory.Value}, nil
}

func (s *MemoryService) handleList(agentID string) (Result, error) {
	memories, err := s.memoryRepo.ListMemories(agentID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(memories))
	for _, memory := range memories {
		entries = append(entries, Entry{Key: memory.Key, Value: memory.Value})
	}

	return Listing{Memories: entries}, nil
}

// handleDelete reports success without checking whether a row matched; the
// payload looks the same for existing and missing keys.
func (s *MemoryService) handleDelete(agentID, key string) (Result, error) {
	if err := s.memoryRepo.DeleteMemory(agentID, key); err != nil {
		return nil, err
	}
	return Deleted{Status: "deleted", Key: key}, nil
}
