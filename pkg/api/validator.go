package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p SpawnPayload) Validate() error {
	if p.ClassID == "" {
		return errors.New("classId is required")
	}
	return nil
}

func (c ClientCommand) Validate() error {
	switch c.Action {
	case ActionList:
		return nil
	case ActionSpawn:
		_, err := DecodePayload[SpawnPayload](c.Payload)
		return err
	case "":
		return errors.New("action is required")
	default:
		return fmt.Errorf("unknown action %q", c.Action)
	}
}

// DecodePayload разбирает и проверяет payload команды.
func DecodePayload[T Validator](raw json.RawMessage) (T, error) {
	var p T
	if len(raw) == 0 {
		return p, errors.New("payload is required")
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode payload: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
