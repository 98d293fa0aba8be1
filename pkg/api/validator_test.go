package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ClientCommand
		wantErr bool
	}{
		{"list", ClientCommand{Action: ActionList}, false},
		{"spawn", ClientCommand{Action: ActionSpawn, Payload: json.RawMessage(`{"classId":"GlowFish"}`)}, false},
		{"spawn without class", ClientCommand{Action: ActionSpawn, Payload: json.RawMessage(`{}`)}, true},
		{"spawn without payload", ClientCommand{Action: ActionSpawn}, true},
		{"spawn broken payload", ClientCommand{Action: ActionSpawn, Payload: json.RawMessage(`{`)}, true},
		{"empty action", ClientCommand{}, true},
		{"unknown action", ClientCommand{Action: "MOVE"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodePayload(t *testing.T) {
	p, err := DecodePayload[SpawnPayload](json.RawMessage(`{"classId":"BoneShark"}`))
	require.NoError(t, err)
	assert.Equal(t, "BoneShark", p.ClassID)
}
