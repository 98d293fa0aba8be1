package server

import (
	"context"
	"time"

	"creature-forge/internal/engine"
	"creature-forge/pkg/api"
)

// Dispatch выполняет команду клиента и возвращает ответ для него.
func Dispatch(ctx context.Context, svc *engine.Service, cmd api.ClientCommand) api.BuildEvent {
	if err := cmd.Validate(); err != nil {
		return errorEvent("", err)
	}

	switch cmd.Action {
	case api.ActionList:
		return api.BuildEvent{
			Type:      api.EventCatalog,
			Creatures: svc.Catalog(),
			Timestamp: time.Now().UnixMilli(),
		}

	case api.ActionSpawn:
		p, err := api.DecodePayload[api.SpawnPayload](cmd.Payload)
		if err != nil {
			return errorEvent("", err)
		}
		inst, err := svc.Spawn(ctx, p.ClassID)
		if err != nil {
			return errorEvent(p.ClassID, err)
		}

		ev := api.BuildEvent{
			Type:       api.EventBuilt,
			ClassID:    p.ClassID,
			InstanceID: inst.InstanceID,
			Timestamp:  time.Now().UnixMilli(),
		}
		if r, ok := svc.Report(p.ClassID); ok {
			ev.BuildID = r.BuildID
			ev.Report = engine.ReportView(r)
		}
		return ev
	}
	return errorEvent("", nil)
}

func errorEvent(classID string, err error) api.BuildEvent {
	msg := "unsupported command"
	if err != nil {
		msg = err.Error()
	}
	return api.BuildEvent{
		Type:      api.EventError,
		ClassID:   classID,
		Message:   msg,
		Timestamp: time.Now().UnixMilli(),
	}
}
