package agent

import (
	"context"
	"encoding/json"

	"creature-forge/internal/engine"
	"creature-forge/internal/server"
	"creature-forge/pkg/api"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PrewarmerID - id подписчика в хабе.
const PrewarmerID = "agent:prewarmer"

// Prewarmer - внутренний клиент, который собирает префабы заранее,
// не дожидаясь первого запроса хоста.
//
// Он подписан на хаб как обычный клиент и отправляет те же команды SPAWN,
// что и WebSocket-клиент:
//  1. NewPrewarmer -> регистрация в хабе, личный канал (Inbox).
//  2. Run -> сначала собирает всё, что уже есть в каталоге,
//     затем на каждое REGISTERED отправляет SPAWN.
type Prewarmer struct {
	ID      string
	Service *engine.Service
	Inbox   chan api.BuildEvent
}

func NewPrewarmer(svc *engine.Service) *Prewarmer {
	return &Prewarmer{
		ID:      PrewarmerID,
		Service: svc,
		Inbox:   svc.Hub.Register(PrewarmerID),
	}
}

// Run работает до отмены ctx. Должен быть запущен в горутине.
func (p *Prewarmer) Run(ctx context.Context) {
	defer p.Service.Hub.Release(p.ID, p.Inbox)
	log := logger.For("agent")

	for _, c := range p.Service.Catalog() {
		if !c.Built {
			p.spawn(ctx, c.ClassID)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-p.Inbox:
			if !ok {
				log.Info("Prewarmer inbox closed")
				return
			}
			if ev.Type == api.EventRegistered {
				p.spawn(ctx, ev.ClassID)
			}
		}
	}
}

func (p *Prewarmer) spawn(ctx context.Context, classID string) {
	log := logger.For("agent").WithField("class_id", classID)

	payload, err := json.Marshal(api.SpawnPayload{ClassID: classID})
	if err != nil {
		log.WithError(err).Error("Error marshalling payload")
		return
	}

	reply := server.Dispatch(ctx, p.Service, api.ClientCommand{
		Action:  api.ActionSpawn,
		Payload: payload,
		Token:   p.ID,
	})
	if reply.Type == api.EventError {
		log.WithField("reason", reply.Message).Warn("Prewarm failed")
		return
	}
	log.WithFields(logrus.Fields{"build_id": reply.BuildID}).Debug("Prefab prewarmed")
}
