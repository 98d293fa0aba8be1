package server

import (
	"context"
	"net/http"
	"time"

	"creature-forge/internal/engine"
	"creature-forge/pkg/api"
	"creature-forge/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Service.
// Подписчик получает все события сборки и ответы на свои команды.
type Client struct {
	Service *engine.Service
	Conn    *websocket.Conn
	Send    chan api.BuildEvent
	ID      string
}

func NewClient(svc *engine.Service, conn *websocket.Conn) *Client {
	return &Client{
		Service: svc,
		Conn:    conn,
		Send:    make(chan api.BuildEvent, 256),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	log := logger.For("server")
	ctx, cancel := context.WithCancel(context.Background())
	var updates chan api.BuildEvent

	defer func() {
		cancel()
		if updates != nil {
			c.Service.Hub.Release(c.ID, updates)
			log.WithField("client_id", c.ID).Info("Client disconnected")
		} else {
			close(c.Send)
		}
		if err := c.Conn.Close(); err != nil {
			log.WithError(err).Warn("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE
	var hello api.ClientCommand
	if err := c.Conn.ReadJSON(&hello); err != nil {
		log.WithError(err).Warn("Handshake failed")
		return
	}

	id := hello.Token
	if id == "" {
		id = uuid.NewString()
	}

	// 2. ПОДПИСКА НА СОБЫТИЯ
	// Канал хаба закрывается при Unregister или повторной регистрации того же id.
	updates = c.Service.Hub.Register(id)
	c.ID = id
	log.WithFields(logrus.Fields{
		"client_id":   id,
		"subscribers": c.Service.Hub.SubscriberCount(),
	}).Info("Client subscribed")

	go func(updates chan api.BuildEvent) {
		for msg := range updates {
			select {
			case c.Send <- msg:
			case <-ctx.Done():
				return
			}
		}
		close(c.Send)
	}(updates)

	// Каталог сразу после подключения.
	c.Service.Hub.SendTo(id, Dispatch(ctx, c.Service, api.ClientCommand{Action: api.ActionList}))

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Error("WS error")
			}
			break
		}

		reply := Dispatch(ctx, c.Service, cmd)
		if reply.Type == api.EventError {
			log.WithFields(logrus.Fields{
				"client_id": id,
				"action":    cmd.Action,
			}).Warn(reply.Message)
		}
		if !c.Service.Hub.SendTo(id, reply) {
			log.WithField("client_id", id).Warn("Reply dropped: client queue is full")
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	log := logger.For("server")
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
