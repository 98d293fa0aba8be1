package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы событий, которые сервер рассылает подписчикам.
const (
	EventRegistered = "REGISTERED"
	EventBuilt      = "BUILT"
	EventFailed     = "FAILED"
	EventCatalog    = "CATALOG"
	EventError      = "ERROR"
)

// BuildEvent это корневой объект, который сервер отправляет клиенту.
// Отправляется при регистрации существа, после каждой сборки префаба
// и в ответ на команды клиента.
type BuildEvent struct {
	// Type один из Event*.
	Type string `json:"type"`

	// ClassID существа или варианта, к которому относится событие.
	ClassID  string `json:"classId,omitempty"`
	TechType string `json:"techType,omitempty"`

	// BuildID совпадает с идентификатором отчёта сборки.
	BuildID string `json:"buildId,omitempty"`

	// Report краткая сводка прохода сборщика. Есть только у BUILT.
	Report *ReportView `json:"report,omitempty"`

	// Creatures каталог зарегистрированных существ. Есть только у CATALOG.
	Creatures []CreatureView `json:"creatures,omitempty"`

	// InstanceID экземпляра, выданного в ответ на SPAWN.
	InstanceID string `json:"instanceId,omitempty"`

	// Message текст ошибки для FAILED и ERROR.
	Message string `json:"message,omitempty"`

	Timestamp int64 `json:"timestamp"` // Unix milliseconds
}

// ReportView это DTO отчёта сборки.
type ReportView struct {
	Cloning    bool     `json:"cloning"`
	DurationMs int64    `json:"durationMs"`
	Attached   []string `json:"attached"`
	Skipped    []string `json:"skipped,omitempty"`
	Failed     []string `json:"failed,omitempty"`
	ErrorCount int      `json:"errorCount"`
}

// CreatureView это DTO зарегистрированного существа.
type CreatureView struct {
	ClassID  string `json:"classId"`
	TechType string `json:"techType"`
	Built    bool   `json:"built"`
	Variant  bool   `json:"variant,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// Действия клиента.
const (
	ActionList  = "LIST"
	ActionSpawn = "SPAWN"
)

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token имя клиента. Обязателен только для первого сообщения.
	// Пустой токен заменяется сгенерированным.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// SpawnPayload используется для SPAWN: собрать префаб и выдать экземпляр.
type SpawnPayload struct {
	ClassID string `json:"classId"`
}
