package server

import (
	"encoding/json"
	"net/http"

	"creature-forge/internal/assembly"
	"creature-forge/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сервиса
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/creatures", h.handleCreatures)
	mux.HandleFunc("/debug/components", h.handleComponents)
	mux.HandleFunc("/debug/tables", h.handleTables)
}

// /debug/creatures - каталог существ и вариантов, с флагом собранности
func (h *DebugHandler) handleCreatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Catalog())
}

// /debug/components?class=GlowFish - полный отчёт последней сборки
func (h *DebugHandler) handleComponents(w http.ResponseWriter, r *http.Request) {
	classID := r.URL.Query().Get("class")
	if classID == "" {
		http.Error(w, "class is required", http.StatusBadRequest)
		return
	}

	report, ok := h.Service.Report(classID)
	if !ok {
		http.Error(w, "Prefab not built yet", http.StatusNotFound)
		return
	}

	type componentsView struct {
		Report   assembly.Report       `json:"report"`
		Skipped  []assembly.Entry      `json:"skipped"`
		Failed   []assembly.Entry      `json:"failed"`
		Attached []assembly.Capability `json:"attached"`
	}
	view := componentsView{Report: report, Attached: report.Attached}
	for _, e := range report.Entries {
		switch e.Outcome {
		case assembly.MissingDependency:
			view.Skipped = append(view.Skipped, e)
		case assembly.Failed:
			view.Failed = append(view.Failed, e)
		}
	}
	writeJSON(w, view)
}

// /debug/tables - снимок таблиц хоста (кислота, биореактор, рецепты и т.д.)
func (h *DebugHandler) handleTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Tables.Snapshot(h.Service.TechTypes.Name))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
