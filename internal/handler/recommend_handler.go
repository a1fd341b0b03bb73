package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/BrunoSoussa/k-means-recomendation/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendações para um livro
// @Tags recommend
// @Produce json
// @Param title query string true "título exato do livro"
// @Param k query int false "quantidade de recomendações (máx 50)"
// @Param refresh query bool false "se true, ignora o cache Redis"
// @Success 200 {array} models.BookRecommendation
// @Router /recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "parâmetro title é obrigatório", http.StatusBadRequest)
		return
	}
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		Title:   title,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Histórico de consultas de um título
// @Tags recommend
// @Produce json
// @Param title query string true "título exato do livro"
// @Success 200 {array} models.RecommendationLog
// @Router /recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "parâmetro title é obrigatório", http.StatusBadRequest)
		return
	}

	list, err := h.svc.History(r.Context(), title, 20)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// upgrader global (não afeta o swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendações via WebSocket
// @Tags recommend
// @Produce json
// @Param title query string true "título exato do livro"
// @Param k query int false "quantidade de recomendações (máx 50)"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "não foi possível abrir o WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	title := r.URL.Query().Get("title")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "conexão aberta, consultando índice…",
	})

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{Title: title, K: k})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"title":       title,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
