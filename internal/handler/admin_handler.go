package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BrunoSoussa/k-means-recomendation/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: s}
}

// @Summary Resumo do dataset carregado
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DatasetSummary
// @Router /admin/dataset/summary [get]
func (h *AdminHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Summary())
}

// @Summary Recarregar os CSVs e reconstruir o índice
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DatasetSummary
// @Router /admin/dataset/reload [post]
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.Reload()
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}
