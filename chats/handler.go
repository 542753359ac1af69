package chats

import (
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"suratguide/models"
	"suratguide/utils"
)

type Handler struct {
	assistant *Assistant
	hub       *Hub
}

func NewHandler(a *Assistant, hub *Hub) *Handler {
	return &Handler{assistant: a, hub: hub}
}

type askRequest struct {
	Question string `json:"question"`
}

func botMessage(text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        utils.GetUUID(),
		Text:      text,
		Sender:    models.SenderBot,
		Timestamp: time.Now().UTC(),
	}
}

// POST /api/chat
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req askRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "question is required")
		return
	}

	reply := h.assistant.Ask(r.Context(), req.Question)
	utils.RespondWithJSON(w, http.StatusOK, botMessage(reply))
}
