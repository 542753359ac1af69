package contact

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"suratguide/logger"
	"suratguide/models"
	"suratguide/utils"
)

const ThankYou = "Thank you for your message! We'll get back to you within 24 hours."

type Store interface {
	Save(ctx context.Context, msg models.ContactMessage) error
}

type Handler struct {
	store Store
	log   *logger.Logger
	now   func() time.Time
}

func NewHandler(store Store, log *logger.Logger) *Handler {
	return &Handler{store: store, log: log.With("handler", "contact"), now: time.Now}
}

// POST /api/contact
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var msg models.ContactMessage
	if err := utils.DecodeJSON(w, r, &msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	if err := utils.Validate.Struct(msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	msg.MessageID = utils.GetUUID()
	msg.CreatedAt = h.now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Save(ctx, msg); err != nil {
		h.log.Error("save contact message", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	h.log.Info("contact message received", "id", msg.MessageID, "inquiry", msg.InquiryType)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id":      msg.MessageID,
		"message": ThankYou,
	})
}
