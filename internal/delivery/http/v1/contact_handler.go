package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// maxContactBodyBytes caps the request body; a real form post is a few KiB.
const maxContactBodyBytes = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/send-contact", handler.SendContact)
}

// SendContact relays a contact form submission to the site owner's mailbox.
// 200 {"ok":true} on success, 422 with a field -> message map when the
// submission is invalid.
func (h *ContactHandler) SendContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err))
			return
		}
		c.Error(apperror.BadRequest("Unable to read request body"))
		return
	}

	body, err := decodeBody(raw)
	if err != nil {
		c.Error(apperror.BadRequest("Request body must be valid JSON"))
		return
	}

	err = h.contactUC.SendContactMessage(c.Request.Context(), domain.NewContactSubmission(body))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, email.ErrNotConfigured):
		c.Error(apperror.Unavailable("Contact service temporarily unavailable", err))
	default:
		// Validation errors carry their own status; anything else is a
		// transport failure and becomes a 500.
		c.Error(err)
	}
}

// decodeBody parses a JSON body. An empty body, null or any non-object
// value yields an empty map so every field is reported as missing.
// Anything after the first JSON value is rejected.
func decodeBody(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("malformed JSON body")
	}

	var payload any
	if err := binding.JSON.BindBody(raw, &payload); err != nil {
		return nil, err
	}

	body, ok := payload.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return body, nil
}
