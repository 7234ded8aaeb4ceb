package registrations

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hillcrest/homestay-api/internal/db"
)

// Create registers an attendee.
// KISS flow:
// 1) Bind payload
// 2) Require name, email and batch before touching the store; phone is optional
// 3) Insert attendee (email uniqueness enforced by the store)
// 4) Map a duplicate email to a fixed user-facing message
func (h *Handler) Create(c *gin.Context) {
	var in struct {
		Name  string `json:"name" form:"name"`
		Email string `json:"email" form:"email"`
		Batch string `json:"batch" form:"batch"`
		Phone string `json:"phone" form:"phone"`
	}
	if err := c.ShouldBind(&in); err != nil {
		// Let the fallback middleware shape the response.
		_ = c.Error(err)
		return
	}

	// Required means present and non-empty; whitespace-only values pass
	// through like any other text.
	if in.Name == "" || in.Email == "" || in.Batch == "" {
		log.Printf("registration validation: missing required fields")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	a := db.Attendee{Name: in.Name, Email: in.Email, Batch: in.Batch, Phone: in.Phone}
	id, err := h.db.InsertAttendee(c.Request.Context(), a)
	if err != nil {
		log.Printf("registration insert: %v", err)
		msg := err.Error()
		if errors.Is(err, db.ErrDuplicate) {
			msg = "Email already registered"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}
