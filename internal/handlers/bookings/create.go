package bookings

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hillcrest/homestay-api/internal/db"
	"github.com/hillcrest/homestay-api/internal/mailer"
)

const notifySubject = "New Booking Received"

// textValue accepts a JSON string or number and carries the value as text.
// Submissions send adults/kids/kid_ages either way; both shapes pass through
// to the store unchanged, where the column types are the only check.
type textValue string

func (t *textValue) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = textValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = textValue(s)
	return nil
}

// Create persists a booking submission and emails the admin about it.
// KISS flow, deliberately close to a plain form endpoint:
// 1) Bind payload; fields are accepted as-is, nothing is validated here
// 2) Insert the booking and keep the generated id
// 3) Send the admin notification and only then report success; a delivery
// failure fails the whole request even though the row is already committed
// (no compensating delete)
func (h *Handler) Create(c *gin.Context) {
	var in struct {
		Name        string    `json:"name" form:"name"`
		Email       string    `json:"email" form:"email"`
		Contact     string    `json:"contact" form:"contact"`
		Arrival     string    `json:"arrival" form:"arrival"`
		Departure   string    `json:"departure" form:"departure"`
		Adults      textValue `json:"adults" form:"adults"`
		Kids        textValue `json:"kids" form:"kids"`
		KidAges     textValue `json:"kid_ages" form:"kid_ages"`
		Nationality string    `json:"nationality" form:"nationality"`
	}
	if err := c.ShouldBind(&in); err != nil {
		// Let the fallback middleware shape the response.
		_ = c.Error(err)
		return
	}

	b := db.Booking{
		Name:        in.Name,
		Email:       in.Email,
		Contact:     in.Contact,
		Arrival:     in.Arrival,
		Departure:   in.Departure,
		Adults:      string(in.Adults),
		Kids:        string(in.Kids),
		KidAges:     string(in.KidAges),
		Nationality: in.Nationality,
	}

	id, err := h.db.InsertBooking(c.Request.Context(), b)
	if err != nil {
		log.Printf("booking insert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	msg := mailer.Message{
		From:    h.from,
		To:      h.admin,
		Subject: notifySubject,
		Text:    notificationText(b),
	}
	if err := h.mail.Send(c.Request.Context(), msg); err != nil {
		// The row stays committed; the client still sees a failure.
		log.Printf("booking mail: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Booking successful and email sent",
		"bookingId": id,
	})
}

// notificationText renders the plain-text admin message. Values are embedded
// verbatim; the content is advisory only and never re-parsed.
func notificationText(b db.Booking) string {
	return fmt.Sprintf(`New booking received:
Name: %s
Email: %s
Contact: %s
Arrival: %s
Departure: %s
Adults: %s
Kids: %s
Kid Ages: %s
Nationality: %s
`, b.Name, b.Email, b.Contact, b.Arrival, b.Departure, b.Adults, b.Kids, b.KidAges, b.Nationality)
}
