package mailer

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"restring/models"
	"restring/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// SendEmail delivers a single transactional email.
func SendEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.To == "" || input.Subject == "" || input.Body == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "to, subject and body are required")
		return
	}

	if err := Default.Send(input.To, input.Subject, input.Body); err != nil {
		log.Printf("mailer: send to %s failed: %v", input.To, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"id": uuid.NewString()})
}

// Contact handles the public contact form. The owner notification and
// the customer confirmation are both best-effort: delivery failures are
// logged and the caller still gets a 200.
func Contact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	ownerBody := fmt.Sprintf("From: %s <%s>\n\n%s", input.Name, input.Email, input.Message)
	if err := Default.Send(ownerEmail, "New contact form message", ownerBody); err != nil {
		log.Printf("contact: owner notification failed: %v", err)
	}

	confirmation := fmt.Sprintf("Hi %s,\n\nThanks for getting in touch. We'll reply within one business day.\n", input.Name)
	go func(to, body string) {
		if err := Default.Send(to, "We received your message", body); err != nil {
			log.Printf("contact: confirmation to %s failed: %v", to, err)
		}
	}(input.Email, confirmation)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Message received"})
}

// SendBookingConfirmation mails the customer after a booking lands.
// Called on its own goroutine; failures are logged only.
func SendBookingConfirmation(b models.Booking) {
	if Default == nil {
		return
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour restringing request is in. Reference: %s\nString: %s\nPreferred date: %s\n\nWe'll confirm your slot shortly.\n",
		b.CustomerName, b.ID, b.StringName, b.PreferredDate,
	)
	if err := Default.Send(b.CustomerEmail, "Booking received", body); err != nil {
		log.Printf("booking %s: confirmation email failed: %v", b.ID, err)
	}
}
