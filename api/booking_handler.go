package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/itsmepratik/oil-change-site-115/config"
	"github.com/itsmepratik/oil-change-site-115/models"
	"github.com/itsmepratik/oil-change-site-115/utils"
)

// Swappable for tests so handler tests never hit SendGrid.
var sendEmail = utils.SendEmail

// SendBookingEmailHandler handles booking and quote submissions from the
// site's dialogs. It formats the payload into an HTML notification,
// dispatches it to every configured operator address, and sends the
// customer a confirmation when they supplied an email address.
func SendBookingEmailHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Booking Email API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Phone == "" || req.ServiceType == "" {
		utils.RespondError(w, &logMessageBuilder, "Name, phone, and service type are required", http.StatusBadRequest)
		return
	}

	if req.Type == "" {
		req.Type = models.RequestTypeBooking
	}

	if len(config.NotifyEmails) == 0 {
		utils.RespondError(w, &logMessageBuilder, "No notification recipients configured", http.StatusInternalServerError)
		return
	}

	requestID := uuid.New().String()
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Request %s: %s from %s (%s)", requestID, req.Type, req.Name, req.ServiceType))

	subject := notificationSubject(req)
	htmlBody := buildNotificationHTML(req)
	textBody := buildNotificationText(req)

	var sendErr error
	for _, addr := range config.NotifyEmails {
		if err := sendEmail("Operations", addr, subject, textBody, htmlBody); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to notify %s: %v", addr, err))
			sendErr = err
		}
	}

	// Confirmation to the customer is best effort: its failure never
	// fails the request.
	if req.Email != "" {
		confSubject, confText, confHTML := buildConfirmation(req)
		if err := sendEmail(req.Name, req.Email, confSubject, confText, confHTML); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to send confirmation to %s: %v", req.Email, err))
		}
	}

	if sendErr != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to dispatch notification email", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Notification dispatched")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"request_id": requestID,
	})
}
