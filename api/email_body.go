package api

import (
	"fmt"
	"html"
	"strings"

	"github.com/itsmepratik/oil-change-site-115/models"
)

const sectionHeadingStyle = `color: #333; border-bottom: 2px solid #667eea; padding-bottom: 10px; margin-top: 20px;`

// notificationSubject builds the operator-facing subject line.
func notificationSubject(req models.BookingRequest) string {
	if req.IsQuote() {
		return fmt.Sprintf("New Quote Request - %s", strings.ToUpper(req.ServiceType))
	}
	return fmt.Sprintf("New Service Booking - %s", strings.ToUpper(req.ServiceType))
}

// buildNotificationHTML renders the operator notification body. The
// output is deterministic for a given request. Fleet requests never
// include the vehicle section, even when the payload carries vehicle
// details.
func buildNotificationHTML(req models.BookingRequest) string {
	var b strings.Builder

	heading := "🚗 New Service Booking"
	followUp := "booking"
	if req.IsQuote() {
		heading = "💼 New Quote Request"
		followUp = "quote"
	}

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 10px 10px 0 0;">`)
	fmt.Fprintf(&b, `<h1 style="color: white; margin: 0; font-size: 28px;">%s</h1>`, heading)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background-color: white; padding: 30px; border-radius: 0 0 10px 10px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">`)

	fmt.Fprintf(&b, `<h2 style="%s">Customer Information</h2>`, sectionHeadingStyle)
	b.WriteString(`<p style="font-size: 16px; line-height: 1.6;">`)
	fmt.Fprintf(&b, `<strong>Name:</strong> %s<br>`, html.EscapeString(req.Name))
	fmt.Fprintf(&b, `<strong>Phone:</strong> %s`, html.EscapeString(req.Phone))
	if req.Email != "" {
		fmt.Fprintf(&b, `<br><strong>Email:</strong> %s`, html.EscapeString(req.Email))
	}
	b.WriteString(`</p>`)

	fmt.Fprintf(&b, `<h2 style="%s">Service Details</h2>`, sectionHeadingStyle)
	b.WriteString(`<p style="font-size: 16px; line-height: 1.6;">`)
	fmt.Fprintf(&b, `<strong>Service Type:</strong> %s`, html.EscapeString(strings.ToUpper(req.ServiceType)))
	if req.IsFleet() {
		b.WriteString(` - Fleet Service`)
	}
	if req.PreferredDate != "" {
		fmt.Fprintf(&b, `<br><strong>Preferred Date:</strong> %s`, html.EscapeString(req.PreferredDate))
	}
	if req.PreferredTime != "" {
		fmt.Fprintf(&b, `<br><strong>Preferred Time:</strong> %s`, html.EscapeString(req.PreferredTime))
	}
	b.WriteString(`</p>`)

	if !req.IsFleet() && req.VehicleModel != "" {
		fmt.Fprintf(&b, `<h2 style="%s">Vehicle Information</h2>`, sectionHeadingStyle)
		b.WriteString(`<p style="font-size: 16px; line-height: 1.6;">`)
		fmt.Fprintf(&b, `<strong>Vehicle Model:</strong> %s`, html.EscapeString(req.VehicleModel))
		if req.PreferredOil != "" {
			fmt.Fprintf(&b, `<br><strong>Preferred Oil:</strong> %s`, html.EscapeString(req.PreferredOil))
		}
		if req.FilterQuality != "" {
			fmt.Fprintf(&b, `<br><strong>Filter Quality:</strong> %s`, html.EscapeString(req.FilterQuality))
		}
		b.WriteString(`</p>`)
	}

	if req.Notes != "" {
		fmt.Fprintf(&b, `<h2 style="%s">Additional Notes</h2>`, sectionHeadingStyle)
		fmt.Fprintf(&b, `<p style="font-size: 16px; line-height: 1.6; background-color: #f5f5f5; padding: 15px; border-radius: 5px;">%s</p>`, html.EscapeString(req.Notes))
	}

	b.WriteString(`<div style="margin-top: 30px; padding: 15px; background-color: #667eea; border-radius: 5px;">`)
	fmt.Fprintf(&b, `<p style="color: white; margin: 0; text-align: center;">Please contact the customer as soon as possible to confirm their %s</p>`, followUp)
	b.WriteString(`</div>`)

	b.WriteString(`</div></div>`)
	return b.String()
}

// buildNotificationText is the plain-text fallback of the notification.
func buildNotificationText(req models.BookingRequest) string {
	var b strings.Builder

	if req.IsQuote() {
		b.WriteString("New Quote Request\n\n")
	} else {
		b.WriteString("New Service Booking\n\n")
	}

	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	if req.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", req.Email)
	}
	fmt.Fprintf(&b, "Service Type: %s", strings.ToUpper(req.ServiceType))
	if req.IsFleet() {
		b.WriteString(" - Fleet Service")
	}
	b.WriteString("\n")
	if req.PreferredDate != "" {
		fmt.Fprintf(&b, "Preferred Date: %s\n", req.PreferredDate)
	}
	if req.PreferredTime != "" {
		fmt.Fprintf(&b, "Preferred Time: %s\n", req.PreferredTime)
	}
	if !req.IsFleet() && req.VehicleModel != "" {
		fmt.Fprintf(&b, "Vehicle Model: %s\n", req.VehicleModel)
		if req.PreferredOil != "" {
			fmt.Fprintf(&b, "Preferred Oil: %s\n", req.PreferredOil)
		}
		if req.FilterQuality != "" {
			fmt.Fprintf(&b, "Filter Quality: %s\n", req.FilterQuality)
		}
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", req.Notes)
	}
	return b.String()
}

// buildConfirmation renders the customer-facing confirmation email.
func buildConfirmation(req models.BookingRequest) (subject, text, htmlBody string) {
	if req.IsQuote() {
		subject = "Quote Request Received - HNS Automotive"
		text = fmt.Sprintf("Hi %s,\n\nWe received your quote request and will send you a detailed quote within 24 hours.\n\nHNS Automotive, Saham", req.Name)
		htmlBody = fmt.Sprintf(`<p>Hi %s,</p><p>We received your quote request and will send you a detailed quote within 24 hours.</p><p>HNS Automotive, Saham</p>`, html.EscapeString(req.Name))
		return subject, text, htmlBody
	}
	subject = "Booking Received - HNS Automotive"
	text = fmt.Sprintf("Hi %s,\n\nWe received your booking and will contact you shortly to confirm your appointment.\n\nHNS Automotive, Saham", req.Name)
	htmlBody = fmt.Sprintf(`<p>Hi %s,</p><p>We received your booking and will contact you shortly to confirm your appointment.</p><p>HNS Automotive, Saham</p>`, html.EscapeString(req.Name))
	return subject, text, htmlBody
}
