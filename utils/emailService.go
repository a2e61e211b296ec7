package utils

import (
	"fmt"
	"log"
	"net/http"

	"reinvent/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendEmail sends a transactional email through SendGrid. With no API key
// configured (local dev) the message is logged and dropped.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	cfg := config.AppConfig

	if cfg.SendgridApiKey == "" {
		log.Printf("[EMAIL] SendGrid not configured, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := sgmail.NewEmail("Reinvent Leadership", cfg.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	request := sendgrid.GetRequest(cfg.SendgridApiKey, sendgridEndpoint, sendgridHost)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(message)

	resp, err := sendgrid.API(request)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// Shared HTML wrapper for transactional emails
func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1E3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E3A5F; line-height: 1.6; }
			.footer { padding: 20px 30px; text-align: center; color: #999999; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Reinvent Leadership Training</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentConfirmation emails a user after a successful payment
func SendEnrollmentConfirmation(toName, toEmail, programName string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your enrollment in <b>%s</b> is confirmed. Your course is ready in your dashboard.</p>
		<p>We are praying this season of growth bears much fruit.</p>`, toName, programName)
	return SendEmail(toName, toEmail, "Enrollment Confirmed: "+programName, emailTemplate("Welcome to the Program", body))
}

// SendBookingConfirmation emails a user after booking a coaching session
func SendBookingConfirmation(toName, toEmail, coachName, datetime string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your coaching session with <b>%s</b> is booked for <b>%s</b>.</p>
		<p>You can manage your sessions from your dashboard.</p>`, toName, coachName, datetime)
	return SendEmail(toName, toEmail, "Coaching Session Booked", emailTemplate("Session Confirmed", body))
}

// SendSessionReminder emails a user the day before a coaching session
func SendSessionReminder(toName, toEmail, coachName, datetime string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>This is a reminder that your coaching session with <b>%s</b> is scheduled for <b>%s</b>.</p>`, toName, coachName, datetime)
	return SendEmail(toName, toEmail, "Upcoming Coaching Session", emailTemplate("Session Reminder", body))
}

// SendContactNotification relays a contact-form submission to the admin inbox
func SendContactNotification(name, email, subject, message string) error {
	body := fmt.Sprintf(`
		<p><b>From:</b> %s (%s)</p>
		<p><b>Subject:</b> %s</p>
		<p>%s</p>`, name, email, subject, message)
	return SendEmail("Admin", config.AppConfig.AdminEmail, "New Contact Submission", emailTemplate("Contact Form", body))
}
