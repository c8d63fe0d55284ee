package utils

import (
	"fmt"

	"techgetafrica/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// EmailOutcome enumerates what happened to a best-effort email. Emails are
// never retried and never block the request that triggered them.
type EmailOutcome string

const (
	EmailSent          EmailOutcome = "sent"
	EmailSkipped       EmailOutcome = "skipped"
	EmailFailedIgnored EmailOutcome = "failed-ignored"
)

// SendEmailAsync delivers an HTML email in the background. The outcome is
// logged and otherwise discarded.
func SendEmailAsync(toEmail, toName, subject, htmlBody string) {
	go func() {
		outcome := sendEmail(toEmail, toName, subject, htmlBody)
		logrus.WithFields(logrus.Fields{
			"to":      toEmail,
			"subject": subject,
			"outcome": outcome,
		}).Info("notification email")
	}()
}

func sendEmail(toEmail, toName, subject, htmlBody string) EmailOutcome {
	if config.AppConfig.SendgridApiKey == "" || toEmail == "" {
		return EmailSkipped
	}

	from := sgmail.NewEmail(config.AppConfig.EmailFromName, config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		return EmailFailedIgnored
	}
	if resp.StatusCode >= 400 {
		return EmailFailedIgnored
	}
	return EmailSent
}

// EnrollmentEmailBody builds the HTML body for the enrollment confirmation
func EnrollmentEmailBody(userName, courseTitle string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">You can now access all the course lessons and track your progress from your dashboard.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">TechGetAfrica Team</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)
}

// CertificateEmailBody builds the HTML body for the certificate issue email
func CertificateEmailBody(userName, courseTitle, certificateNumber string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Certificate of Completion</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations on completing:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate Number:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
					</div>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">TechGetAfrica Team</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle, certificateNumber)
}
