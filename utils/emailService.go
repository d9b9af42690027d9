package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lssctc/config"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		fmt.Println("Email not configured, skipping:", subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LSSCTC Training <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #14213D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #14213D; line-height: 1.6; }
			.content h2 { color: #14213D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FCA311; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LSSCTC TRAINING CENTER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LSSCTC. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentApprovedEmail notifies a trainee that their enrollment was approved
func SendEnrollmentApprovedEmail(email, name, classCode string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your enrollment request has been approved. You now have a confirmed seat in class:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>You will be notified again when the class starts and the course material opens.</p>
	`, name, classCode)

	go SendEmail([]string{email}, "Enrollment Approved - LSSCTC Training", getEmailTemplate("Enrollment Approved", body))
}

// SendClassStartedEmail notifies a trainee that their class is now running
func SendClassStartedEmail(email, name, classCode string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your class <strong>%s</strong> has started. Log in to access the sections and activities of your course.</p>
		<p>Your progress is tracked automatically as you complete each activity.</p>
	`, name, classCode)

	go SendEmail([]string{email}, "Class Started - LSSCTC Training", getEmailTemplate("Your Class Has Started", body))
}

// SendCourseCompletedEmail congratulates a trainee on finishing the course
func SendCourseCompletedEmail(email, name, classCode string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have completed every activity of class <strong>%s</strong>.</p>
		<p>Your training record has been updated.</p>
	`, name, classCode)

	go SendEmail([]string{email}, "Course Completed - LSSCTC Training", getEmailTemplate("Course Completed", body))
}
