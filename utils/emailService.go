package utils

import (
	"fmt"
	"log"

	"stage/config"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers a single HTML email through SendGrid. Without an API
// key configured it is a no-op so local setups never block on email.
func sendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig == nil || config.AppConfig.SendGridKey == "" {
		return nil
	}

	from := mail.NewEmail("Stage", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	logSendResult(toEmail, resp)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
	}
	return nil
}

func logSendResult(toEmail string, resp *rest.Response) {
	log.Printf("[EMAIL] sent to %s, status %d", toEmail, resp.StatusCode)
}

// SendEnrollmentEmail confirms a new enrollment.
func SendEnrollmentEmail(email, userName, courseTitle string) error {
	subject := "Course Enrollment Confirmation - Stage"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Track your progress on your dashboard and mark the course completed when you are done.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Stage - The Course Manager</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	return sendEmail(email, userName, subject, body)
}

// SendCompletionEmail congratulates a user on finishing a course.
func SendCompletionEmail(email, userName, courseTitle string) error {
	subject := "Course Completed - Stage"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Course Completed!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations on completing:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Your progress has been set to 100%%. On to the next one!</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Stage - The Course Manager</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	return sendEmail(email, userName, subject, body)
}
