package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendWelcomeMail(userEmail string, artisanName string, businessName string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	return &smtp{auth: auth, mail: mail}
}

func (s *smtp) SendWelcomeMail(userEmail string, artisanName string, businessName string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: Welcome to ArtisanCraft\r\n\r\nHello %s, your shop %s is now live on ArtisanCraft. Log in with this email to complete your profile and start listing your crafts.",
		userEmail, artisanName, businessName))

	err := smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, message)
	if err != nil {
		return err
	}

	return nil
}
