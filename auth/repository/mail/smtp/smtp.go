package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/pkg/errors"
	"github.com/shakti7/Price-Optimization-BE/domain"
)

type verificationMailRepo struct {
	smtpAddr   string
	auth       smtp.Auth
	sender     string
	backendURL string
}

func CreateVerificationMailRepo(smtpServer, smtpPort, sender, password, backendURL string) domain.VerificationMailRepo {
	return &verificationMailRepo{
		smtpAddr:   smtpServer + ":" + smtpPort,
		auth:       smtp.PlainAuth("", sender, password, smtpServer),
		sender:     sender,
		backendURL: backendURL,
	}
}

func (v *verificationMailRepo) SendVerificationMail(email, verificationCode string) error {
	verifyLink := fmt.Sprintf("%s/api/v1/auth/verify-email/%s", v.backendURL, verificationCode)
	message := []byte("To: " + email + "\r\n" +
		"Subject: Verify your email\r\n" +
		"\r\n" +
		"Welcome! Please verify your email by clicking the link below:\r\n" +
		verifyLink + "\r\n")

	if err := smtp.SendMail(v.smtpAddr, v.auth, v.sender, []string{email}, message); err != nil {
		return errors.Wrap(err, "send mail failed")
	}
	return nil
}
