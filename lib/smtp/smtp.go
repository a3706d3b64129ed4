package smtp

import (
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		addr:       host + ":" + port,
		configured: user != "" && host != "" && port != "",
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	addr       string
	configured bool
	tlsEnabled bool
}

func buildMessage(from, subject, message string) io.Reader {
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	return strings.NewReader(fmt.Sprintf("Subject: HRMS - %s\n%s\r\n Отправитель: %s\r\n %s\r\n",
		subject, mimeHeaders, from, message))
}

func (i impl) SendEMail(from, to, message, subject string) error {
	logger := log.WithField("sender", from).WithField("recipient", to)
	if !i.configured {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := buildMessage(from, subject, message)

	send := smtp.SendMail
	if i.tlsEnabled {
		send = smtp.SendMailTLS
	}
	if err := send(i.addr, auth, i.user, []string{to}, body); err != nil {
		logger.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}
