package mailer

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"police-hr-backend/config"
)

var Instance Provider

// Provider отправка писем с вложениями, для простых уведомлений
// используется пакет smtp
type Provider interface {
	SendWithAttachment(from, to, subject, body, fileName string, attachment []byte) error
}

func NewHandler() {
	port, err := strconv.Atoi(config.Conf.Smtp.Port)
	if err != nil {
		port = 0
	}
	Instance = &impl{
		host:     config.Conf.Smtp.Host,
		port:     port,
		user:     config.Conf.Smtp.User,
		password: config.Conf.Smtp.Password,
	}
}

type impl struct {
	host     string
	port     int
	user     string
	password string
}

func (i impl) SendWithAttachment(from, to, subject, body, fileName string, attachment []byte) error {
	logger := log.
		WithField("sender", from).
		WithField("subject", subject)
	if i.user == "" || i.host == "" {
		logger.Warn("письмо с вложением не отправлено, не настроен smtp клиент")
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(fileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(attachment))
		return err
	}))

	dialer := gomail.NewDialer(i.host, i.port, i.user, i.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "ошибка отправки письма с вложением")
	}
	logger.Info("письмо с вложением отправлено")
	return nil
}
