package mailer

import (
	"log"

	gomail "gopkg.in/gomail.v2"

	"aboutme/config"
)

// Sender dispatches an email without blocking the caller. Implementations
// are fire-and-forget: there is no completion signal and failures are only
// logged.
type Sender interface {
	Enqueue(to, subject, htmlBody string)
}

type message struct {
	to      string
	subject string
	body    string
}

// Mailer sends HTML mail over SMTP from a single background worker fed by a
// buffered queue.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	jobs   chan message
}

func New(cfg config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
		jobs:   make(chan message, 64),
	}
}

// Start launches the worker goroutine and returns the mailer for chaining.
func (m *Mailer) Start() *Mailer {
	go m.loop()
	return m
}

func (m *Mailer) loop() {
	for job := range m.jobs {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", job.to)
		msg.SetHeader("Subject", job.subject)
		msg.SetBody("text/html", job.body)
		if err := m.dialer.DialAndSend(msg); err != nil {
			log.Printf("mailer: send to %s failed: %v", job.to, err)
		}
	}
}

// Enqueue queues a message for delivery. If the queue is full the message is
// dropped with a log line rather than blocking a request.
func (m *Mailer) Enqueue(to, subject, htmlBody string) {
	select {
	case m.jobs <- message{to: to, subject: subject, body: htmlBody}:
	default:
		log.Printf("mailer: queue full, dropping message to %s", to)
	}
}
