package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned by senders that lack provider credentials.
var ErrNotConfigured = errors.New("email service is not configured")

// Sender delivers a composed message through a mail provider.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Message is a single HTML email addressed to one recipient.
type Message struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
	Date     time.Time
}

// Bytes renders the message as an RFC 5322 document with CRLF line endings.
func (m *Message) Bytes() []byte {
	date := m.Date
	if date.IsZero() {
		date = time.Now()
	}

	var buf bytes.Buffer
	writeHeader(&buf, "From", (&mail.Address{Name: m.FromName, Address: m.From}).String())
	writeHeader(&buf, "To", (&mail.Address{Address: m.To}).String())
	if m.ReplyTo != "" {
		writeHeader(&buf, "Reply-To", (&mail.Address{Address: m.ReplyTo}).String())
	}
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("UTF-8", m.Subject))
	writeHeader(&buf, "Date", date.Format(time.RFC1123Z))
	writeHeader(&buf, "Message-ID", messageID(m.From))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", "text/html; charset=UTF-8")
	writeHeader(&buf, "Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	// Writes into a bytes.Buffer cannot fail.
	qp := quotedprintable.NewWriter(&buf)
	_, _ = qp.Write([]byte(toCRLF(m.HTML)))
	_ = qp.Close()
	return buf.Bytes()
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}

func messageID(from string) string {
	domain := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i+1 < len(from) {
		domain = from[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

func toCRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
