package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `
<div style="font-family:sans-serif;max-width:600px;margin:auto;padding:32px;background:#0a0a0a;color:#fff;border-radius:12px">
  <h2 style="color:#FFC72C;margin-bottom:8px">New Contact Message</h2>
  <hr style="border-color:rgba(255,255,255,0.1);margin-bottom:24px"/>
  <p style="margin:0 0 8px"><span style="color:rgba(255,255,255,0.5);font-size:11px;letter-spacing:.15em;text-transform:uppercase">From</span></p>
  <p style="margin:0 0 20px;font-size:16px;font-weight:600">{{.SenderName}} &lt;{{.SenderEmail}}&gt;</p>
  <p style="margin:0 0 8px"><span style="color:rgba(255,255,255,0.5);font-size:11px;letter-spacing:.15em;text-transform:uppercase">Message</span></p>
  <p style="margin:0;font-size:15px;line-height:1.7;color:rgba(255,255,255,0.85)">{{.Message}}</p>
</div>
`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// RenderContactHTML renders the contact email body. Values are escaped;
// newlines in the message become <br/>.
func RenderContactHTML(data ContactEmailData) (string, error) {
	var body bytes.Buffer
	err := contactTmpl.Execute(&body, struct {
		SenderName  string
		SenderEmail string
		Message     template.HTML
	}{
		SenderName:  data.SenderName,
		SenderEmail: data.SenderEmail,
		Message:     lineBreaks(data.Message),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func lineBreaks(s string) template.HTML {
	escaped := template.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br/>"))
}
