package helpers

import (
	"bytes"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

const itineraryTemplate = `<html><body>
<h2>{{.Name}}</h2>
<p>{{len .Events}} evento(s) na sua agenda.</p>
<ul>
{{range .Events}}<li><strong>{{.Date}} {{.TimeLabel}}</strong> {{.Title}} ({{.Venue}}) - {{.TicketSummary}}</li>
{{end}}</ul>
<p>O arquivo em anexo pode ser importado no seu calendário.</p>
</body></html>`

type EmailData struct {
	EmailTo      string
	NameTo       string
	EmailFrom    string
	NameFrom     string
	Subject      string
	TemplatePath string
	FileName     string
	FileContent  []byte
	AwsSMTP      *gomail.Dialer
	// Sender overrides AwsSMTP, mostly for tests.
	Sender gomail.Sender
}

// Message renders the body and builds the message. When TemplatePath is
// empty the built-in itinerary template is used.
func (ed *EmailData) Message(data interface{}) (*gomail.Message, error) {
	var (
		t   *template.Template
		err error
	)
	if ed.TemplatePath != "" {
		t, err = template.ParseFiles(ed.TemplatePath)
	} else {
		t, err = template.New("itinerary").Parse(itineraryTemplate)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mail template")
	}

	var tpl bytes.Buffer
	if err := t.Execute(&tpl, data); err != nil {
		return nil, errors.Wrap(err, "failed to render mail template")
	}

	m := gomail.NewMessage()
	if ed.FileContent != nil {
		m.Attach(ed.FileName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(ed.FileContent)
			return err
		}))
	}

	m.SetHeader("From", m.FormatAddress(ed.EmailFrom, ed.NameFrom))
	m.SetHeader("To", m.FormatAddress(ed.EmailTo, ed.NameTo))
	m.SetHeader("Subject", ed.Subject)
	m.SetBody("text/html", tpl.String())
	return m, nil
}

func (ed *EmailData) SendEmail(data interface{}) error {
	m, err := ed.Message(data)
	if err != nil {
		return err
	}

	if ed.Sender != nil {
		return errors.Wrap(gomail.Send(ed.Sender, m), "failed to send email")
	}
	if ed.AwsSMTP == nil {
		return errors.New("smtp is not configured")
	}
	return errors.Wrap(ed.AwsSMTP.DialAndSend(m), "failed to send email")
}
