package notify

import (
	"bytes"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// All user-supplied values pass through html/template on the HTML side, so
// markup in a form field is escaped rather than interpolated.

func mustHTML(name, body string) *htmltemplate.Template {
	return htmltemplate.Must(htmltemplate.New(name).Parse(body))
}

func mustText(name, body string) *texttemplate.Template {
	return texttemplate.Must(texttemplate.New(name).Parse(body))
}

func render(to, subject string, html *htmltemplate.Template, text *texttemplate.Template, data any) (Envelope, error) {
	var htmlBuf bytes.Buffer
	if err := html.Execute(&htmlBuf, data); err != nil {
		return Envelope{}, err
	}
	var textBuf bytes.Buffer
	if err := text.Execute(&textBuf, data); err != nil {
		return Envelope{}, err
	}
	return Envelope{
		To:      to,
		Subject: subject,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}

// orNotProvided implements the operator-email display policy for the
// optional user id field.
func orNotProvided(v string) string {
	if v == "" {
		return "Not provided"
	}
	return v
}

// orNotSpecified implements the display policy for optional project fields
// (current hosting, tech stack).
func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}
