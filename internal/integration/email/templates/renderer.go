// Package templates holds the transactional emails sent to users, each as a
// pair of <name>.html and optional <name>.txt files.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

const defaultCompany = "Gestão Financeira"

// Renderer executes the embedded templates. Every template can call
// {{company}} to print the business name the emails are sent on behalf of.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewRenderer(company string) (*Renderer, error) {
	if company == "" {
		company = defaultCompany
	}
	companyFn := func() string { return company }

	html, err := htmltemplate.New("email").
		Funcs(htmltemplate.FuncMap{"company": companyFn}).
		ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.New("email").
		Funcs(texttemplate.FuncMap{"company": companyFn}).
		ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render returns the HTML body and, when a .txt twin exists, the plain text body.
func (r *Renderer) Render(name string, data any) (string, string, error) {
	var html bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return "", "", fmt.Errorf("render %s.html: %w", name, err)
	}
	if r.text.Lookup(name+".txt") == nil {
		return html.String(), "", nil
	}
	var text bytes.Buffer
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("render %s.txt: %w", name, err)
	}
	return html.String(), text.String(), nil
}

type PasswordResetData struct {
	UserName  string
	ResetURL  string
	ExpiresIn string
}

type PasswordChangedData struct {
	UserName  string
	ChangedAt string
}
