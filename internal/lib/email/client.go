// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the provider and renders HTML bodies from
// templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
)

//go:embed templates/emails/*.html
var templateFS embed.FS

// Client wraps the Resend client and a logger.
type Client struct {
	client    *resend.Client
	from      string
	logger    *zerolog.Logger
	templates *template.Template
}

// NewClient creates an email Client using the Resend key from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) (*Client, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/emails/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email templates")
	}

	return &Client{
		client:    resend.NewClient(cfg.Integration.ResendAPIKey),
		from:      cfg.Integration.FromEmail,
		logger:    logger,
		templates: tmpl,
	}, nil
}

// Render executes the named template with data.
func (c *Client) Render(templateName Template, data map[string]string) (string, error) {
	var body bytes.Buffer

	if err := c.templates.ExecuteTemplate(&body, string(templateName)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := c.Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", "Inventory", c.from),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("to", to).
		Str("template", string(templateName)).
		Msg("email sent")

	return nil
}
