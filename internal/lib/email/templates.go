package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateItemChanged corresponds to templates/emails/item_changed.html
	TemplateItemChanged Template = "item_changed"
)
