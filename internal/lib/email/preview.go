package email

// PreviewData contains sample template data for local preview and tests.
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[Template]map[string]string{
	TemplateItemChanged: {
		"Action":   "updated",
		"ItemID":   "7",
		"Item":     "Widgets",
		"Quantity": "5",
		"Link":     "http://localhost:8080/stuff/item/7",
	},
}
