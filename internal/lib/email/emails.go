package email

import (
	"fmt"
	"strconv"
)

// SendItemChangedEmail tells the notify address that an item was created,
// updated or deleted. link may be empty (e.g. after a delete).
func (c *Client) SendItemChangedEmail(to, action string, itemID int64, item string, quantity int, link string) error {
	data := map[string]string{
		"Action": action,
		"ItemID": strconv.FormatInt(itemID, 10),
		"Item":   item,
		"Link":   link,
	}

	if action != "deleted" {
		data["Quantity"] = strconv.Itoa(quantity)
	}

	return c.SendEmail(
		to,
		fmt.Sprintf("Inventory: item #%d %s", itemID, action),
		TemplateItemChanged,
		data,
	)
}
