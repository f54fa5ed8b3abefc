// Package contact builds the outbound hand-off links the site uses in
// place of a backend: WhatsApp deep links for sales conversations and
// mailto links for privacy requests. Both are fire-and-forget; nothing
// is awaited from the other side.
package contact

import (
	"fmt"
	"net/url"
)

// WhatsAppLink returns a wa.me deep link that opens a chat with the
// given number pre-filled with message.
func WhatsAppLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// MailtoLink returns a mailto URL with subject and body pre-filled.
func MailtoLink(address, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		address, url.QueryEscape(subject), url.QueryEscape(body))
}

// DatasetInquiry is the canned message sent when a visitor asks about
// a single dataset from its card.
func DatasetInquiry(title string) string {
	return fmt.Sprintf("I'm interested in learning more about the %q dataset. Can you provide more details?", title)
}

// GeneralInquiry is the canned message behind the floating WhatsApp
// button.
func GeneralInquiry() string {
	return "Hello! I'm interested in learning more about your real estate data services. Could you please provide more information?"
}

// FAQInquiry is the canned message behind the FAQ section's contact
// button.
func FAQInquiry() string {
	return "I have a question about your real estate data services that wasn't answered in the FAQ section."
}

// DemoRequest formats the enterprise contact-form submission as a
// WhatsApp message.
func DemoRequest(name, email, phone, company string) string {
	return fmt.Sprintf("*Demo Request*\n\nName: %s\nEmail: %s\nPhone: %s\nCompany: %s", name, email, phone, company)
}
