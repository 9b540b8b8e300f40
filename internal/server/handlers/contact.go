package handlers

import (
	"net/http"
	"strings"

	"github.com/emberandoak/website/internal/contact"
	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/view"
)

// ContactInfo is the direct-contact panel beside the form. Every field falls
// back to the flagship shop's details.
type ContactInfo struct {
	ShortAddress string
	Phone        string
	PhoneDigits  string
	Email        string
	Hours        []content.HoursBlock
}

// FAQ is one question/answer pair on the contact page.
type FAQ struct {
	Question string
	Answer   string
}

// ContactData feeds the contact template.
type ContactData struct {
	BasePage
	Form    contact.Submission
	Result  *contact.Result
	Primary *ContactInfo
	FAQs    []FAQ
}

var contactFAQs = []FAQ{
	{
		Question: "Do you do catering?",
		Answer:   "Yes! We can do coffee service for events, meetings, and private parties. Email us at catering@emberandoak.coffee with details about your event and we'll put together a quote.",
	},
	{
		Question: "Can I buy your beans online?",
		Answer:   "Not yet, but we're working on it. For now, you can pick them up at either location. We rotate our single-origins monthly and always have The Division blend in stock.",
	},
	{
		Question: "Do you have dairy-free options?",
		Answer:   "Absolutely. We have oat milk (Misty Morning from Willamette Valley), almond milk, and coconut milk. Oat is our favorite for lattes. No extra charge.",
	},
	{
		Question: "Are you hiring?",
		Answer:   "We're always looking for good people. Drop off a resume at either location or email jobs@emberandoak.coffee. Coffee experience helps but isn't required. We can teach you to pull shots.",
	},
}

// Contact renders the empty contact form.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "contact", h.contactData(r))
}

// ContactSubmit validates a form post and re-renders the page with the
// outcome. A failed submission keeps the visitor's input; a successful one is
// logged and the form cleared. Nothing is persisted.
func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	submission := contact.Submission{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	result := contact.Validate(submission)

	data := h.contactData(r)
	data.Result = &result
	if result.Success {
		h.logger.Info("Contact form submission",
			"name", submission.Name,
			"email", submission.Email,
			"subject", submission.Subject,
			"message_chars", len([]rune(submission.Message)))
	} else {
		data.Form = submission
	}

	h.render(w, http.StatusOK, "contact", data)
}

func (h *Handlers) contactData(r *http.Request) ContactData {
	settings := fetchOne(r.Context(), h, "siteSettings", h.store.SiteSettings)
	primary := fetchOne(r.Context(), h, "primaryLocation", h.store.PrimaryLocation)
	return ContactData{
		BasePage: h.basePage(settings, "Contact", "", "contact"),
		Primary:  contactInfo(primary),
		FAQs:     contactFAQs,
	}
}

func contactInfo(primary *content.Location) *ContactInfo {
	info := &ContactInfo{
		ShortAddress: fallbackVisitAddress,
		Phone:        fallbackContactPhone,
		Email:        fallbackContactEmail,
	}
	if primary != nil {
		if addr := view.ShortAddress(primary.Address); addr != "" {
			info.ShortAddress = addr
		}
		if primary.Phone != "" {
			info.Phone = primary.Phone
		}
		if primary.Email != "" {
			info.Email = primary.Email
		}
		info.Hours = primary.Hours
	}
	info.PhoneDigits = view.DigitsOnly(info.Phone)
	return info
}
