package site

import (
	"errors"

	"nishan.dev/configs/configslog"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const contactSuccessMessage = "Thank you for your message! I will get back to you soon."

type ContactHandler struct {
	service services.IContactService
}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{service: services.NewContactService()}
}

func NewContactHandlerWithService(service services.IContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// ShowForm renders the empty contact form.
func (h *ContactHandler) ShowForm(c *fiber.Ctx) error {
	return c.Render("portfolio/contact", fiber.Map{
		"Title":       "Contact",
		"Form":        services.ContactForm{},
		"FieldErrors": map[string]string{},
	}, mainLayout)
}

// Submit validates and persists a contact submission, capturing the
// caller's IP and user agent. Script-driven submissions (detected via
// the X-Requested-With header) get JSON; plain form posts get the
// success page or the re-rendered form with field errors.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var form services.ContactForm
	if err := c.BodyParser(&form); err != nil {
		configslog.SLog.Warnf("Contact submission could not be parsed: %v", err)
		// Treat an unparsable body like an empty form: validation
		// produces the field errors.
		form = services.ContactForm{}
	}

	_, fieldErrors, err := h.service.SubmitMessage(c.UserContext(), form, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		if errors.Is(err, services.ErrContactInvalid) {
			if isAjax(c) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"errors":  fieldErrors,
				})
			}
			return c.Status(fiber.StatusBadRequest).Render("portfolio/contact", fiber.Map{
				"Title":       "Contact",
				"Form":        form,
				"FieldErrors": fieldErrors,
			}, mainLayout)
		}
		configslog.Log.Error("Contact submission failed", zap.Error(err))
		if isAjax(c) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Your message could not be saved. Please try again later.",
			})
		}
		return renderError(c, "Your message could not be saved. Please try again later.")
	}

	if isAjax(c) {
		return c.JSON(fiber.Map{
			"success": true,
			"message": contactSuccessMessage,
		})
	}
	return c.Render("portfolio/contact_success", fiber.Map{
		"Title":   "Message Sent",
		"Message": contactSuccessMessage,
	}, mainLayout)
}
