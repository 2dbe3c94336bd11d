package services

import (
	"context"
	"errors"
	"fmt"

	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactServiceError string

func (e ContactServiceError) Error() string { return string(e) }

const (
	ErrContactInvalid       ContactServiceError = "contact submission is invalid"
	ErrContactCreateFailed  ContactServiceError = "contact message could not be saved"
	ErrContactNotFound      ContactServiceError = "contact message not found"
	ErrContactInvalidStatus ContactServiceError = "unknown contact message status"
)

// ContactForm is the public submission payload.
type ContactForm struct {
	Name    string `form:"name" json:"name" validate:"required,max=200"`
	Email   string `form:"email" json:"email" validate:"required,email,max=254"`
	Subject string `form:"subject" json:"subject" validate:"required,max=200"`
	Message string `form:"message" json:"message" validate:"required"`
}

// fieldErrorMessages maps field+rule to the text rendered next to the
// field.
var fieldErrorMessages = map[string]string{
	"Name.required":    "Name is required.",
	"Name.max":         "Name must be at most 200 characters.",
	"Email.required":   "Email is required.",
	"Email.email":      "Enter a valid email address.",
	"Email.max":        "Email must be at most 254 characters.",
	"Subject.required": "Subject is required.",
	"Subject.max":      "Subject must be at most 200 characters.",
	"Message.required": "Message is required.",
}

// fieldNames maps struct fields to their form field names.
var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Subject": "subject",
	"Message": "message",
}

type IContactService interface {
	SubmitMessage(ctx context.Context, form ContactForm, ipAddress, userAgent string) (*models.ContactMessage, map[string]string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type ContactService struct {
	repo     repositories.IContactMessageRepository
	validate *validator.Validate
}

func NewContactService() IContactService {
	return &ContactService{
		repo:     repositories.NewContactMessageRepository(),
		validate: validator.New(),
	}
}

func NewContactServiceWithRepo(repo repositories.IContactMessageRepository) IContactService {
	return &ContactService{repo: repo, validate: validator.New()}
}

// SubmitMessage validates the payload and persists it with status "new".
// On validation failure it returns per-field error text and
// ErrContactInvalid; no record is written.
func (s *ContactService) SubmitMessage(ctx context.Context, form ContactForm, ipAddress, userAgent string) (*models.ContactMessage, map[string]string, error) {
	if fieldErrors := s.validateForm(form); len(fieldErrors) > 0 {
		return nil, fieldErrors, ErrContactInvalid
	}

	message := &models.ContactMessage{
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		Status:    models.ContactStatusNew,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		configslog.Log.Error("ContactService.SubmitMessage: create failed",
			zap.String("email", form.Email), zap.Error(err))
		return nil, nil, ErrContactCreateFailed
	}

	configslog.SLog.Infof("Contact message received from %s (%s)", form.Name, form.Email)
	return message, nil, nil
}

func (s *ContactService) validateForm(form ContactForm) map[string]string {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["form"] = "Submission could not be validated."
		return fieldErrors
	}
	for _, fieldErr := range validationErrors {
		name := fieldNames[fieldErr.StructField()]
		if name == "" {
			name = fieldErr.StructField()
		}
		message, ok := fieldErrorMessages[fieldErr.StructField()+"."+fieldErr.Tag()]
		if !ok {
			message = fmt.Sprintf("%s is invalid.", fieldErr.StructField())
		}
		if _, exists := fieldErrors[name]; !exists {
			fieldErrors[name] = message
		}
	}
	return fieldErrors
}

// UpdateStatus moves a message to the given status. Any status may
// follow any other; only unknown codes are rejected.
func (s *ContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.IsValidContactStatus(status) {
		return ErrContactInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return nil
}

var _ IContactService = (*ContactService)(nil)
