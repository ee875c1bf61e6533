package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/magnetmantra/magnet_api/internal/catalog"
	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/repository"
	"github.com/magnetmantra/magnet_api/internal/utils"
	"github.com/magnetmantra/magnet_api/pkg/mailrelay"
)

// InquiryStore is the gateway surface inquiry handling needs.
type InquiryStore interface {
	List(filter *repository.InquiryFilter) (*repository.InquiryPage, error)
	GetByID(id int) (*models.Inquiry, error)
	Create(inquiry *models.Inquiry) error
	UpdateStatus(id int, status models.InquiryStatus) error
	Delete(id int) error
}

// InquiryMailer dispatches the staff notification for a new inquiry.
type InquiryMailer interface {
	SendInquiryNotification(ctx context.Context, email *mailrelay.InquiryEmail) (*mailrelay.SendResult, error)
}

// InquiryService implements contact-form submission and the back-office
// inquiry workflow.
type InquiryService struct {
	inquiries InquiryStore
	mailer    InquiryMailer
}

// NewInquiryService constructs an InquiryService. mailer may be nil
// when no relay is configured; submissions still persist.
func NewInquiryService(inquiries InquiryStore, mailer InquiryMailer) *InquiryService {
	return &InquiryService{inquiries: inquiries, mailer: mailer}
}

// SubmitInquiryInput is the public contact-form payload.
type SubmitInquiryInput struct {
	FirstName           string  `json:"firstName" binding:"required"`
	LastName            string  `json:"lastName" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               *string `json:"phone"`
	Subject             string  `json:"subject" binding:"required"`
	Message             string  `json:"message" binding:"required"`
	SubscribeNewsletter bool    `json:"subscribeNewsletter"`
}

// Submit persists a new inquiry with status "received" and a fresh
// reference id, then dispatches the notification email. Persistence
// happens first and independently: a relay failure is logged and the
// submission still succeeds.
func (s *InquiryService) Submit(ctx context.Context, in *SubmitInquiryInput) (*models.Inquiry, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, errors.New("firstName, email, subject, and message are required")
	}

	refID, err := utils.GenerateReferenceID()
	if err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		FirstName:           strings.TrimSpace(in.FirstName),
		LastName:            strings.TrimSpace(in.LastName),
		Email:               strings.TrimSpace(in.Email),
		Phone:               in.Phone,
		Subject:             strings.TrimSpace(in.Subject),
		Message:             in.Message,
		SubscribeNewsletter: in.SubscribeNewsletter,
		ReferenceID:         refID,
		Status:              models.InquiryStatusReceived,
	}
	if err := s.inquiries.Create(inquiry); err != nil {
		return nil, err
	}

	s.notify(ctx, inquiry)
	return inquiry, nil
}

// notify sends the staff email. Never fatal.
func (s *InquiryService) notify(ctx context.Context, inquiry *models.Inquiry) {
	if s.mailer == nil {
		return
	}
	email := &mailrelay.InquiryEmail{
		FirstName:           inquiry.FirstName,
		LastName:            inquiry.LastName,
		Email:               inquiry.Email,
		Subject:             inquiry.Subject,
		Message:             inquiry.Message,
		ReferenceID:         inquiry.ReferenceID,
		SubscribeNewsletter: inquiry.SubscribeNewsletter,
	}
	if inquiry.Phone != nil {
		email.Phone = *inquiry.Phone
	}
	if _, err := s.mailer.SendInquiryNotification(ctx, email); err != nil {
		log.Warn().Err(err).Str("reference_id", inquiry.ReferenceID).Msg("Inquiry notification email failed")
	}
}

// ListInquiriesQuery carries admin inquiry list options.
type ListInquiriesQuery struct {
	Status models.InquiryStatus
	Search string
	Page   int
}

// ListInquiries returns one admin page; the status filter maps to a
// gateway predicate, search refines the fetched page in memory.
func (s *InquiryService) ListInquiries(q *ListInquiriesQuery) (*repository.InquiryPage, error) {
	if q.Status != "" && !models.ValidInquiryStatus(q.Status) {
		return nil, utils.ErrInvalidStatus
	}
	page, err := s.inquiries.List(&repository.InquiryFilter{
		Status: q.Status,
		Page:   q.Page,
		Limit:  adminPageSize,
	})
	if err != nil {
		return nil, err
	}
	page.Inquiries = catalog.FilterInquiries(page.Inquiries, q.Search)
	return page, nil
}

// GetInquiry returns one inquiry.
func (s *InquiryService) GetInquiry(id int) (*models.Inquiry, error) {
	inq, err := s.inquiries.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrInquiryNotFound
		}
		return nil, err
	}
	return inq, nil
}

// UpdateStatus moves an inquiry through the workflow. Only enum
// membership is validated; the workflow defines no illegal transitions.
func (s *InquiryService) UpdateStatus(id int, status models.InquiryStatus) error {
	if !models.ValidInquiryStatus(status) {
		return utils.ErrInvalidStatus
	}
	if err := s.inquiries.UpdateStatus(id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrInquiryNotFound
		}
		return err
	}
	return nil
}

// DeleteInquiry deletes an inquiry.
func (s *InquiryService) DeleteInquiry(id int) error {
	if err := s.inquiries.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrInquiryNotFound
		}
		return err
	}
	return nil
}
