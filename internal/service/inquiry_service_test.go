package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

func validSubmission() *SubmitInquiryInput {
	return &SubmitInquiryInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Subject:   "Bulk order",
		Message:   "Can I order 200 magnets?",
	}
}

func TestSubmitPersistsReceivedWithReferenceID(t *testing.T) {
	store := &fakeInquiryStore{}
	svc := NewInquiryService(store, nil)

	inq, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, models.InquiryStatusReceived, inq.Status)
	assert.True(t, strings.HasPrefix(inq.ReferenceID, "MM-"))
	assert.Len(t, inq.ReferenceID, 11)
	require.Len(t, store.inquiries, 1)
	assert.Equal(t, inq.ReferenceID, store.inquiries[0].ReferenceID)
}

func TestSubmitNotifiesWithSameReferenceID(t *testing.T) {
	store := &fakeInquiryStore{}
	mailer := &fakeMailer{}
	svc := NewInquiryService(store, mailer)

	inq, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, inq.ReferenceID, mailer.sent[0].ReferenceID)
	assert.Equal(t, "alice@example.com", mailer.sent[0].Email)
}

func TestSubmitSucceedsWhenMailerFails(t *testing.T) {
	store := &fakeInquiryStore{}
	mailer := &fakeMailer{sendErr: errors.New("relay refused message")}
	svc := NewInquiryService(store, mailer)

	inq, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.NotEmpty(t, inq.ReferenceID)
	assert.Len(t, store.inquiries, 1)
	assert.Len(t, mailer.sent, 1)
}

func TestSubmitDoesNotNotifyWhenPersistFails(t *testing.T) {
	store := &fakeInquiryStore{createErr: errors.New("disk full")}
	mailer := &fakeMailer{}
	svc := NewInquiryService(store, mailer)

	_, err := svc.Submit(context.Background(), validSubmission())
	assert.Error(t, err)
	assert.Empty(t, mailer.sent)
}

func TestSubmitRequiredFields(t *testing.T) {
	svc := NewInquiryService(&fakeInquiryStore{}, nil)

	for _, mutate := range []func(*SubmitInquiryInput){
		func(in *SubmitInquiryInput) { in.FirstName = "" },
		func(in *SubmitInquiryInput) { in.Email = "  " },
		func(in *SubmitInquiryInput) { in.Subject = "" },
		func(in *SubmitInquiryInput) { in.Message = "" },
	} {
		in := validSubmission()
		mutate(in)
		_, err := svc.Submit(context.Background(), in)
		assert.Error(t, err)
	}
}

func TestSubmitReferenceIDsAreUnique(t *testing.T) {
	store := &fakeInquiryStore{}
	svc := NewInquiryService(store, nil)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		inq, err := svc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)
		assert.False(t, seen[inq.ReferenceID])
		seen[inq.ReferenceID] = true
	}
}

func TestListInquiriesStatusFilter(t *testing.T) {
	store := &fakeInquiryStore{inquiries: []models.Inquiry{
		{ID: 1, Status: models.InquiryStatusReceived},
		{ID: 2, Status: models.InquiryStatusResolved},
	}}
	svc := NewInquiryService(store, nil)

	page, err := svc.ListInquiries(&ListInquiriesQuery{Status: models.InquiryStatusResolved, Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Inquiries, 1)
	assert.Equal(t, 2, page.Inquiries[0].ID)
}

func TestListInquiriesRejectsUnknownStatus(t *testing.T) {
	svc := NewInquiryService(&fakeInquiryStore{}, nil)

	_, err := svc.ListInquiries(&ListInquiriesQuery{Status: "closed", Page: 1})
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
}

func TestUpdateStatusEnumMembershipOnly(t *testing.T) {
	store := &fakeInquiryStore{inquiries: []models.Inquiry{
		{ID: 1, Status: models.InquiryStatusResolved},
	}}
	svc := NewInquiryService(store, nil)

	// Any recognized status is allowed, including moving backwards.
	require.NoError(t, svc.UpdateStatus(1, models.InquiryStatusReceived))
	assert.Equal(t, models.InquiryStatusReceived, store.inquiries[0].Status)

	assert.ErrorIs(t, svc.UpdateStatus(1, "escalated"), utils.ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(99, models.InquiryStatusResolved), utils.ErrInquiryNotFound)
}

func TestDeleteInquiryNotFound(t *testing.T) {
	svc := NewInquiryService(&fakeInquiryStore{}, nil)
	assert.ErrorIs(t, svc.DeleteInquiry(7), utils.ErrInquiryNotFound)
}
