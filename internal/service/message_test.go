package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homequest/homequest-go/internal/model"
)

type fakeMessageStore struct {
	messages []model.Message
	nextID   int64
}

func (s *fakeMessageStore) Create(_ context.Context, msg *model.Message) error {
	s.nextID++
	msg.ID = s.nextID
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *fakeMessageStore) ListByHome(_ context.Context, homeID int64) ([]model.MessageResponse, error) {
	var result []model.MessageResponse
	for _, m := range s.messages {
		if m.HomeID == homeID {
			result = append(result, model.MessageResponse{
				ID:      m.ID,
				Message: m.Body,
				HomeID:  m.HomeID,
				BuyerID: m.BuyerID,
			})
		}
	}
	return result, nil
}

func newTestMessageService(t *testing.T) (*MessageService, model.HomeResponse) {
	t.Helper()
	homes := NewHomeService(newFakeHomeStore())
	home := seedHome(t, homes, 7)
	return NewMessageService(&fakeMessageStore{}, homes), home
}

func TestInquire(t *testing.T) {
	svc, home := newTestMessageService(t)

	msg, err := svc.Inquire(context.Background(), 3, home.ID, model.InquireRequest{Message: "still available?"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), msg.BuyerID)
	assert.Equal(t, int64(7), msg.RealtorID, "message is addressed to the listing's realtor")
}

func TestInquireEmptyMessage(t *testing.T) {
	svc, home := newTestMessageService(t)

	_, err := svc.Inquire(context.Background(), 3, home.ID, model.InquireRequest{})
	assert.ErrorIs(t, err, ErrMessageRequired)
}

func TestInquireUnknownHome(t *testing.T) {
	svc, _ := newTestMessageService(t)

	_, err := svc.Inquire(context.Background(), 3, 99, model.InquireRequest{Message: "hello"})
	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestHomeMessagesOwnerOnly(t *testing.T) {
	svc, home := newTestMessageService(t)

	_, err := svc.Inquire(context.Background(), 3, home.ID, model.InquireRequest{Message: "still available?"})
	require.NoError(t, err)

	messages, err := svc.HomeMessages(context.Background(), 7, home.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	_, err = svc.HomeMessages(context.Background(), 8, home.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestHomeMessagesUnknownHome(t *testing.T) {
	svc, _ := newTestMessageService(t)

	_, err := svc.HomeMessages(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrHomeNotFound)
}
