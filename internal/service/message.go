package service

import (
	"context"
	"errors"

	"github.com/homequest/homequest-go/internal/model"
)

var ErrMessageRequired = errors.New("message is required")

// MessageStore is the inquiry store contract the message service consumes.
type MessageStore interface {
	Create(ctx context.Context, msg *model.Message) error
	ListByHome(ctx context.Context, homeID int64) ([]model.MessageResponse, error)
}

// MessageService handles buyer inquiries about listings.
type MessageService struct {
	messages MessageStore
	homes    *HomeService
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages MessageStore, homes *HomeService) *MessageService {
	return &MessageService{messages: messages, homes: homes}
}

// Inquire stores a buyer message addressed to the listing's realtor.
func (s *MessageService) Inquire(ctx context.Context, buyerID, homeID int64, req model.InquireRequest) (*model.Message, error) {
	if req.Message == "" {
		return nil, ErrMessageRequired
	}

	owner, err := s.homes.GetOwner(ctx, homeID)
	if err != nil {
		return nil, err
	}

	msg := &model.Message{
		Body:      req.Message,
		HomeID:    homeID,
		RealtorID: owner.ID,
		BuyerID:   buyerID,
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// HomeMessages returns a listing's inquiries to its owning realtor.
// Any other caller is rejected by the ownership guard.
func (s *MessageService) HomeMessages(ctx context.Context, callerID, homeID int64) ([]model.MessageResponse, error) {
	if err := s.homes.requireOwner(ctx, callerID, homeID); err != nil {
		return nil, err
	}

	return s.messages.ListByHome(ctx, homeID)
}
