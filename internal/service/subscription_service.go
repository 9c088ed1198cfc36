package service

import (
	"context"
	"errors"
	"time"

	"devlog/internal/models"
	"devlog/internal/observability"
	"devlog/internal/repository"
	"devlog/internal/validation"

	"github.com/google/uuid"
)

const alreadySubscribedMessage = "You're already subscribed."
const subscribedMessage = "Thanks for subscribing!"

// SubscriptionService registers newsletter sign-ups with email deduplication.
type SubscriptionService struct {
	subscriberRepo repository.SubscriberRepository
}

// NewSubscriptionService returns a SubscriptionService backed by the given repository.
func NewSubscriptionService(subscriberRepo repository.SubscriberRepository) *SubscriptionService {
	return &SubscriptionService{subscriberRepo: subscriberRepo}
}

// Subscribe registers the email, reporting prior existence instead of
// erroring on duplicates. created is true only when a new row was persisted.
func (s *SubscriptionService) Subscribe(ctx context.Context, email, name string) (created bool, message string, err error) {
	if vErr := validation.ValidateEmail(email); vErr != nil {
		return false, "", models.NewValidationError(vErr.Error())
	}

	existing, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, "", err
	}
	if existing != nil {
		observability.Subscriptions.WithLabelValues("existing").Inc()
		return false, alreadySubscribedMessage, nil
	}

	sub := &models.Subscriber{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		SubscribedAt: time.Now(),
		Confirmed:    false,
	}
	if err := s.subscriberRepo.Create(ctx, sub); err != nil {
		// Two concurrent sign-ups can pass the lookup; the unique index on
		// email decides the winner and the loser reports prior existence.
		if errors.Is(err, repository.ErrSubscriberExists) {
			observability.Subscriptions.WithLabelValues("existing").Inc()
			return false, alreadySubscribedMessage, nil
		}
		return false, "", err
	}

	observability.Subscriptions.WithLabelValues("created").Inc()
	return true, subscribedMessage, nil
}
