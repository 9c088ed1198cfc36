package repository

import (
	"context"
	"errors"

	"devlog/internal/models"

	"gorm.io/gorm"
)

// ErrSubscriberExists is returned by Create when the email is already
// registered. The registrar maps it to an "already subscribed" result, which
// also closes the find-then-insert race under concurrent sign-ups.
var ErrSubscriberExists = errors.New("subscriber already exists")

// SubscriberRepository defines persistence operations for newsletter subscribers.
type SubscriberRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Create(ctx context.Context, sub *models.Subscriber) error
}

type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository returns a new SubscriberRepository implementation.
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

// GetByEmail returns (nil, nil) when no subscriber has the email.
func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &sub, nil
}

func (r *subscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	err := r.db.WithContext(ctx).Create(sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSubscriberExists
		}
		return models.NewInternalError(err)
	}
	return nil
}
