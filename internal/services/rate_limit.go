package services

import (
	"errors"
	"log"
	"time"
)

const (
	RateLimitAnalyze       = "ai_analyze"
	RateLimitOnOpenMessage = "ai_on_open_message"
)

var ErrRateLimited = errors.New("rate limit exceeded")

type rateLimitRule struct {
	Window      time.Duration
	MaxRequests int64
}

var rateLimitRules = map[string]rateLimitRule{
	RateLimitAnalyze:       {Window: time.Minute, MaxRequests: 5},
	RateLimitOnOpenMessage: {Window: time.Minute, MaxRequests: 5},
}

type RateLimitEventStore interface {
	CountSince(userID uint, key string, since time.Time) (int64, error)
	Record(userID uint, key string) error
}

// RateLimitService counts persisted per-user events inside a sliding
// window. Storage trouble fails open: a broken limiter must not take the
// feature down with it.
type RateLimitService struct {
	events RateLimitEventStore
}

func NewRateLimitService(events RateLimitEventStore) *RateLimitService {
	return &RateLimitService{events: events}
}

func (service *RateLimitService) Check(userID uint, key string, now time.Time) error {
	rule, known := rateLimitRules[key]
	if !known {
		return nil
	}

	count, err := service.events.CountSince(userID, key, now.Add(-rule.Window))
	if err != nil {
		log.Printf("rate limit count failed for key %s: %v", key, err)
		return nil
	}
	if count >= rule.MaxRequests {
		return ErrRateLimited
	}

	if err := service.events.Record(userID, key); err != nil {
		log.Printf("rate limit record failed for key %s: %v", key, err)
	}
	return nil
}
