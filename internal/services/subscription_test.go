package services

import (
	"testing"

	"github.com/tidelog/tidelog/internal/models"
)

func TestHasActiveSubscription(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "no status", user: &models.User{}, want: false},
		{name: "active", user: &models.User{SubscriptionStatus: models.SubscriptionActive}, want: true},
		{name: "trialing", user: &models.User{SubscriptionStatus: models.SubscriptionTrialing}, want: true},
		{name: "canceled", user: &models.User{SubscriptionStatus: "canceled"}, want: false},
		{name: "past_due", user: &models.User{SubscriptionStatus: "past_due"}, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := HasActiveSubscription(testCase.user); got != testCase.want {
				t.Fatalf("HasActiveSubscription = %v, want %v", got, testCase.want)
			}
			if got := CanUseAIInsights(testCase.user); got != testCase.want {
				t.Fatalf("CanUseAIInsights = %v, want %v", got, testCase.want)
			}
			if got := CanUsePDFExport(testCase.user); got != testCase.want {
				t.Fatalf("CanUsePDFExport = %v, want %v", got, testCase.want)
			}
		})
	}
}
