package services

import "github.com/tidelog/tidelog/internal/models"

// Subscription state is written only by the billing webhook; everything
// else consumes it through these opaque booleans.

func HasActiveSubscription(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.SubscriptionStatus == models.SubscriptionActive ||
		user.SubscriptionStatus == models.SubscriptionTrialing
}

func CanUseAIInsights(user *models.User) bool {
	return HasActiveSubscription(user)
}

func CanUsePDFExport(user *models.User) bool {
	return HasActiveSubscription(user)
}
