package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const billingSignatureHeader = "X-Billing-Signature"

type billingEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID               string `json:"id"`
			Customer         string `json:"customer"`
			Status           string `json:"status"`
			CurrentPeriodEnd int64  `json:"current_period_end"`
		} `json:"object"`
	} `json:"data"`
}

func isSubscriptionEventType(eventType string) bool {
	switch eventType {
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
		return true
	}
	return false
}

func verifyBillingSignature(secret []byte, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}

// BillingWebhook applies subscription lifecycle events from the payment
// provider. Every repeated delivery of a processed event id is acknowledged
// without reapplying the update.
func (handler *Handler) BillingWebhook(c *fiber.Ctx) error {
	if len(handler.billingSecret) == 0 {
		return apiError(c, fiber.StatusInternalServerError, "webhook not configured")
	}

	signature := c.Get(billingSignatureHeader)
	if strings.TrimSpace(signature) == "" {
		return apiError(c, fiber.StatusBadRequest, "missing signature")
	}

	body := c.Body()
	if !verifyBillingSignature(handler.billingSecret, body, signature) {
		return apiError(c, fiber.StatusBadRequest, "invalid signature")
	}

	event := billingEvent{}
	if err := json.Unmarshal(body, &event); err != nil || event.ID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid body")
	}

	if !isSubscriptionEventType(event.Type) {
		return c.JSON(fiber.Map{"received": true})
	}

	processed, err := handler.repositories.BillingEvents.Exists(event.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "webhook handler failed")
	}
	if processed {
		return c.JSON(fiber.Map{"received": true})
	}

	customerID := strings.TrimSpace(event.Data.Object.Customer)
	if customerID == "" {
		log.Printf("billing webhook: event %s has no customer", event.ID)
		return c.JSON(fiber.Map{"received": true})
	}

	user, found, err := handler.repositories.Users.FindByBillingCustomerID(customerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "webhook handler failed")
	}
	if !found {
		log.Printf("billing webhook: no user for customer %s", customerID)
		return c.JSON(fiber.Map{"received": true})
	}

	status := event.Data.Object.Status
	if event.Type == "customer.subscription.deleted" {
		status = "canceled"
	}

	fields := map[string]any{"subscription_status": status}
	if event.Data.Object.CurrentPeriodEnd > 0 {
		fields["subscription_period_end"] = time.Unix(event.Data.Object.CurrentPeriodEnd, 0).UTC()
	} else {
		fields["subscription_period_end"] = nil
	}

	if err := handler.repositories.Users.UpdateByID(user.ID, fields); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "webhook handler failed")
	}

	// A racing retry may have recorded the id first; either way it is done.
	if err := handler.repositories.BillingEvents.Record(event.ID); err != nil {
		log.Printf("billing webhook: failed to record event %s: %v", event.ID, err)
	}

	return c.JSON(fiber.Map{"received": true})
}
