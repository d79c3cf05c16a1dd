package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// CheckoutService is the server half of the Razorpay checkout bridge: it
// creates orders for the hosted modal and can verify the signature the modal
// hands back after payment.
type CheckoutService struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewCheckoutService() *CheckoutService {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	return &CheckoutService{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// KeyID is the public key the client passes to the checkout script.
func (s *CheckoutService) KeyID() string {
	return s.keyID
}

// CreateOrder registers a fixed-amount order with Razorpay and returns the
// raw order payload (id, amount, currency, status).
func (s *CheckoutService) CreateOrder(amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	return s.client.Order.Create(data, nil)
}

// VerifySignature checks the payment confirmation signature: an HMAC-SHA256
// over "orderId|paymentId" keyed with the secret. The persistence endpoint
// only consults this when RAZORPAY_VERIFY_SIGNATURE is enabled.
func (s *CheckoutService) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyRazorpaySignature(orderID, paymentID, signature, s.keySecret)
}

func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	expected := RazorpaySignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// RazorpaySignature computes the expected confirmation signature.
func RazorpaySignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
