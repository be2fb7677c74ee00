package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func signedWebhookRequest(secret, id, timestamp, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(body))

	signedContent := fmt.Sprintf("%s.%s.%s", id, timestamp, body)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signedContent))

	r.Header.Set("svix-id", id)
	r.Header.Set("svix-timestamp", timestamp)
	r.Header.Set("svix-signature", "v1,"+hex.EncodeToString(mac.Sum(nil)))
	return r
}

func TestVerifyWebhookSignatureValid(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_testsecret")

	h := NewWebhookHandler(nil)
	body := `{"type": "user.created", "data": {}}`
	r := signedWebhookRequest("whsec_testsecret", "msg_1", "1717000000", body)

	if !h.verifyWebhookSignature(r, []byte(body)) {
		t.Error("expected valid signature to verify")
	}
}

func TestVerifyWebhookSignatureWrongSecret(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_testsecret")

	h := NewWebhookHandler(nil)
	body := `{"type": "user.created", "data": {}}`
	r := signedWebhookRequest("whsec_othersecret", "msg_1", "1717000000", body)

	if h.verifyWebhookSignature(r, []byte(body)) {
		t.Error("expected signature from wrong secret to fail")
	}
}

func TestVerifyWebhookSignatureMissingHeaders(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_testsecret")

	h := NewWebhookHandler(nil)
	body := `{"type": "user.created", "data": {}}`
	r := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(body))

	if h.verifyWebhookSignature(r, []byte(body)) {
		t.Error("expected request without svix headers to fail")
	}
}

func TestHandleClerkWebhookRejectsBadSignature(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_testsecret")

	h := NewWebhookHandler(nil)
	body := `{"type": "user.created", "data": {}}`
	r := signedWebhookRequest("whsec_wrong", "msg_1", "1717000000", body)
	w := httptest.NewRecorder()

	h.HandleClerkWebhook(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
