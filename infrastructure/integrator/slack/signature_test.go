package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func signBody(secret, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("v0:%s:%s", timestamp, body)))
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "8f742231b10e8888abcd99yyyzzz85a5"
	body := `payload={"type":"block_actions"}`
	now := strconv.FormatInt(time.Now().Unix(), 10)

	tests := []struct {
		name      string
		timestamp string
		signature string
		want      bool
	}{
		{
			name:      "assinatura válida",
			timestamp: now,
			signature: signBody(secret, now, body),
			want:      true,
		},
		{
			name:      "assinatura errada",
			timestamp: now,
			signature: "v0=deadbeef",
			want:      false,
		},
		{
			name:      "sem prefixo v0",
			timestamp: now,
			signature: signBody(secret, now, body)[3:],
			want:      false,
		},
		{
			name:      "timestamp não numérico",
			timestamp: "ontem",
			signature: signBody(secret, "ontem", body),
			want:      false,
		},
		{
			name:      "timestamp antigo demais",
			timestamp: strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10),
			signature: signBody(secret, strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10), body),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifySignature(body, tt.timestamp, tt.signature, secret, 5*time.Minute)
			assert.Equal(t, tt.want, got)
		})
	}
}
