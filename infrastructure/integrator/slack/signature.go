package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const signaturePrefix = "v0="

// VerifySignature valida a assinatura HMAC-SHA256 que o Slack envia em cada
// requisição. Requisições com timestamp fora da tolerância são rejeitadas
// para bloquear replay.
func VerifySignature(body, timestamp, signature, signingSecret string, maxAge time.Duration) bool {
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}

	requestTime, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	age := time.Since(time.Unix(requestTime, 0))
	if age < 0 {
		age = -age
	}
	if age > maxAge {
		return false
	}

	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)

	mac := hmac.New(sha256.New, []byte(signingSecret))
	mac.Write([]byte(baseString))
	expected := signaturePrefix + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
