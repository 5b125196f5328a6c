package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// CloudinaryHandler signs direct browser uploads of identity photos
type CloudinaryHandler struct {
	UploadPreset string
	APISecret    string
}

// GenerateSignature generates a signature for Cloudinary uploads
func (c CloudinaryHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// Create the signature
	h := hmac.New(sha1.New, []byte(c.APISecret))
	h.Write([]byte("timestamp=" + timestamp + "&upload_preset=" + c.UploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	// Respond with the timestamp and signature
	response := map[string]string{
		"timestamp": timestamp,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
