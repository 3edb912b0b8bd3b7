package media

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
)

// Signer produces the signatures the client needs for direct Cloudinary
// uploads and for authenticated video playback.
type Signer struct {
	CloudName string
	APIKey    string
	apiSecret string
}

func NewSigner(cloudName, apiKey, apiSecret string) *Signer {
	return &Signer{
		CloudName: cloudName,
		APIKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// UploadSignature signs an unsigned-upload request for the given preset.
func (s *Signer) UploadSignature(uploadPreset string) (signature string, timestamp int64, err error) {
	timestamp = time.Now().Unix()

	params := url.Values{}
	params.Set("timestamp", fmt.Sprintf("%d", timestamp))
	params.Set("upload_preset", uploadPreset)

	signature, err = api.SignParameters(params, s.apiSecret)
	if err != nil {
		return "", 0, err
	}
	return signature, timestamp, nil
}

// PlaybackURL returns the signed authenticated delivery URL of a video
// public id, as an HLS playlist.
func (s *Signer) PlaybackURL(publicID string) string {
	path := fmt.Sprintf("sp_auto/%s.m3u8", publicID)
	return fmt.Sprintf("https://res.cloudinary.com/%s/video/authenticated/%s/%s",
		s.CloudName, s.signPath(path), path)
}

// PlaybackURLPrefix is the signed prefix used to rewrite segment references
// inside a stored playlist.
func (s *Signer) PlaybackURLPrefix(publicID string) string {
	path := fmt.Sprintf("sp_auto/%s.m3u8", publicID)
	return fmt.Sprintf("https://res.cloudinary.com/%s/video/authenticated/%s/sp_auto/%s",
		s.CloudName, s.signPath(path), publicID)
}

// signPath builds the `s--xxxxxxxx--` URL signature component Cloudinary
// expects for authenticated delivery.
func (s *Signer) signPath(path string) string {
	sum := sha1.Sum([]byte(path + s.apiSecret))
	sig := base64.RawURLEncoding.EncodeToString(sum[:])
	return fmt.Sprintf("s--%s--", sig[:8])
}
