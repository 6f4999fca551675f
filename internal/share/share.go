// Package share builds the links a couple hands out and renders them as QR codes.
package share

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultQRSize = 300

type Links struct {
	GuestURL       string `json:"guestUrl"`
	DashboardURL   string `json:"dashboardUrl"`
	GuestQRURL     string `json:"guestQrUrl"`
	DashboardQRURL string `json:"dashboardQrUrl"`
}

// WeddingLinks returns the public guest page and the secret dashboard link,
// plus the API endpoints that render each as a QR image.
func WeddingLinks(origin, slug, secret string) Links {
	origin = strings.TrimRight(origin, "/")
	q := url.Values{"secret": {secret}}.Encode()
	return Links{
		GuestURL:       fmt.Sprintf("%s/couples/%s", origin, url.PathEscape(slug)),
		DashboardURL:   fmt.Sprintf("%s/rsvp/dashboard?%s", origin, q),
		GuestQRURL:     fmt.Sprintf("%s/api/weddings/%s/qr", origin, url.PathEscape(slug)),
		DashboardQRURL: fmt.Sprintf("%s/api/weddings/dashboard/qr?%s", origin, q),
	}
}

func RSVPLink(origin, code string) string {
	return fmt.Sprintf("%s/rsvp/%s", strings.TrimRight(origin, "/"), url.PathEscape(code))
}

// QRCode renders content as a PNG. size <= 0 selects DefaultQRSize.
func QRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
