package helpers

import (
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const ConstQRCodeSize = 256

// TicketQRCode encodes a ticket link as a PNG so it can be scanned from a
// phone at the door.
func TicketQRCode(link string, size int) ([]byte, error) {
	if link == "" {
		return nil, errors.New("event has no ticket link")
	}
	if size <= 0 {
		size = ConstQRCodeSize
	}

	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode ticket qr code")
	}
	return png, nil
}
