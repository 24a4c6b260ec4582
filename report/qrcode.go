package report

import (
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// containerLabel is the data encoded into a container's QR code.
type containerLabel struct {
	ContainerID string  `json:"container_id"`
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Depth       int     `json:"depth"`
	ItemCount   int     `json:"item_count"`
	Weight      float64 `json:"weight"`
}

// ContainerQRCode encodes a container summary as JSON and renders it
// as a PNG QR code of the given pixel size, for a warehouse-floor
// label identifying which items belong in which container.
func ContainerQRCode(s ContainerSummary, size int) ([]byte, error) {
	label := containerLabel{
		ContainerID: s.ContainerID,
		Name:        s.Name,
		Width:       s.Dimension.Width,
		Height:      s.Dimension.Height,
		Depth:       s.Dimension.Depth,
		ItemCount:   len(s.Placements),
		Weight:      s.TotalWeight(),
	}

	data, err := json.Marshal(label)
	if err != nil {
		return nil, fmt.Errorf("marshal container label: %w", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
