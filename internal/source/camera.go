package source

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"
)

// Camera captures a single frame from a capture device and encodes it as
// JPEG. The device is opened per capture so an idle server holds no camera
// handle.
type Camera struct {
	deviceID int
}

func NewCamera(deviceID int) *Camera {
	return &Camera{deviceID: deviceID}
}

func (c *Camera) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	webcam, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return nil, fmt.Errorf("open capture device %d: %w", c.deviceID, err)
	}
	defer webcam.Close()

	img := gocv.NewMat()
	defer img.Close()

	if ok := webcam.Read(&img); !ok || img.Empty() {
		return nil, fmt.Errorf("capture device %d returned no frame", c.deviceID)
	}

	buf, err := gocv.IMEncode(".jpg", img)
	if err != nil {
		return nil, fmt.Errorf("encode captured frame: %w", err)
	}
	defer buf.Close()

	frame := make([]byte, len(buf.GetBytes()))
	copy(frame, buf.GetBytes())

	return frame, nil
}
