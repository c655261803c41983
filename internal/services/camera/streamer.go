package camera

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"gocv.io/x/gocv"

	"microscan/internal/logger"
	"microscan/internal/services/websocket"
)

// previewFrame is the message pushed to preview viewers.
type previewFrame struct {
	Image string `json:"image"`
}

// Streamer reads frames from the capture device and broadcasts them to the
// preview hub while at least one viewer is connected. The device is opened
// lazily and released as soon as the last viewer leaves.
type Streamer struct {
	hub      *websocket.HubService
	logger   *logger.Logger
	deviceID int
	interval time.Duration
}

func NewStreamer(hub *websocket.HubService, logger *logger.Logger, deviceID, intervalMS int) *Streamer {
	return &Streamer{
		hub:      hub,
		logger:   logger,
		deviceID: deviceID,
		interval: time.Duration(intervalMS) * time.Millisecond,
	}
}

// Run loops until the context is canceled; intended to be started as a
// goroutine. The capture device is released on exit.
func (s *Streamer) Run(ctx context.Context) {
	var webcam *gocv.VideoCapture
	defer func() {
		if webcam != nil {
			webcam.Close()
		}
	}()

	img := gocv.NewMat()
	defer img.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if s.hub.ClientCount() == 0 {
			if webcam != nil {
				webcam.Close()
				webcam = nil
				s.logger.Info("Camera preview stopped, device %d released", s.deviceID)
			}
			continue
		}

		if webcam == nil {
			var err error
			webcam, err = gocv.OpenVideoCapture(s.deviceID)
			if err != nil {
				s.logger.Warning("Could not open capture device %d: %v", s.deviceID, err)
				continue
			}
			s.logger.Info("Camera preview started on device %d", s.deviceID)
		}

		if ok := webcam.Read(&img); !ok || img.Empty() {
			s.logger.Warning("Capture device %d returned no frame", s.deviceID)
			continue
		}

		buf, err := gocv.IMEncode(".jpg", img)
		if err != nil {
			s.logger.Error("Error encoding preview frame: %v", err)
			continue
		}

		msg, err := json.Marshal(previewFrame{
			Image: base64.StdEncoding.EncodeToString(buf.GetBytes()),
		})
		buf.Close()
		if err != nil {
			s.logger.Error("Error encoding preview message: %v", err)
			continue
		}

		s.hub.Broadcast(msg)
	}
}
