package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
)

// Pull statuses that carry layer progress.
const (
	statusPullingLayer     = "Pulling fs layer"
	statusDownloading      = "Downloading"
	statusDownloadComplete = "Download complete"
	statusExtracting       = "Extracting"
)

// Percentage returns current/total as a rounded percentage in [0, 100].
// A zero total yields 0.
func Percentage(current, total int64) int {
	if total <= 0 || current <= 0 {
		return 0
	}
	p := int(math.Round(float64(current) / float64(total) * 100))
	return min(p, 100)
}

// EnsureImage pulls name unless the daemon already has it.
// Any inspect failure triggers a pull.
func EnsureImage(ctx context.Context, client nanocld.CargoImageManager, observer provisioning.Observer, name string) error {
	if _, err := client.InspectCargoImage(ctx, name); err == nil {
		provisioning.LogResourceExists(observer, "image", "cargo image", name)
		return nil
	}
	return PullImage(ctx, client, observer, name)
}

// PullImage pulls an image and reports per layer progress to observer.
// An error event in the stream aborts the pull.
func PullImage(ctx context.Context, client nanocld.CargoImageManager, observer provisioning.Observer, name string) error {
	provisioning.LogResourceCreating(observer, "image", "cargo image", name)

	stream, err := client.CreateCargoImage(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to pull image %s: %w", name, err)
	}
	defer func() { _ = stream.Close() }()

	layers := make(map[string]bool)
	for {
		event, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to pull image %s: %w", name, err)
		}

		if event.Error != "" {
			return &nanocld.APIError{
				Operation: "create_cargo_image",
				Status:    http.StatusInternalServerError,
				Message:   fmt.Sprintf("Error while downloading image %s got error %s", name, event.Error),
			}
		}

		reportPullEvent(observer, name, layers, event)
	}

	provisioning.LogResourceCreated(observer, "image", "cargo image", name)
	return nil
}

func reportPullEvent(observer provisioning.Observer, image string, layers map[string]bool, event nanocld.PullEvent) {
	phase := fmt.Sprintf("pull %s [%s]", image, event.ID)

	switch event.Status {
	case statusPullingLayer, statusDownloading, statusExtracting:
		layers[event.ID] = true
		var current, total int64
		if event.ProgressDetail != nil {
			current, total = event.ProgressDetail.Current, event.ProgressDetail.Total
		}
		observer.Progress(phase, Percentage(current, total), 100)
	case statusDownloadComplete:
		if layers[event.ID] {
			observer.Progress(phase, 100, 100)
		}
	default:
		if !layers[event.ID] {
			observer.Printf("%s", event.Status)
		}
	}
}
