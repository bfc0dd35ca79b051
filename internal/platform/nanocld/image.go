package nanocld

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// InspectCargoImage returns the image with the given name.
func (c *RealClient) InspectCargoImage(ctx context.Context, name string) (*CargoImage, error) {
	var image CargoImage
	if err := c.getJSON(ctx, "inspect_cargo_image", "/cargoes/images/"+segment(name), "", &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// CreateCargoImage starts pulling an image and returns the progress stream.
// The request timeout does not apply: a pull lasts as long as the download.
func (c *RealClient) CreateCargoImage(ctx context.Context, name string) (*PullStream, error) {
	resp, err := c.do(ctx, "create_cargo_image", http.MethodPost, "/cargoes/images", "", map[string]string{"name": name}, false)
	if err != nil {
		return nil, err
	}
	return NewPullStream(resp.Body), nil
}

// PullStream decodes the concatenated JSON events of an image pull.
type PullStream struct {
	body io.ReadCloser
	dec  *json.Decoder
}

// NewPullStream wraps body as a pull stream.
func NewPullStream(body io.ReadCloser) *PullStream {
	return &PullStream{body: body, dec: json.NewDecoder(body)}
}

// Next returns the next event. It returns io.EOF once the stream is drained.
func (s *PullStream) Next() (PullEvent, error) {
	var event PullEvent
	if err := s.dec.Decode(&event); err != nil {
		if errors.Is(err, io.EOF) {
			return PullEvent{}, io.EOF
		}
		return PullEvent{}, fmt.Errorf("failed to decode pull event: %w", err)
	}
	return event, nil
}

// Close releases the underlying response body.
func (s *PullStream) Close() error {
	return s.body.Close()
}
