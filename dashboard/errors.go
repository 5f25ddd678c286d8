package dashboard

import "errors"

var (
	// ErrPublishInFlight is returned when a publish is requested while a
	// previous one is still running.
	ErrPublishInFlight = errors.New("dashboard: publish already in flight")

	// ErrNoPublisher is returned when publish or export is requested on a
	// session built without a publisher.
	ErrNoPublisher = errors.New("dashboard: no publisher configured")

	// ErrNoUploader is returned when an image upload is requested on a
	// session built without an uploader.
	ErrNoUploader = errors.New("dashboard: no image uploader configured")
)
