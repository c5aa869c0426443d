package webhookpubsub

import "errors"

var (
	// ErrMissingTopic ...
	ErrMissingTopic = errors.New("missing topic")
	// ErrInvalidEndpoint ...
	ErrInvalidEndpoint = errors.New("invalid webhook endpoint, must be a valid URI")
	// ErrSubscriptionNotFound ...
	ErrSubscriptionNotFound = errors.New("webhook not found")
)
