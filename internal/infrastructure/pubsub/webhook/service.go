package webhookpubsub

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/imetandy/emission-testing/pkg/circuitbreaker"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
)

const defaultRequestTimeout = 15 * time.Second

type service struct {
	store      store
	httpClient *client
	cb         *gobreaker.CircuitBreaker
}

// NewService returns a pubsub service notifying subscribers via http POST
// requests. Subscriptions live in memory only.
func NewService() ports.Publisher {
	return newService(defaultRequestTimeout)
}

func newService(requestTimeout time.Duration) *service {
	return &service{
		store:      newStore(),
		httpClient: newHTTPClient(requestTimeout),
		cb:         circuitbreaker.NewCircuitBreaker("webhook"),
	}
}

func (ws *service) Subscribe(topic, endpoint, secret string) (string, error) {
	sub, err := NewSubscription(topic, endpoint, secret)
	if err != nil {
		return "", err
	}

	ws.store.add(*sub)
	return sub.ID, nil
}

func (ws *service) Unsubscribe(id string) error {
	if !ws.store.remove(id) {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (ws *service) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	return ws.listSubscriptionsForTopic(topic).toPortable()
}

// Publish makes a POST request to every endpoint subscribed for the topic or
// for any topic. Requests are made concurrently, the first error is returned.
func (ws *service) Publish(topic string, message string) error {
	subs := ws.listSubscriptionsForTopic(topic)

	eg := &errgroup.Group{}
	for i := range subs {
		sub := subs[i]
		eg.Go(func() error { return ws.doRequest(sub, message) })
	}
	return eg.Wait()
}

func (ws *service) listSubscriptionsForTopic(topic string) subscriptions {
	subs := ws.store.forTopic(topic)
	if topic != ports.AnyTopic && topic != ports.UnspecifiedTopic {
		subs = append(subs, ws.store.forTopic(ports.AnyTopic)...)
	}
	return subs
}

func (ws *service) doRequest(sub Subscription, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if sub.IsSecured() {
			token := jwt.New(jwt.SigningMethodHS256)
			tokenString, err := token.SignedString([]byte(sub.Secret))
			if err != nil {
				return nil, err
			}
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		status, resp, err := ws.httpClient.post(sub.Endpoint, payload, headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf(
				"webhook %s replied with status %d: %s", sub.ID, status, resp,
			)
		}
		return nil, nil
	})

	return err
}
