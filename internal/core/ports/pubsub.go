package ports

const (
	AnyTopic         = "*"
	UnspecifiedTopic = ""

	// TradeStepTopic is published after every trade applied by the
	// simulation.
	TradeStepTopic = "TradeStep"
	// RatioRefreshTopic is published every time the pool ratio is refreshed.
	RatioRefreshTopic = "RatioRefresh"
)

type Subscription interface {
	Topic() string
	Id() string
	IsSecured() bool
	NotifyAt() string
}

// Publisher defines the methods of a pubsub service.
type Publisher interface {
	// Subscribe adds a new subscription for the requested topic.
	Subscribe(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes some client defined by its id.
	Unsubscribe(id string) error
	// ListSubscriptionsForTopic returns the info of all clients subscribed for
	// a certain topic.
	ListSubscriptionsForTopic(topic string) []Subscription
	// Publish publishes a message for a certain topic. All clients subscribed
	// for such topic will receive the message.
	Publish(topic string, message string) error
}
