package application

import (
	"encoding/json"
	"fmt"

	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// publishTradeStepTopic helper to publish a TradeStep topic on the given
// pubsub service.
func publishTradeStepTopic(
	pubsub ports.Publisher, runID string, step domain.TradeStep,
) {
	if pubsub == nil {
		return
	}

	payload := TradeStepEvent{
		RunID: runID,
		Step:  step,
	}
	if err := publish(pubsub, ports.TradeStepTopic, payload); err != nil {
		log.Warn(err)
	}
}

// publishRatioRefreshTopic helper to publish a RatioRefresh topic on the
// given pubsub service.
func publishRatioRefreshTopic(
	pubsub ports.Publisher, runID string, index int,
	oldRatio decimal.Decimal, snapshot domain.Snapshot,
) {
	if pubsub == nil {
		return
	}

	payload := RatioRefreshEvent{
		RunID:    runID,
		Index:    index,
		OldRatio: oldRatio,
		NewRatio: snapshot.Ratio,
		Snapshot: snapshot,
	}
	if err := publish(pubsub, ports.RatioRefreshTopic, payload); err != nil {
		log.Warn(err)
	}
}

func publish(pubsub ports.Publisher, topic string, payload interface{}) error {
	message, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := pubsub.Publish(topic, string(message)); err != nil {
		return fmt.Errorf(
			"an error occured while publishing message for topic %s: %s",
			topic, err,
		)
	}
	return nil
}
