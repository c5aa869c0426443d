package webhookpubsub

import (
	"sort"
	"sync"
)

// store keeps subscriptions in memory, indexed by id and by topic.
type store struct {
	lock    *sync.RWMutex
	byID    map[string]Subscription
	byTopic map[string]map[string]struct{}
}

func newStore() store {
	return store{
		lock:    &sync.RWMutex{},
		byID:    make(map[string]Subscription),
		byTopic: make(map[string]map[string]struct{}),
	}
}

func (s store) add(sub Subscription) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.byID[sub.ID] = sub
	if _, ok := s.byTopic[sub.Event]; !ok {
		s.byTopic[sub.Event] = make(map[string]struct{})
	}
	s.byTopic[sub.Event][sub.ID] = struct{}{}
}

func (s store) remove(id string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	sub, ok := s.byID[id]
	if !ok {
		return false
	}

	delete(s.byID, id)
	delete(s.byTopic[sub.Event], id)
	if len(s.byTopic[sub.Event]) <= 0 {
		delete(s.byTopic, sub.Event)
	}
	return true
}

// forTopic returns the subscriptions for the given topic sorted by id. The
// unspecified topic returns all subscriptions.
func (s store) forTopic(topic string) subscriptions {
	s.lock.RLock()
	defer s.lock.RUnlock()

	subs := make(subscriptions, 0)
	if topic == "" {
		for _, sub := range s.byID {
			subs = append(subs, sub)
		}
	} else {
		for id := range s.byTopic[topic] {
			subs = append(subs, s.byID[id])
		}
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].ID < subs[j].ID
	})
	return subs
}
