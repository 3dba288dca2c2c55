// Package event is a small in-process pub/sub used to fan out board
// events (button presses, indicator changes, mount state). Topics are
// exact-match string paths; retained messages replay to late subscribers.
package event

import "sync"

// Topic is a sequence of path segments, e.g. {"button", "rec", "pressed"}.
type Topic []string

func T(segments ...string) Topic { return Topic(segments) }

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

type Subscription struct {
	topic Topic
	ch    chan *Message
	bus   *Bus
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Close()                   { s.bus.unsubscribe(s) }

type node struct {
	children map[string]*node
	subs     []*Subscription
	retained *Message
}

type Bus struct {
	mu   sync.Mutex
	root *node
	qLen int
}

// New creates a bus with the given per-subscription queue length.
func New(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{root: &node{}, qLen: queueLen}
}

// Subscribe registers interest in an exact topic. If a retained message
// is stored there it is delivered immediately.
func (b *Bus) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{topic: topic, ch: make(chan *Message, b.qLen), bus: b}

	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, seg := range topic {
		if n.children == nil {
			n.children = map[string]*node{}
		}
		child, ok := n.children[seg]
		if !ok {
			child = &node{}
			n.children[seg] = child
		}
		n = child
	}
	n.subs = append(n.subs, sub)
	if n.retained != nil {
		sub.ch <- n.retained
	}
	return sub
}

// Publish delivers msg to all subscribers of its topic. Full subscriber
// queues drop their oldest entry rather than blocking the publisher.
// A retained message with a nil payload clears the stored message.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, seg := range msg.Topic {
		child, ok := n.children[seg]
		if !ok {
			if !msg.Retained {
				return
			}
			if n.children == nil {
				n.children = map[string]*node{}
			}
			child = &node{}
			n.children[seg] = child
		}
		n = child
	}

	for _, sub := range n.subs {
		select {
		case sub.ch <- msg:
		default:
			<-sub.ch
			sub.ch <- msg
		}
	}

	if msg.Retained {
		if msg.Payload == nil {
			n.retained = nil
		} else {
			n.retained = msg
		}
	}
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	var stack []*node
	for _, seg := range sub.topic {
		child, ok := n.children[seg]
		if !ok {
			return
		}
		stack = append(stack, n)
		n = child
	}
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			close(sub.ch)
			break
		}
	}
	// Prune empty nodes bottom-up.
	for i := len(sub.topic) - 1; i >= 0; i-- {
		parent := stack[i]
		seg := sub.topic[i]
		child := parent.children[seg]
		if len(child.subs) == 0 && len(child.children) == 0 && child.retained == nil {
			delete(parent.children, seg)
		} else {
			break
		}
	}
}
