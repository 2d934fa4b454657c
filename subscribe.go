package pulse

import (
	"fmt"

	"github.com/lowfreq/pulsego/proto"
)

// A Facility names the kind of server object a subscription event is
// about.
type Facility uint32

const (
	FacilitySink Facility = iota
	FacilitySource
	FacilitySinkInput
	FacilitySourceOutput
	FacilityModule
	FacilityClient
	FacilitySampleCache
	FacilityServer
	FacilityAutoload
	FacilityCard
)

var facilityNames = [...]string{
	"sink", "source", "sink_input", "source_output", "module",
	"client", "sample_cache", "server", "autoload", "card",
}

func (f Facility) String() string {
	if int(f) < len(facilityNames) {
		return facilityNames[f]
	}
	return fmt.Sprintf("facility(%d)", uint32(f))
}

// An Operation names what happened to the object.
type Operation uint32

const (
	OperationNew Operation = iota
	OperationChange
	OperationRemove
)

var operationNames = [...]string{"new", "change", "remove"}

func (o Operation) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return fmt.Sprintf("operation(%d)", uint32(o))
}

// A SubscriptionEvent reports one change to a server object.
type SubscriptionEvent struct {
	Facility  Facility
	Operation Operation
	Index     uint32
}

// String renders the event in the event.<facility>.<operation> form.
func (e SubscriptionEvent) String() string {
	return fmt.Sprintf("event.%s.%s(%d)", e.Facility, e.Operation, e.Index)
}

// A Subscription delivers server change events to a handler until closed.
type Subscription struct {
	c       *Client
	handler func(SubscriptionEvent)
	mask    uint32
}

// Subscribe starts delivery of server change events. The handler runs on
// the connection's read loop: it must return quickly and must not issue
// requests. The first subscription enables server-side eventing; it stays
// enabled until the last subscription is closed.
func (c *Client) Subscribe(handler func(SubscriptionEvent), facilities ...Facility) (*Subscription, error) {
	mask := proto.SubscriptionMaskAll
	if len(facilities) > 0 {
		mask = 0
		for _, f := range facilities {
			mask |= 1 << uint32(f)
		}
	}
	s := &Subscription{c: c, handler: handler, mask: mask}

	c.subMu.Lock()
	defer c.subMu.Unlock()
	if !c.subscribed {
		if err := c.c.Request(&proto.Subscribe{Mask: proto.SubscriptionMaskAll}, nil); err != nil {
			return nil, err
		}
		c.subscribed = true
	}
	c.subscribers = append(c.subscribers, s)
	return s, nil
}

// Close stops delivery. Closing the last subscription disables server-side
// eventing.
func (s *Subscription) Close() error {
	c := s.c
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for i, sub := range c.subscribers {
		if sub == s {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			break
		}
	}
	if len(c.subscribers) == 0 && c.subscribed {
		c.subscribed = false
		return c.c.Request(&proto.Subscribe{Mask: proto.SubscriptionMaskNull}, nil)
	}
	return nil
}

// Event codes pack the facility in bits 0..3 and the operation in bits
// 4..5.
const (
	facilityMask  = 0x0F
	operationMask = 0x30
)

// dispatchSubscribeEvent decodes an event code and fans it out to matching
// subscribers. Codes outside the known facility and operation ranges mean
// the two sides disagree about the protocol, which is not recoverable.
func (c *Client) dispatchSubscribeEvent(msg *proto.SubscribeEvent) {
	facility := Facility(msg.Event & facilityMask)
	operation := Operation((msg.Event & operationMask) >> 4)
	if facility > FacilityCard || operation > OperationRemove {
		c.c.Fail(fmt.Errorf("pulseaudio: subscribe event code %#x: %w", msg.Event, proto.ErrProtocolError))
		return
	}
	ev := SubscriptionEvent{Facility: facility, Operation: operation, Index: msg.Index}

	c.subMu.Lock()
	subs := make([]*Subscription, len(c.subscribers))
	copy(subs, c.subscribers)
	c.subMu.Unlock()
	for _, s := range subs {
		if s.mask&(1<<uint32(facility)) != 0 {
			s.handler(ev)
		}
	}
}
