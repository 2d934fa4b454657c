package pulse

import (
	"net"
	"testing"
	"time"

	"github.com/lowfreq/pulsego/proto"
)

func eventTestClient(t *testing.T) *Client {
	t.Helper()
	clientSide, serverSide := net.Pipe()
	pc := &proto.Client{}
	pc.Open(clientSide)
	t.Cleanup(func() {
		pc.Close()
		serverSide.Close()
	})
	return &Client{c: pc}
}

func TestEventDecoding(t *testing.T) {
	c := eventTestClient(t)

	var got []SubscriptionEvent
	c.subscribers = []*Subscription{{
		c:       c,
		handler: func(e SubscriptionEvent) { got = append(got, e) },
		mask:    proto.SubscriptionMaskAll,
	}}

	c.dispatchSubscribeEvent(&proto.SubscribeEvent{Event: 0x12, Index: 5})

	want := SubscriptionEvent{Facility: FacilitySinkInput, Operation: OperationChange, Index: 5}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("dispatched events = %v, want [%v]", got, want)
	}
	if s := got[0].String(); s != "event.sink_input.change(5)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestEventFacilityFilter(t *testing.T) {
	c := eventTestClient(t)

	var got []SubscriptionEvent
	c.subscribers = []*Subscription{{
		c:       c,
		handler: func(e SubscriptionEvent) { got = append(got, e) },
		mask:    1 << uint32(FacilitySink),
	}}

	c.dispatchSubscribeEvent(&proto.SubscribeEvent{Event: 0x12, Index: 5})
	if len(got) != 0 {
		t.Fatalf("sink_input event delivered through sink-only mask: %v", got)
	}

	c.dispatchSubscribeEvent(&proto.SubscribeEvent{Event: 0x10, Index: 2})
	want := SubscriptionEvent{Facility: FacilitySink, Operation: OperationChange, Index: 2}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("dispatched events = %v, want [%v]", got, want)
	}
}

func TestEventBadCodeFatal(t *testing.T) {
	c := eventTestClient(t)

	closed := make(chan struct{})
	c.c.OnConnectionClosed = func() { close(closed) }

	c.dispatchSubscribeEvent(&proto.SubscribeEvent{Event: 0x0F, Index: 0})

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("unknown facility did not fail the connection")
	}
}

func TestEventNames(t *testing.T) {
	if got := FacilityCard.String(); got != "card" {
		t.Errorf("FacilityCard = %q", got)
	}
	if got := Facility(12).String(); got != "facility(12)" {
		t.Errorf("Facility(12) = %q", got)
	}
	if got := OperationRemove.String(); got != "remove" {
		t.Errorf("OperationRemove = %q", got)
	}
	if got := Operation(7).String(); got != "operation(7)" {
		t.Errorf("Operation(7) = %q", got)
	}
}
