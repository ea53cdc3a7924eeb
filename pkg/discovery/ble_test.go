package discovery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	"github.com/matterscan/matterscan-go/pkg/discovery"
	"github.com/matterscan/matterscan-go/pkg/discovery/mocks"
	scanlog "github.com/matterscan/matterscan-go/pkg/log"
)

func matterAd(address, name string, data discovery.AdvertisementData) discovery.Advertisement {
	return discovery.Advertisement{
		Address:   address,
		LocalName: name,
		RSSI:      -60,
		Payload:   discovery.BuildAdvertisement(discovery.MatterServiceUUID, encodeServiceData(data)),
	}
}

// startBLE wires a mock radio that accepts the scan and hands back the
// registered handler.
func startBLE(t *testing.T, radio *mocks.MockRadioScanner, config discovery.BLEConfig) (<-chan beacon.Beacon, func(discovery.Advertisement), context.CancelFunc) {
	t.Helper()

	handlers := make(chan func(discovery.Advertisement), 1)
	radio.EXPECT().Enable().Return(nil).Once()
	radio.EXPECT().StartScan(discovery.MatterServiceUUID, mock.Anything).
		Run(func(_ uint16, handler func(discovery.Advertisement)) { handlers <- handler }).
		Return(nil).Once()

	config.Radio = radio
	p := discovery.NewBLEProducer(config)
	ctx, cancel := context.WithCancel(context.Background())
	out := p.Beacons(ctx)

	select {
	case h := <-handlers:
		return out, h, cancel
	case <-time.After(waitTimeout):
		cancel()
		t.Fatal("scan was not started")
	}
	return nil, nil, cancel
}

func TestBLEProducerEmitsParsedBeacon(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enabled().Return(true).Once()
	radio.EXPECT().StopScan().Return(nil).Once()

	events := &recordingLogger{}
	clock := newFakeClock()
	out, handler, cancel := startBLE(t, radio, discovery.BLEConfig{
		ProducerOptions: discovery.ProducerOptions{EventLogger: events, SessionID: "s1", Clock: clock.Now},
	})

	handler(matterAd("AA:BB:CC:DD:EE:FF", "Lamp", discovery.AdvertisementData{Discriminator: 3840, VendorID: 0xFFF1, ProductID: 0x8001}))

	b := recv(t, out)
	assert.Equal(t, "Lamp", b.Name)
	assert.Equal(t, uint16(3840), b.Discriminator)
	assert.Equal(t, uint16(0xFFF1), b.VendorID)
	assert.Equal(t, uint16(0x8001), b.ProductID)
	assert.Equal(t, beacon.ShortRangeRadio{Address: "AA:BB:CC:DD:EE:FF"}, b.Transport)
	assert.Equal(t, clock.Now(), b.SeenAt)

	cancel()
	drainClosed(t, out)

	emitted := events.byCategory(scanlog.CategoryEmitted)
	require.Len(t, emitted, 1)
	assert.Equal(t, "s1", emitted[0].SessionID)

	assert.Equal(t, []string{"scanning", "stopped"}, scannerStates(events))
}

func scannerStates(events *recordingLogger) []string {
	var states []string
	for _, e := range events.byCategory(scanlog.CategoryState) {
		if e.StateChange.Entity == scanlog.StateEntityScanner {
			states = append(states, e.StateChange.NewState)
		}
	}
	return states
}

func TestBLEProducerNameFallsBackToAddress(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enabled().Return(true).Once()
	radio.EXPECT().StopScan().Return(nil).Once()

	out, handler, cancel := startBLE(t, radio, discovery.BLEConfig{})
	handler(matterAd("11:22:33:44:55:66", "", discovery.AdvertisementData{Discriminator: 1}))

	b := recv(t, out)
	assert.Equal(t, "11:22:33:44:55:66", b.Name)

	cancel()
	drainClosed(t, out)
}

func TestBLEProducerDropsMalformedPayload(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enabled().Return(true).Once()
	radio.EXPECT().StopScan().Return(nil).Once()

	events := &recordingLogger{}
	out, handler, cancel := startBLE(t, radio, discovery.BLEConfig{
		ProducerOptions: discovery.ProducerOptions{EventLogger: events},
	})

	handler(discovery.Advertisement{Address: "short", Payload: make([]byte, 13)})
	bad := matterAd("declared", "", discovery.AdvertisementData{})
	bad.Payload[3] = 9
	handler(bad)
	handler(matterAd("good", "", discovery.AdvertisementData{Discriminator: 7}))

	b := recv(t, out)
	assert.Equal(t, "good", b.Name)

	cancel()
	drainClosed(t, out)

	dropped := events.byCategory(scanlog.CategoryDropped)
	require.Len(t, dropped, 2)
	assert.Equal(t, "short", dropped[0].Drop.Source)
	assert.Equal(t, "declared", dropped[1].Drop.Source)
}

func TestBLEProducerDebounce(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enabled().Return(true).Once()
	radio.EXPECT().StopScan().Return(nil).Once()

	clock := newFakeClock()
	out, handler, cancel := startBLE(t, radio, discovery.BLEConfig{
		ProducerOptions: discovery.ProducerOptions{Clock: clock.Now},
	})
	a := matterAd("A", "", discovery.AdvertisementData{Discriminator: 1})
	marker := matterAd("B", "", discovery.AdvertisementData{Discriminator: 2})

	handler(a)
	assert.Equal(t, "A", recv(t, out).Name)

	clock.Advance(500 * time.Millisecond)
	handler(a)
	handler(marker)
	assert.Equal(t, "B", recv(t, out).Name, "A at 500ms must be suppressed")

	clock.Advance(500 * time.Millisecond)
	handler(a)
	b := recv(t, out)
	assert.Equal(t, "A", b.Name, "A at exactly 1000ms must be emitted")
	assert.Equal(t, clock.Now(), b.SeenAt)

	cancel()
	drainClosed(t, out)
}

func TestBLEProducerIdleWhenUnavailable(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enable().Return(errors.New("no adapter")).Once()

	events := &recordingLogger{}
	p := discovery.NewBLEProducer(discovery.BLEConfig{
		Radio:           radio,
		ProducerOptions: discovery.ProducerOptions{EventLogger: events},
	})
	ctx, cancel := context.WithCancel(context.Background())
	out := p.Beacons(ctx)

	expectQuiet(t, out, 50*time.Millisecond)
	cancel()
	drainClosed(t, out)

	assert.Len(t, events.byCategory(scanlog.CategoryError), 1)
	assert.Empty(t, scannerStates(events), "scanner never started")
}

func TestBLEProducerIdleWhenScanFails(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enable().Return(nil).Once()
	radio.EXPECT().StartScan(mock.Anything, mock.Anything).Return(errors.New("busy")).Once()

	p := discovery.NewBLEProducer(discovery.BLEConfig{Radio: radio})
	ctx, cancel := context.WithCancel(context.Background())
	out := p.Beacons(ctx)

	expectQuiet(t, out, 50*time.Millisecond)
	cancel()
	drainClosed(t, out)
}

func TestBLEProducerSkipsStopWhenAdapterOff(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enabled().Return(false).Once()
	// StopScan is not expected: the mock fails the test if it is called.

	events := &recordingLogger{}
	out, _, cancel := startBLE(t, radio, discovery.BLEConfig{
		ProducerOptions: discovery.ProducerOptions{EventLogger: events},
	})
	cancel()
	drainClosed(t, out)

	assert.Equal(t, []string{"scanning", "off"}, scannerStates(events))
}

func TestBLEProducerCustomServiceUUID(t *testing.T) {
	radio := mocks.NewMockRadioScanner(t)
	radio.EXPECT().Enable().Return(nil).Once()
	radio.EXPECT().StartScan(uint16(0x1234), mock.Anything).Return(nil).Once()
	radio.EXPECT().Enabled().Return(true).Once()
	radio.EXPECT().StopScan().Return(nil).Once()

	p := discovery.NewBLEProducer(discovery.BLEConfig{Radio: radio, ServiceUUID: 0x1234})
	assert.Equal(t, beacon.TransportBLE, p.Transport())

	ctx, cancel := context.WithCancel(context.Background())
	out := p.Beacons(ctx)
	expectQuiet(t, out, 20*time.Millisecond)
	cancel()
	drainClosed(t, out)
}
