package board

import (
	"errors"
	"testing"

	"boardcode-go/errcode"
	"boardcode-go/event"
	"boardcode-go/types"
)

func TestMountAssetsPlain(t *testing.T) {
	b, f := newFixture(t)
	f.assets.stats = types.VolumeStats{TotalBytes: 1024 * 1024, UsedBytes: 4096}
	if err := b.MountAssets(); err != nil {
		t.Fatalf("MountAssets: %v", err)
	}
	if f.assets.mounts != 1 || f.assets.formats != 0 {
		t.Fatalf("mounts=%d formats=%d", f.assets.mounts, f.assets.formats)
	}
}

func TestMountAssetsStatsFailureIsBestEffort(t *testing.T) {
	b, f := newFixture(t)
	f.assets.statsErr = errors.New("stats unsupported")
	if err := b.MountAssets(); err != nil {
		t.Fatalf("stats failure must not fail the mount: %v", err)
	}
}

func TestMountAssetsFormatOnFail(t *testing.T) {
	b, f := newFixture(t)
	b.profile.Assets.FormatOnFail = true
	f.assets.mountErrs = []error{errors.New("corrupt superblock")}

	if err := b.MountAssets(); err != nil {
		t.Fatalf("format-retry path failed: %v", err)
	}
	if f.assets.formats != 1 || f.assets.mounts != 2 {
		t.Fatalf("formats=%d mounts=%d, want 1 and 2", f.assets.formats, f.assets.mounts)
	}
}

func TestMountAssetsNoFormatWhenPolicyOff(t *testing.T) {
	b, f := newFixture(t)
	f.assets.mountErrs = []error{errors.New("corrupt superblock")}

	if err := b.MountAssets(); err == nil {
		t.Fatal("expected mount error with format_on_fail disabled")
	}
	if f.assets.formats != 0 {
		t.Fatal("volume must not be formatted when the policy is off")
	}
}

func TestUnmountAssets(t *testing.T) {
	b, f := newFixture(t)
	if err := b.MountAssets(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := b.UnmountAssets(); err != nil {
		t.Fatalf("unmount: %v", err)
	}
	if f.assets.unmounts != 1 {
		t.Fatalf("unmounts = %d", f.assets.unmounts)
	}
}

func TestCardRoundTrip(t *testing.T) {
	b, f := newFixture(t)

	if err := b.MountCard(); err != nil {
		t.Fatalf("MountCard: %v", err)
	}
	if !b.CardMounted() {
		t.Fatal("card handle should be held after mount")
	}
	if got := f.slot.lastCfg; got.Width != 1 || got.D0 == 0 {
		t.Fatalf("slot config not taken from profile: %+v", got)
	}

	if err := b.UnmountCard(); err != nil {
		t.Fatalf("UnmountCard: %v", err)
	}
	if b.CardMounted() {
		t.Fatal("card handle should be cleared after unmount")
	}
	if f.slot.card.unmounts != 1 {
		t.Fatalf("card unmounts = %d", f.slot.card.unmounts)
	}
}

func TestUnmountCardWithoutMountIsPrecondition(t *testing.T) {
	b, _ := newFixture(t)
	if err := b.UnmountCard(); err != errcode.NotMounted {
		t.Fatalf("err = %v, want not_mounted", err)
	}
}

func TestDoubleMountCardRejected(t *testing.T) {
	b, f := newFixture(t)
	if err := b.MountCard(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := b.MountCard(); err != errcode.AlreadyMounted {
		t.Fatalf("second mount = %v, want already_mounted", err)
	}
	if f.slot.mounts != 1 {
		t.Fatalf("slot mounts = %d, want 1", f.slot.mounts)
	}
}

func TestUnmountCardKeepsHandleOnDriverFailure(t *testing.T) {
	b, f := newFixture(t)
	if err := b.MountCard(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	f.slot.card.err = errors.New("io error")
	if err := b.UnmountCard(); err == nil {
		t.Fatal("expected driver error")
	}
	if !b.CardMounted() {
		t.Fatal("handle must be kept when the driver unmount fails")
	}
	f.slot.card.err = nil
	if err := b.UnmountCard(); err != nil {
		t.Fatalf("retry unmount: %v", err)
	}
}

func TestStorageEventsRetained(t *testing.T) {
	bus := event.New(4)
	f := &fixture{
		i2c: &fakeI2C{}, audio: &fakeAudio{}, codecs: &fakeCodecs{},
		adc: &fakeADC{}, buttons: &fakeButtonFactory{}, inds: &fakeIndicatorFactory{},
		assets: &fakeVolume{}, slot: &fakeSlot{},
	}
	b, err := New(KorvoV1(), Providers{
		I2C: f.i2c, Audio: f.audio, Codecs: f.codecs, ADC: f.adc,
		Buttons: f.buttons, Indicators: f.inds, Assets: f.assets, Slot: f.slot,
	}, bus)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := b.MountCard(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	sub := bus.Subscribe(event.T("storage", "card"))
	defer sub.Close()
	select {
	case m := <-sub.Channel():
		payload, ok := m.Payload.(map[string]any)
		if !ok || payload["state"] != "mounted" {
			t.Fatalf("unexpected payload: %#v", m.Payload)
		}
	default:
		t.Fatal("retained storage state not replayed")
	}
}
