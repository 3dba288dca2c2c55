package board

import (
	"boardcode-go/errcode"
	"boardcode-go/event"
	"boardcode-go/internal/core"
	"boardcode-go/x/logx"
	"boardcode-go/x/timex"
)

// MountAssets mounts the flash-backed assets volume. When the profile
// allows it, a failed mount is retried once after a format. Capacity
// stats are queried best-effort: a stats failure is logged, not
// returned, because the volume is already usable.
func (b *Board) MountAssets() error {
	cfg := b.profile.Assets

	err := b.p.Assets.Mount()
	if err != nil && cfg.FormatOnFail {
		if ferr := b.p.Assets.Format(); ferr == nil {
			err = b.p.Assets.Mount()
		}
	}
	if err != nil {
		return err
	}

	if sp, ok := b.p.Assets.(core.StatProvider); ok {
		if st, serr := sp.Stats(); serr != nil {
			logx.Error(tag, "failed to get", cfg.Label, "volume stats:", serr)
		} else {
			logx.Info(tag, cfg.Label, "size: total:", st.TotalBytes, "used:", st.UsedBytes)
		}
	}

	b.publishStorage("assets", "mounted")
	return nil
}

// UnmountAssets releases the assets volume.
func (b *Board) UnmountAssets() error {
	if err := b.p.Assets.Unmount(); err != nil {
		return err
	}
	b.publishStorage("assets", "unmounted")
	return nil
}

// MountCard mounts the removable card using the slot wiring from the
// profile and keeps the card handle for the matching unmount.
func (b *Board) MountCard() error {
	if b.card != nil {
		return errcode.AlreadyMounted
	}
	card, err := b.p.Slot.Mount(b.profile.Card)
	if err != nil {
		return err
	}
	b.card = card
	b.publishStorage("card", "mounted")
	return nil
}

// UnmountCard unmounts using the stored card handle. Calling it without
// a prior successful mount is a precondition violation reported as
// not_mounted, never a pass-through driver error.
func (b *Board) UnmountCard() error {
	if b.card == nil {
		return errcode.NotMounted
	}
	if err := b.card.Unmount(); err != nil {
		return err
	}
	b.card = nil
	b.publishStorage("card", "unmounted")
	return nil
}

// CardMounted reports whether a card handle is currently held.
func (b *Board) CardMounted() bool { return b.card != nil }

func (b *Board) publishStorage(volume, state string) {
	b.bus.Publish(&event.Message{
		Topic:    event.T("storage", volume),
		Payload:  map[string]any{"state": state, "ts_ms": timex.NowMs()},
		Retained: true,
	})
}
