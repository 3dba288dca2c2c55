//go:build esp32s3

package platform

import (
	"machine"

	"tinygo.org/x/drivers/sdcard"
	"tinygo.org/x/tinyfs/fatfs"
	"tinygo.org/x/tinyfs/littlefs"

	"boardcode-go/internal/core"
)

// ---- Assets volume (on-chip flash, littlefs) ----

type assetsVolume struct {
	fs *littlefs.LFS
}

func newAssetsVolume() *assetsVolume {
	fs := littlefs.New(machine.Flash)
	fs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 512,
		BlockCycles:   100,
	})
	return &assetsVolume{fs: fs}
}

func (v *assetsVolume) Mount() error   { return v.fs.Mount() }
func (v *assetsVolume) Unmount() error { return v.fs.Unmount() }
func (v *assetsVolume) Format() error  { return v.fs.Format() }

// ---- Removable card (SPI fallback, fatfs) ----

// The slot is wired with a single data line, so the card runs in SPI
// mode: CLK drives SCK, CMD carries MOSI, D0 returns MISO.
type cardSlot struct{}

func (cardSlot) Mount(cfg core.SlotConfig) (core.Card, error) {
	sd := sdcard.New(
		machine.SPI1,
		machine.Pin(cfg.CLK),
		machine.Pin(cfg.CMD),
		machine.Pin(cfg.D0),
		machine.NoPin,
	)
	if err := sd.Configure(); err != nil {
		return nil, err
	}
	fs := fatfs.New(&sd)
	fs.Configure(&fatfs.Config{SectorSize: 512})
	if err := fs.Mount(); err != nil {
		if !cfg.FormatOnFail {
			return nil, err
		}
		if err := fs.Format(); err != nil {
			return nil, err
		}
		if err := fs.Mount(); err != nil {
			return nil, err
		}
	}
	return &mountedCard{fs: fs}, nil
}

type mountedCard struct {
	fs *fatfs.FATFS
}

func (c *mountedCard) Unmount() error { return c.fs.Unmount() }
