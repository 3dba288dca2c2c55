package main

import (
	"time"

	"boardcode-go/board"
	"boardcode-go/boardcfg"
	"boardcode-go/event"
	"boardcode-go/internal/core"
	"boardcode-go/platform"
	"boardcode-go/x/logx"
)

const tag = "main"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	logx.Info(tag, "boot")

	bus := event.New(16)
	profile := board.KorvoV1()
	if err := boardcfg.Apply(&profile); err != nil {
		logx.Error(tag, "config:", err)
	}

	b, err := board.New(profile, platform.Default(bus), bus)
	if err != nil {
		logx.Error(tag, "board:", err)
		return
	}

	if err := b.BusInit(); err != nil {
		logx.Error(tag, "i2c:", err)
		return
	}
	if _, err := b.SpeakerInit(); err != nil {
		logx.Error(tag, "speaker:", err)
	}
	if _, err := b.MicrophoneInit(); err != nil {
		logx.Error(tag, "microphone:", err)
	}
	if err := b.MountAssets(); err != nil {
		logx.Warn(tag, "assets:", err)
	}
	if err := b.MountCard(); err != nil {
		logx.Warn(tag, "card:", err)
	}

	buttons := make([]core.Button, b.ButtonCount())
	if n, err := b.CreateButtons(buttons); err != nil {
		logx.Error(tag, "buttons: built", n, err)
	}

	indicators := make([]core.Indicator, 1)
	if _, err := b.CreateIndicators(indicators); err != nil {
		logx.Error(tag, "indicator:", err)
	} else if err := indicators[0].Start("breathe"); err != nil {
		logx.Error(tag, "indicator start:", err)
	}

	logx.Info(tag, "ready")

	// Echo button activity to the log.
	subs := make([]*event.Subscription, 0, len(profile.Buttons)*2)
	for _, bc := range profile.Buttons {
		subs = append(subs,
			bus.Subscribe(event.T("button", bc.Name, "pressed")),
			bus.Subscribe(event.T("button", bc.Name, "released")))
	}
	cases := make(chan *event.Message, 16)
	for _, s := range subs {
		go func(s *event.Subscription) {
			for m := range s.Channel() {
				cases <- m
			}
		}(s)
	}
	for m := range cases {
		if len(m.Topic) == 3 {
			logx.Info(tag, "button", m.Topic[1], m.Topic[2])
		}
	}
}
