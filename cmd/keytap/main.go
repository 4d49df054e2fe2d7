package main

import (
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"golang.org/x/sys/unix"

	"github.com/keytap/keytap"
	"github.com/keytap/keytap/evdev"
	"github.com/keytap/keytap/log2"
)

func main() {
	flagConfig := flag.String("config", "keytap.hcl", "")
	flagDevices := flag.String("devices", "", "comma separated event device paths, overrides config")
	flagDebug := flag.Bool("debug", false, "")
	flag.Parse()

	log := log2.NewStderr(log2.LInfo)
	if sdnotify("start") {
		// under systemd, journal adds timestamps
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LStdFlags)
	}

	config := new(Config)
	if c, err := ReadConfigFile(*flagConfig, log); err == nil {
		config = c
	} else if !os.IsNotExist(errors.Cause(err)) {
		log.Fatal(errors.ErrorStack(err))
	}
	if *flagDevices != "" {
		config.Devices = strings.Split(*flagDevices, ",")
	}
	if *flagDebug || config.LogDebug {
		log.SetLevel(log2.LDebug)
	}
	log.Debugf("config=%+v", config)

	h := &printHandler{log: log, includeRelease: config.IncludeRelease}
	var k *keytap.Keytap
	var err error
	if len(config.Devices) > 0 {
		k, err = keytap.NewWithDevices(h, log, config.Devices...)
	} else {
		k, err = keytap.New(h, log)
	}
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	for _, d := range k.Devices() {
		log.Infof("capture device=%s name=%q", d.Path, d.Name)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Infof("signal=%v stopping", sig)
		k.Stop()
	}()

	sdnotify(daemon.SdNotifyReady)
	err = k.Capture()
	sdnotify(daemon.SdNotifyStopping)
	log.Infof("capture finished: %v", err)
}

// printHandler logs every decoded key event. Device errors are fatal for the
// device only when the descriptor is gone; transient read errors keep the
// device polled.
type printHandler struct {
	log            *log2.Log
	includeRelease bool
}

func (h *printHandler) HandleEvents(devicePath, deviceName string, events []evdev.KeyEvent) {
	for _, e := range events {
		if e.Cause == evdev.Release && !h.includeRelease {
			continue
		}
		h.log.Infof("%s %s device=%s", e.Time.Format("15:04:05.000"), e.String(), devicePath)
	}
}

func (h *printHandler) HandleErr(devicePath, deviceName string, err error) error {
	switch errors.Cause(err) {
	case unix.ENODEV, unix.EBADF, unix.ENXIO:
		h.log.Errorf("device=%s gone: %v", devicePath, err)
		return err
	}
	h.log.Errorf("device=%s read error: %v", devicePath, err)
	return nil
}

func sdnotify(s string) bool {
	ok, err := daemon.SdNotify(false, s)
	if err != nil {
		log2.NewStderr(log2.LError).Fatal("sdnotify: ", errors.ErrorStack(err))
	}
	return ok
}
