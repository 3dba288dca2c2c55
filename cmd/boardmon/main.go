// cmd/boardmon/main.go
//
// Tails a flashed board's log output over its USB serial port and
// prints it with host-side timestamps. Reconnects when the board
// resets or the cable is re-plugged.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tarm/serial"
)

const reconnectDelay = 1 * time.Second

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device of the board")
	baud := flag.Int("baud", 115200, "baud rate (ignored by USB CDC)")
	stamp := flag.Bool("timestamps", true, "prefix each line with the host time")
	flag.Parse()

	for {
		if err := tail(*device, *baud, *stamp); err != nil {
			fmt.Fprintln(os.Stderr, "boardmon:", err)
		}
		time.Sleep(reconnectDelay)
	}
}

func tail(device string, baud int, stamp bool) error {
	// Blocking reads: a timeout makes bufio.Scanner give up on a quiet
	// board with ErrNoProgress.
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return fmt.Errorf("open %s: %w", device, err)
	}
	defer port.Close()

	fmt.Fprintf(os.Stderr, "boardmon: connected to %s\n", device)

	sc := bufio.NewScanner(port)
	sc.Buffer(make([]byte, 4096), 64*1024)
	for sc.Scan() {
		if stamp {
			fmt.Printf("%s %s\n", time.Now().Format("15:04:05.000"), sc.Text())
		} else {
			fmt.Println(sc.Text())
		}
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("read %s: %w", device, err)
	}
	return fmt.Errorf("%s disconnected", device)
}
