package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"svdrive/host/serial"
	"svdrive/host/telemetry"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	raw    = flag.Bool("raw", false, "Print raw lines without parsing")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Tailing telemetry on %s (Ctrl-C to exit)\n", *device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()
		if *raw {
			fmt.Println(line)
			continue
		}

		rec, err := telemetry.ParseLine(line)
		if err != nil {
			// The firmware may interleave other debug output; skip
			// anything that is not a telemetry line.
			continue
		}

		fmt.Printf("%12.3fs tick=%-9d sector=%d  t1=%.4f t2=%.4f t0=%.4f  ccr=[%4d %4d %4d]  angle=%.4f\n",
			float64(rec.UptimeUS)/1e6, rec.Tick, rec.Sector,
			rec.T1, rec.T2, rec.T0,
			rec.CompareA, rec.CompareB, rec.CompareC,
			rec.Angle)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
		os.Exit(1)
	}
}
