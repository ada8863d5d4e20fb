// Command regmon is an interactive register monitor for a DA14531 running
// the dahal firmware.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"dahal/host/mcu"
	"dahal/host/serial"
)

var (
	devPath = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", serial.DefaultBaud, "Baud rate")
	timeout = flag.Duration("timeout", mcu.DefaultTimeout, "Reply timeout per attempt")
	retries = flag.Int("retries", mcu.DefaultRetries, "Resends after a timeout")
	command = flag.String("c", "", "Run one command and exit")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*devPath)
	cfg.Baud = *baud
	cfg.ReadTimeout = 50 * time.Millisecond

	conn := mcu.NewMCU()
	conn.SetTimeout(*timeout)
	conn.SetRetries(*retries)
	if err := conn.ConnectWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	sh := newShell(conn, os.Stdout)

	if *command != "" {
		if _, err := sh.exec(*command); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if name, err := conn.Identify(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no identity from %s: %v\n", *devPath, err)
	} else {
		fmt.Printf("Connected to %s on %s\n", name, *devPath)
	}
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		quit, err := sh.exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if quit {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
