//go:build tinygo

// Firmware for DA14531 boards: serves the register monitor on UART1
// (TX P0_00, RX P0_01), blinks the LED on P0_09 from the triple-PWM timer
// and hibernates when the wakeup controller sees the button on P0_05.
package main

import (
	"strings"
	"sync/atomic"

	"dahal/aon"
	"dahal/core"
	"dahal/crg"
	"dahal/device"
	"dahal/gpadc"
	"dahal/gpio"
	"dahal/monitor"
	"dahal/nvic"
	"dahal/timer"
	"dahal/uart"
	"dahal/wdog"
	"dahal/wkup"
)

const (
	monitorBaud = 115200
	debug       = true

	// Battery is sampled once per this many monitor polls
	batteryEvery = 64
)

var sleepRequested atomic.Bool

func main() {
	p, ok := device.Take()
	if !ok {
		return
	}

	clk := crg.Constrain(p.CRGTop)
	nv := nvic.Constrain(p.NVIC)
	nv.ClearPendingInterrupts()

	wd := wdog.Constrain(p.Watchdog, p.GPReg)
	wd.Start(wdog.DefaultPeriod)

	pins := gpio.Split(p.GPIO)

	tx := gpio.IntoAlternate[gpio.UARTTX, gpio.P0_00](pins.P0_00).Erase()
	rx := gpio.IntoAlternate[gpio.UARTRX, gpio.P0_01](pins.P0_01).Erase()
	link := uart.Constrain(p.UART).SetPins(tx, rx)
	if err := link.Configure(clk, monitorBaud); err != nil {
		halt()
	}
	core.SetDebugWriter(link.DebugWriter())
	core.SetDebugEnabled(debug)
	core.DebugPrintln(monitor.Name)

	_ = gpio.IntoAlternate[gpio.PWM2, gpio.P0_09](pins.P0_09)
	led := timer.ConstrainPWM(p.Timer2)
	led.Init(clk, timer.PWMConfig{ClockSource: timer.ClockLP, FrequencyHz: 2})
	led.SetDutyCycle(timer.PWM2, 1, 8)
	led.Enable()

	adc := gpadc.Constrain(p.GPADC)
	adc.Init(gpadc.DefaultConfig().
		SetChannelPos(gpadc.VBatHigh).
		SetAttenuation(gpadc.AttnX4).
		SetAveraging(gpadc.SamplesX8))

	button := pins.P0_05.IntoPullUpInput()
	sleepCfg := aon.EnableWakeupPin(aon.NewSleepConfig(), button).
		SetRAMPower(false, false, false).
		SetPadLatchEn(true)
	hib := aon.Constrain(p.CRGAon)

	wk := wkup.Constrain(p.Wkup)
	if err := wk.RegisterHandler(func() { sleepRequested.Store(true) }); err != nil {
		core.DebugPrintln("wkup: " + err.Error())
	}
	press := wkup.Config{Polarity: wkup.ActiveLow, Events: 1, Debounce: 20}
	wk.EnableIRQ(clk, nv, button, press)

	srv := monitor.NewServer(link, p)
	// Writes here would cut the monitor off from its own link.
	for _, e := range p.Registers() {
		if strings.HasPrefix(e.Name, "UART_") || e.Name == "CLK_PER_REG" || e.Name == "P00_MODE_REG" || e.Name == "P01_MODE_REG" {
			srv.ProtectRegister(e.Addr)
		}
	}

	for polls := 0; ; polls++ {
		if err := srv.Poll(); err != nil {
			core.DebugPrintln("monitor: " + err.Error())
		}
		wd.Feed()

		if polls%batteryEvery == 0 {
			if v, err := adc.Read(); err == nil {
				core.DebugPrintln("vbat raw " + core.Hex(uint32(v)))
			}
		}

		if sleepRequested.Load() {
			if err := link.Flush(); err != nil {
				core.DebugPrintln(err.Error())
			}
			led.Disable()
			if err := hib.EnterHibernation(nv, clk, wd, sleepCfg); err != nil {
				core.DebugPrintln(err.Error())
				led.Enable()
				sleepRequested.Store(false)
				wk.EnableIRQ(clk, nv, button, press)
			}
		}
	}
}

// halt parks the CPU until the watchdog resets it
func halt() {
	for {
		core.WaitForInterrupt()
	}
}
