//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/bmp280"
	"tinygo.org/x/drivers/ds3231"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/touch/resistive"
)

// Panel geometry of the 2.4" ILI9341 in landscape.
const (
	panelWidth  = 320
	panelHeight = 240
)

type tinyGoHAL struct {
	logger  *uartLogger
	display tinyGoDisplay
	buttons *pinButtons
	touch   Touch
	rtc     *ds3231RTC
	baro    *bmp280Barometer
	flash   Flash
	buzzer  *pinBuzzer
	t       *tinyGoTime
}

// New returns a Pico (RP2040/RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// SPI0: GP18 SCK, GP19 SDO, GP16 SDI; DC GP20, CS GP17, RST GP21.
// I2C0: GP4 SDA, GP5 SCL (DS3231 and BMP280).
// SET GP10, ADJ GP11, alarm switch GP12 (active low); buzzer GP15.
// Touch: YP GP26, XM GP27 (ADC); XP GP14, YM GP13.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
	})
	lcd := ili9341.NewSPI(machine.SPI0, machine.GP20, machine.GP17, machine.GP21)
	lcd.Configure(ili9341.Config{
		Width:    240,
		Height:   320,
		Rotation: ili9341.Rotation90,
	})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	clock := ds3231.New(machine.I2C0)
	if !clock.Configure() {
		logger.WriteLineString("hal: ds3231 not responding")
	}
	baro := bmp280.New(machine.I2C0)
	if !baro.Connected() {
		logger.WriteLineString("hal: bmp280 not responding")
	}
	baro.Configure(bmp280.STANDBY_125MS, bmp280.FILTER_4X, bmp280.SAMPLING_1X, bmp280.SAMPLING_4X, bmp280.MODE_NORMAL)

	machine.InitADC()
	var tp resistive.FourWire
	var touch Touch
	if err := tp.Configure(&resistive.FourWireConfig{
		YP: machine.GP26,
		YM: machine.GP13,
		XP: machine.GP14,
		XM: machine.GP27,
	}); err != nil {
		logger.WriteLineString("hal: touch disabled: " + err.Error())
	} else {
		touch = &resistiveTouch{r: &tp, width: panelWidth, height: panelHeight}
	}

	buzzerPin := machine.GP15
	buzzerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	buzzerPin.Low()

	return &tinyGoHAL{
		logger:  logger,
		display: tinyGoDisplay{s: NewRectSurface(lcd, panelWidth, panelHeight)},
		buttons: newPinButtons(machine.GP10, machine.GP11, machine.GP12),
		touch:   touch,
		rtc:     &ds3231RTC{d: &clock, bus: machine.I2C0},
		baro:    &bmp280Barometer{d: &baro},
		flash:   newRP2Flash(),
		buzzer:  &pinBuzzer{pin: buzzerPin},
		t:       newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) Display() Display     { return h.display }
func (h *tinyGoHAL) Buttons() Buttons     { return h.buttons }
func (h *tinyGoHAL) Touch() Touch         { return h.touch }
func (h *tinyGoHAL) RTC() RTC             { return h.rtc }
func (h *tinyGoHAL) Barometer() Barometer { return h.baro }
func (h *tinyGoHAL) Flash() Flash         { return h.flash }
func (h *tinyGoHAL) Buzzer() Buzzer       { return h.buzzer }
func (h *tinyGoHAL) Time() Time           { return h.t }
