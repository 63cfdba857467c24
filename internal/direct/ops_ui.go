package direct

// Screen, button and brick-state operations.

// AddUIDrawUpdate applies the drawing commands issued since the last update.
func (b *Builder) AddUIDrawUpdate() error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawUpdate)
	})
}

// AddUIDrawClean fills the screen with the background color.
func (b *Builder) AddUIDrawClean() error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawClean)
	})
}

// AddUIDrawFillWindow fills count rows starting at startY. Starting at 0
// with a count of 0 clears the window.
func (b *Builder) AddUIDrawFillWindow(color LCDColor, startY, count int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawFillWindow)
		b.param(int(color), LC1)
		b.param(startY, LC2)
		b.param(count, LC2)
	})
}

func (b *Builder) AddUIDrawPixel(color LCDColor, x, y int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawPixel)
		b.param(int(color), LC1)
		b.param(x, LC2)
		b.param(y, LC2)
	})
}

func (b *Builder) AddUIDrawLine(color LCDColor, x0, y0, x1, y1 int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawLine)
		b.param(int(color), LC1)
		b.param(x0, LC2)
		b.param(y0, LC2)
		b.param(x1, LC2)
		b.param(y1, LC2)
	})
}

// AddUIDrawDotLine draws a dashed line with a repeating pattern of onPixels
// lit followed by offPixels dark.
func (b *Builder) AddUIDrawDotLine(color LCDColor, x0, y0, x1, y1, onPixels, offPixels int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawDotLine)
		b.param(int(color), LC1)
		b.param(x0, LC2)
		b.param(y0, LC2)
		b.param(x1, LC2)
		b.param(y1, LC2)
		b.param(onPixels, LC2)
		b.param(offPixels, LC2)
	})
}

func (b *Builder) AddUIDrawRect(color LCDColor, x, y, width, height int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawRect)
		b.param(int(color), LC1)
		b.param(x, LC2)
		b.param(y, LC2)
		b.param(width, LC2)
		b.param(height, LC2)
	})
}

func (b *Builder) AddUIDrawFillRect(color LCDColor, x, y, width, height int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawFillRect)
		b.param(int(color), LC1)
		b.param(x, LC2)
		b.param(y, LC2)
		b.param(width, LC2)
		b.param(height, LC2)
	})
}

// AddUIDrawInverseRect flips the color of every pixel the rectangle covers.
func (b *Builder) AddUIDrawInverseRect(x, y, width, height int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawInverseRect)
		b.param(x, LC2)
		b.param(y, LC2)
		b.param(width, LC2)
		b.param(height, LC2)
	})
}

func (b *Builder) AddUIDrawCircle(color LCDColor, x, y, radius int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawCircle)
		b.param(int(color), LC1)
		b.param(x, LC2)
		b.param(y, LC2)
		b.param(radius, LC2)
	})
}

func (b *Builder) AddUIDrawFillCircle(color LCDColor, x, y, radius int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawFillCircle)
		b.param(int(color), LC1)
		b.param(x, LC2)
		b.param(y, LC2)
		b.param(radius, LC2)
	})
}

// AddUIDrawSelectFont selects the font used by following text draws.
func (b *Builder) AddUIDrawSelectFont(font FontType) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawSelectFont)
		b.param(int(font), LC1)
	})
}

// AddUIDrawText draws text with (x, y) as the top-left corner of its
// bounding box.
func (b *Builder) AddUIDrawText(color LCDColor, x, y int, text string) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawText)
		b.param(int(color), LC1)
		b.param(x, LC2)
		b.param(y, LC2)
		b.stringParam(text)
	})
}

// AddUIDrawValue draws a floating point value with the given number of
// figures and decimals.
func (b *Builder) AddUIDrawValue(color LCDColor, x, y int, value float32, figures, decimals int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawValue)
		b.param(int(color), LC1)
		b.param(x, LC2)
		b.param(y, LC2)
		b.floatParam(value)
		b.param(figures, LC1)
		b.param(decimals, LC1)
	})
}

// AddUIDrawTopline shows or hides the status bar at the top of the screen.
func (b *Builder) AddUIDrawTopline(enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawTopline)
		b.param(v, LC1)
	})
}

// AddUIDrawStore saves the current screen content at the given UI level so
// AddUIDrawRestore can bring it back.
func (b *Builder) AddUIDrawStore(uiLevel int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawStore)
		b.param(uiLevel, LC1)
	})
}

// AddUIDrawRestore restores screen content saved by AddUIDrawStore.
func (b *Builder) AddUIDrawRestore(uiLevel int) error {
	return b.add(func() {
		b.op(OpUIDraw)
		b.sub(UIDrawRestore)
		b.param(uiLevel, LC1)
	})
}

// AddUIButtonPressed replies with a boolean: whether the button is down.
func (b *Builder) AddUIButtonPressed(button Button) error {
	return b.add(func() {
		b.op(OpUIButton)
		b.sub(UIButtonPressed)
		b.param(int(button), LC1)
		b.replyScalar(DataBool)
	})
}

// AddSetLEDs drives the status LEDs around the buttons.
func (b *Builder) AddSetLEDs(pattern LEDPattern) error {
	return b.add(func() {
		b.op(OpUIWrite)
		b.sub(UIWriteLED)
		b.param(int(pattern), LC1)
	})
}

// version-string reads share one shape: a max-length argument and a string
// reply slot.
func (b *Builder) uiReadString(sub byte) error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(sub)
		b.param(MaxVersionStringLen, LC2)
		b.replyString(MaxVersionStringLen)
	})
}

// AddUIReadGetFWVers replies with the firmware version, e.g. "V1.09H".
func (b *Builder) AddUIReadGetFWVers() error {
	return b.uiReadString(UIReadGetFWVers)
}

// AddUIReadGetHWVers replies with the hardware version.
func (b *Builder) AddUIReadGetHWVers() error {
	return b.uiReadString(UIReadGetHWVers)
}

// AddUIReadGetFWBuild replies with the firmware build string.
func (b *Builder) AddUIReadGetFWBuild() error {
	return b.uiReadString(UIReadGetFWBuild)
}

// AddUIReadGetOSVers replies with the OS version, e.g. "Linux 2.6.33".
func (b *Builder) AddUIReadGetOSVers() error {
	return b.uiReadString(UIReadGetOSVers)
}

// AddUIReadGetOSBuild replies with the OS build string.
func (b *Builder) AddUIReadGetOSBuild() error {
	return b.uiReadString(UIReadGetOSBuild)
}

// AddUIReadGetVersion replies with the full version, e.g.
// "LMS2012 V1.09H(...)".
func (b *Builder) AddUIReadGetVersion() error {
	return b.uiReadString(UIReadGetVersion)
}

// AddUIReadGetIP replies with the brick's IP address as a string.
func (b *Builder) AddUIReadGetIP() error {
	return b.uiReadString(UIReadGetIP)
}

// AddUIReadGetVBatt replies with the battery voltage as a float.
// Rechargeables sit in [6.0, 7.1] V, normal batteries in [4.5, 6.2] V.
func (b *Builder) AddUIReadGetVBatt() error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(UIReadGetVBatt)
		b.replyScalar(DataF)
	})
}

// AddUIReadGetLBatt replies with the battery level as a percentage.
func (b *Builder) AddUIReadGetLBatt() error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(UIReadGetLBatt)
		b.replyScalar(DataPct)
	})
}

// AddUIReadGetIBatt replies with the battery discharge current as a float.
func (b *Builder) AddUIReadGetIBatt() error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(UIReadGetIBatt)
		b.replyScalar(DataF)
	})
}

// AddUIReadGetTBatt replies with the battery temperature rise as a float.
func (b *Builder) AddUIReadGetTBatt() error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(UIReadGetTBatt)
		b.replyScalar(DataF)
	})
}

// AddUIReadGetIMotor replies with the motors' current draw as a float.
func (b *Builder) AddUIReadGetIMotor() error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(UIReadGetIMotor)
		b.replyScalar(DataF)
	})
}

// AddUIReadGetSDCard replies with an (ok bool, total KiB, free KiB) tuple.
func (b *Builder) AddUIReadGetSDCard() error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(UIReadGetSDCard)
		b.openTuple()
		b.replyScalar(DataBool)
		b.replyScalar(Data32)
		b.replyScalar(Data32)
		b.closeTuple()
	})
}

// AddUIReadGetUSBStick replies with an (ok bool, total KiB, free KiB) tuple.
func (b *Builder) AddUIReadGetUSBStick() error {
	return b.add(func() {
		b.op(OpUIRead)
		b.sub(UIReadGetUSBStick)
		b.openTuple()
		b.replyScalar(DataBool)
		b.replyScalar(Data32)
		b.replyScalar(Data32)
		b.closeTuple()
	})
}

// AddKeepAlive resets the sleep timer and replies with its new value in
// minutes.
func (b *Builder) AddKeepAlive() error {
	return b.add(func() {
		b.op(OpKeepAlive)
		b.replyScalar(Data8)
	})
}
