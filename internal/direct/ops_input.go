package direct

// Sensor (input) operations.

// AddInputDeviceGetTypemode replies with a (DeviceType, mode) DATA8 tuple
// for the given port.
func (b *Builder) AddInputDeviceGetTypemode(port InputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceGetTypemode)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.openTuple()
		b.replyScalar(Data8)
		b.replyScalar(Data8)
		b.closeTuple()
	})
}

// AddInputDeviceGetName replies with the device name at the port, e.g.
// "NONE" or "US-DIST-CM".
func (b *Builder) AddInputDeviceGetName(port InputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceGetName)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.param(MaxNameLen, LC2)
		b.replyString(MaxNameLen)
	})
}

// AddInputDeviceGetModeName replies with the name of one device mode, e.g.
// mode 0 of an ultrasonic sensor is "US-DIST-CM" and mode 1 "US-DIST-IN".
// Reading invalid modes can corrupt the reply buffer.
func (b *Builder) AddInputDeviceGetModeName(port InputPort, mode int, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceGetModeName)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.param(mode, LC1)
		b.param(MaxNameLen, LC2)
		b.replyString(MaxNameLen)
	})
}

// AddInputDeviceGetMinMax replies with the device's (min, max) float tuple.
func (b *Builder) AddInputDeviceGetMinMax(port InputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceGetMinMax)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.openTuple()
		b.replyScalar(DataF)
		b.replyScalar(DataF)
		b.closeTuple()
	})
}

// AddInputDeviceGetChanges replies with the number of positive transitions
// since the last clear (touch sensor presses).
func (b *Builder) AddInputDeviceGetChanges(port InputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceGetChanges)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.replyScalar(DataF)
	})
}

// AddInputDeviceGetBumps replies with the number of negative transitions
// since the last clear (touch sensor releases).
func (b *Builder) AddInputDeviceGetBumps(port InputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceGetBumps)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.replyScalar(DataF)
	})
}

// AddInputDeviceClrChanges zeroes the port's change and bump counters. Does
// not reset the gyro's accumulated angle.
func (b *Builder) AddInputDeviceClrChanges(port InputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceClrChanges)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
	})
}

// AddInputDeviceClrAll clears every input device value on the layer.
func (b *Builder) AddInputDeviceClrAll(layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceClrAll)
		b.param(int(layer), LC1)
	})
}

// ready reads share one shape: wait for the device, then read one value in
// the requested representation. mode -1 keeps the device's current mode;
// deviceType 0 accepts whatever is connected.

// AddInputDeviceReadySI replies with one value in SI units as a float.
func (b *Builder) AddInputDeviceReadySI(port InputPort, mode int, deviceType DeviceType, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceReadySI)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.param(int(deviceType), LC1)
		b.param(mode, LC1)
		b.param(1, LC1) // number of values
		b.replyScalar(DataF)
	})
}

// AddInputDeviceReadyRaw replies with one raw DATA32 value.
func (b *Builder) AddInputDeviceReadyRaw(port InputPort, mode int, deviceType DeviceType, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceReadyRaw)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.param(int(deviceType), LC1)
		b.param(mode, LC1)
		b.param(1, LC1)
		b.replyScalar(Data32)
	})
}

// AddInputDeviceReadyPercent replies with one DATA8 percentage.
func (b *Builder) AddInputDeviceReadyPercent(port InputPort, mode int, deviceType DeviceType, layer Layer) error {
	return b.add(func() {
		b.op(OpInputDevice)
		b.sub(InputDeviceReadyPct)
		b.param(int(layer), LC1)
		b.param(int(port), LC1)
		b.param(int(deviceType), LC1)
		b.param(mode, LC1)
		b.param(1, LC1)
		b.replyScalar(Data8)
	})
}
