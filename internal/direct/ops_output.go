package direct

// Motor (output) operations. Port masks may name several motors at once;
// the read operations take a single port and address it by index.

// AddOutputGetType queries the DeviceType connected to a single output port.
// Replies with one DATA8 value.
func (b *Builder) AddOutputGetType(port OutputPort, layer Layer) error {
	idx, ok := port.Index()
	if !ok {
		return ErrBadPort
	}
	return b.add(func() {
		b.op(OpOutputGetType)
		b.param(int(layer), LC1)
		b.param(int(idx), LC1)
		b.replyScalar(Data8)
	})
}

// AddOutputSetType sets the DeviceType for an output port. Only tacho motor
// types take effect.
func (b *Builder) AddOutputSetType(port OutputPort, deviceType DeviceType, layer Layer) error {
	idx, ok := port.Index()
	if !ok {
		return ErrBadPort
	}
	return b.add(func() {
		b.op(OpOutputSetType)
		b.param(int(layer), LC1)
		b.param(int(idx), LC1)
		b.param(int(deviceType), LC1)
	})
}

// AddOutputReset clears the tacho count and timer of the masked motors.
func (b *Builder) AddOutputReset(ports OutputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputReset)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
	})
}

// AddOutputStop stops the masked motors, braking or coasting per stop.
func (b *Builder) AddOutputStop(ports OutputPort, stop StopType, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputStop)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(int(stop), LC1)
	})
}

// AddOutputPower sets motor power in [-100, 100]. The motors do not move
// until AddOutputStart.
func (b *Builder) AddOutputPower(ports OutputPort, power int, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputPower)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(power, LC1)
	})
}

// AddOutputSpeed sets regulated motor speed in [-100, 100]. The motors do
// not move until AddOutputStart.
func (b *Builder) AddOutputSpeed(ports OutputPort, speed int, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputSpeed)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(speed, LC1)
	})
}

// AddOutputStart starts the masked motors.
func (b *Builder) AddOutputStart(ports OutputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputStart)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
	})
}

// AddOutputPolarity sets motor direction: Forward, Backward or Toggle.
func (b *Builder) AddOutputPolarity(ports OutputPort, polarity Polarity, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputPolarity)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(int(polarity), LC1)
	})
}

// AddOutputRead reads a single port's speed and tacho count. Replies with a
// (DATA8 speed, DATA32 tacho) tuple.
func (b *Builder) AddOutputRead(port OutputPort, layer Layer) error {
	idx, ok := port.Index()
	if !ok {
		return ErrBadPort
	}
	return b.add(func() {
		b.op(OpOutputRead)
		b.param(int(layer), LC1)
		b.param(int(idx), LC1)
		b.openTuple()
		b.replyScalar(Data8)
		b.replyScalar(Data32)
		b.closeTuple()
	})
}

// AddOutputReady stalls the program until the masked motors report ready,
// serializing back-to-back motion commands on the same ports.
func (b *Builder) AddOutputReady(ports OutputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputReady)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
	})
}

// AddOutputPosition sets the masked motors' position counter.
func (b *Builder) AddOutputPosition(ports OutputPort, position int, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputPosition)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(position, LC4)
	})
}

// AddOutputStepPower ramps power up over rampUpSteps tacho steps, holds for
// steps, ramps down over rampDownSteps, then applies stop. No AddOutputStart
// needed; the brick does not wait for completion unless AddOutputReady
// follows.
func (b *Builder) AddOutputStepPower(ports OutputPort, power, rampUpSteps, steps, rampDownSteps int, stop StopType, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputStepPower)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(power, LC1)
		b.param(rampUpSteps, LC4)
		b.param(steps, LC4)
		b.param(rampDownSteps, LC4)
		b.param(int(stop), LC1)
	})
}

// AddOutputTimePower is AddOutputStepPower with phases in milliseconds.
func (b *Builder) AddOutputTimePower(ports OutputPort, power, rampUpMs, timeMs, rampDownMs int, stop StopType, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputTimePower)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(power, LC1)
		b.param(rampUpMs, LC4)
		b.param(timeMs, LC4)
		b.param(rampDownMs, LC4)
		b.param(int(stop), LC1)
	})
}

// AddOutputStepSpeed is AddOutputStepPower under speed regulation.
func (b *Builder) AddOutputStepSpeed(ports OutputPort, speed, rampUpSteps, steps, rampDownSteps int, stop StopType, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputStepSpeed)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(speed, LC1)
		b.param(rampUpSteps, LC4)
		b.param(steps, LC4)
		b.param(rampDownSteps, LC4)
		b.param(int(stop), LC1)
	})
}

// AddOutputTimeSpeed is AddOutputTimePower under speed regulation.
func (b *Builder) AddOutputTimeSpeed(ports OutputPort, speed, rampUpMs, timeMs, rampDownMs int, stop StopType, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputTimeSpeed)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(speed, LC1)
		b.param(rampUpMs, LC4)
		b.param(timeMs, LC4)
		b.param(rampDownMs, LC4)
		b.param(int(stop), LC1)
	})
}

// AddOutputStepSync drives two motors in sync for step tacho counts.
// turnRatio in [-200, 200]: 0 keeps both in sync, magnitudes above 100 run
// the inner motor in reverse.
func (b *Builder) AddOutputStepSync(ports OutputPort, speed, turnRatio, step int, stop StopType, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputStepSync)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(speed, LC1)
		b.param(turnRatio, LC2)
		b.param(step, LC4)
		b.param(int(stop), LC1)
	})
}

// AddOutputTimeSync is AddOutputStepSync with a duration in milliseconds.
func (b *Builder) AddOutputTimeSync(ports OutputPort, speed, turnRatio, timeMs int, stop StopType, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputTimeSync)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
		b.param(speed, LC1)
		b.param(turnRatio, LC2)
		b.param(timeMs, LC4)
		b.param(int(stop), LC1)
	})
}

// AddOutputClrCount clears the masked motors' tacho count in sensor mode.
func (b *Builder) AddOutputClrCount(ports OutputPort, layer Layer) error {
	return b.add(func() {
		b.op(OpOutputClrCount)
		b.param(int(layer), LC1)
		b.param(int(ports), LC1)
	})
}

// AddOutputGetCount reads a single port's tacho count in sensor mode.
// Replies with one DATA32 value.
func (b *Builder) AddOutputGetCount(port OutputPort, layer Layer) error {
	idx, ok := port.Index()
	if !ok {
		return ErrBadPort
	}
	return b.add(func() {
		b.op(OpOutputGetCount)
		b.param(int(layer), LC1)
		b.param(int(idx), LC1)
		b.replyScalar(Data32)
	})
}
