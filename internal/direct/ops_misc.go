package direct

// Timer and sound operations.

// AddTimerWait blocks the command's execution thread for ms milliseconds
// using a local scratch slot to hold the wakeup time. Other brick activity,
// including other direct commands, keeps running.
func (b *Builder) AddTimerWait(ms int) error {
	return b.add(func() {
		t := b.allocLocal(Data32)
		b.op(OpTimerWait)
		b.constParam(ms)
		b.localParam(t)
		b.op(OpTimerReady)
		b.localParam(t)
	})
}

// AddSoundTone plays a tone at freqHz for durationMs. Volume is a
// percentage; a new sound command interrupts whatever is playing.
func (b *Builder) AddSoundTone(volume, freqHz, durationMs int) error {
	return b.add(func() {
		b.op(OpSound)
		b.sub(SoundTone)
		b.param(volume, LC1)
		b.param(freqHz, LC2)
		b.param(durationMs, LC2)
	})
}

// AddSoundPlay plays a .rsf sound file; the path is given without the
// extension, relative to /home/root/lms2012/sys unless absolute.
func (b *Builder) AddSoundPlay(volume int, filename string) error {
	return b.add(func() {
		b.op(OpSound)
		b.sub(SoundPlay)
		b.param(volume, LC1)
		b.stringParam(filename)
	})
}

// AddSoundRepeat is AddSoundPlay looping until stopped by AddSoundBreak or
// another sound command.
func (b *Builder) AddSoundRepeat(volume int, filename string) error {
	return b.add(func() {
		b.op(OpSound)
		b.sub(SoundRepeat)
		b.param(volume, LC1)
		b.stringParam(filename)
	})
}

// AddSoundBreak stops the current sound.
func (b *Builder) AddSoundBreak() error {
	return b.add(func() {
		b.op(OpSound)
		b.sub(SoundBreak)
	})
}

// AddSoundReady stalls the command until the current sound finishes, so a
// following tone or file starts cleanly after it.
func (b *Builder) AddSoundReady() error {
	return b.add(func() {
		b.op(OpSoundReady)
	})
}
