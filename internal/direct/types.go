package direct

// Command and reply type discriminators for the direct-command family.
const (
	CommandReply   byte = 0x00
	CommandNoReply byte = 0x80
	ReplyOK        byte = 0x02
	ReplyError     byte = 0x04
)

// Capacity limits. The brick's tx buffer is 1024 bytes and the framed header
// needs 5, so a command may carry at most 1019 bytes. The packed header byte
// keeps only 6 bits of local-variable count.
const (
	MaxCommandLen       = 1019
	MaxLocalBytes       = 0x3F
	MaxStringLen        = 255
	MaxVersionStringLen = 64
	MaxNameLen          = 64
)

const (
	MinPower  = -100
	MaxPower  = 100
	MinSpeed  = -100
	MaxSpeed  = 100
	MinRatio  = -200
	MaxRatio  = 200
	MinVolume = 0
	MaxVolume = 100
)

const (
	LCDWidthPixels  = 178
	LCDHeightPixels = 128
)

// Layer selects a brick in a USB daisy chain.
type Layer byte

const (
	LayerMaster Layer = 0
	LayerSlave  Layer = 1
)

// OutputPort is a bit mask; ports can be OR'd together to drive several
// motors with one instruction.
type OutputPort byte

const (
	OutA OutputPort = 0x01
	OutB OutputPort = 0x02
	OutC OutputPort = 0x04
	OutD OutputPort = 0x08

	OutAll = OutA | OutB | OutC | OutD
)

// Index converts a single-port mask to the index form used by the c_output
// read operations. Multi-port masks have no index.
func (p OutputPort) Index() (byte, bool) {
	switch p {
	case OutA:
		return 0, true
	case OutB:
		return 1, true
	case OutC:
		return 2, true
	case OutD:
		return 3, true
	}
	return 0, false
}

// InputPort addresses one sensor port. Values 0x10..0x13 address the output
// ports when read as inputs.
type InputPort byte

const (
	In1 InputPort = 0x00
	In2 InputPort = 0x01
	In3 InputPort = 0x02
	In4 InputPort = 0x03

	InA InputPort = 0x10
	InB InputPort = 0x11
	InC InputPort = 0x12
	InD InputPort = 0x13
)

// StopType picks braking behavior when an output port is stopped.
type StopType byte

const (
	Coast StopType = 0
	Brake StopType = 1
)

// Polarity flips or toggles a motor's direction.
type Polarity int8

const (
	Backward Polarity = -1
	Toggle   Polarity = 0
	Forward  Polarity = 1
)

// LEDPattern drives the brick's status LEDs.
type LEDPattern byte

const (
	LEDOff             LEDPattern = 0
	LEDGreen           LEDPattern = 1
	LEDRed             LEDPattern = 2
	LEDOrange          LEDPattern = 3
	LEDFlashingGreen   LEDPattern = 4
	LEDFlashingRed     LEDPattern = 5
	LEDFlashingOrange  LEDPattern = 6
	LEDGreenHeartbeat  LEDPattern = 7
	LEDRedHeartbeat    LEDPattern = 8
	LEDOrangeHeartbeat LEDPattern = 9
)

// LCDColor: the display knows exactly two.
type LCDColor byte

const (
	ColorBackground LCDColor = 0
	ColorForeground LCDColor = 1
)

// Button identifies one of the brick's six buttons.
type Button byte

const (
	NoButton    Button = 0
	UpButton    Button = 1
	EnterButton Button = 2
	DownButton  Button = 3
	RightButton Button = 4
	LeftButton  Button = 5
	BackButton  Button = 6
	AnyButton   Button = 7
)

// FontType selects the font used by subsequent text draws.
type FontType byte

const (
	NormalFont FontType = 0
	SmallFont  FontType = 1
	LargeFont  FontType = 2
	TinyFont   FontType = 3
)

// DeviceType identifies what is plugged into a port.
type DeviceType byte

const (
	DeviceNXTTouch       DeviceType = 0x01
	DeviceNXTLight       DeviceType = 0x02
	DeviceNXTSound       DeviceType = 0x03
	DeviceNXTColor       DeviceType = 0x04
	DeviceNXTUltrasonic  DeviceType = 0x05
	DeviceNXTTemperature DeviceType = 0x06
	DeviceTacho          DeviceType = 0x07
	DeviceMiniTacho      DeviceType = 0x08
	DeviceNewTacho       DeviceType = 0x09
	DeviceEV3Touch       DeviceType = 0x10
	DeviceEV3Color       DeviceType = 0x1D
	DeviceEV3Ultrasonic  DeviceType = 0x1E
	DeviceEV3Gyroscope   DeviceType = 0x20
	DeviceEV3Infrared    DeviceType = 0x21
	DeviceInitializing   DeviceType = 0x7D
	DevicePortEmpty      DeviceType = 0x7E
	DevicePortError      DeviceType = 0x7F
	DeviceUnknown        DeviceType = 0xFF
)

// Sensor mode enumerations. Which one applies depends on the DeviceType.
type (
	TouchMode      byte
	MotorMode      byte
	UltrasonicMode byte
	GyroMode       byte
	IRMode         byte
	ColorMode      byte
)

const (
	TouchModeTouch TouchMode = 0
	TouchModeBumps TouchMode = 1

	MotorModeDegrees   MotorMode = 0
	MotorModeRotations MotorMode = 1
	MotorModePercent   MotorMode = 2

	UltrasonicModeCM     UltrasonicMode = 0
	UltrasonicModeInch   UltrasonicMode = 1
	UltrasonicModeListen UltrasonicMode = 2

	GyroModeAngle GyroMode = 0
	GyroModeRate  GyroMode = 1
	GyroModeFas   GyroMode = 2
	GyroModeGAndA GyroMode = 3

	IRModeProximity   IRMode = 0
	IRModeSeek        IRMode = 1
	IRModeRemote      IRMode = 2
	IRModeRemoteA     IRMode = 3
	IRModeSalt        IRMode = 4
	IRModeCalibration IRMode = 5

	ColorModeReflective ColorMode = 0
	ColorModeAmbient    ColorMode = 1
	ColorModeColor      ColorMode = 2
)

// SensorColor is what the EV3 color sensor reports in ColorModeColor.
type SensorColor byte

const (
	SensorColorNone   SensorColor = 0
	SensorColorBlack  SensorColor = 1
	SensorColorBlue   SensorColor = 2
	SensorColorGreen  SensorColor = 3
	SensorColorYellow SensorColor = 4
	SensorColorRed    SensorColor = 5
	SensorColorWhite  SensorColor = 6
	SensorColorBrown  SensorColor = 7
)
