package direct

// Opcode selects one VM instruction. The values come from the lms2012
// bytecode definitions.
type Opcode byte

const (
	OpError        Opcode = 0x00
	OpNop          Opcode = 0x01
	OpProgramStop  Opcode = 0x02
	OpProgramStart Opcode = 0x03
	OpObjectStop   Opcode = 0x04
	OpObjectStart  Opcode = 0x05
	OpObjectTrig   Opcode = 0x06
	OpObjectWait   Opcode = 0x07
	OpReturn       Opcode = 0x08
	OpCall         Opcode = 0x09
	OpObjectEnd    Opcode = 0x0A
	OpSleep        Opcode = 0x0B
	OpProgramInfo  Opcode = 0x0C
	OpLabel        Opcode = 0x0D
	OpProbe        Opcode = 0x0E
	OpDo           Opcode = 0x0F

	// Math.
	OpAdd8  Opcode = 0x10
	OpAdd16 Opcode = 0x11
	OpAdd32 Opcode = 0x12
	OpAddF  Opcode = 0x13
	OpSub8  Opcode = 0x14
	OpSub16 Opcode = 0x15
	OpSub32 Opcode = 0x16
	OpSubF  Opcode = 0x17
	OpMul8  Opcode = 0x18
	OpMul16 Opcode = 0x19
	OpMul32 Opcode = 0x1A
	OpMulF  Opcode = 0x1B
	OpDiv8  Opcode = 0x1C
	OpDiv16 Opcode = 0x1D
	OpDiv32 Opcode = 0x1E
	OpDivF  Opcode = 0x1F

	// Logic.
	OpOr8   Opcode = 0x20
	OpOr16  Opcode = 0x21
	OpOr32  Opcode = 0x22
	OpAnd8  Opcode = 0x24
	OpAnd16 Opcode = 0x25
	OpAnd32 Opcode = 0x26
	OpXor8  Opcode = 0x28
	OpXor16 Opcode = 0x29
	OpXor32 Opcode = 0x2A
	OpRl8   Opcode = 0x2C
	OpRl16  Opcode = 0x2D
	OpRl32  Opcode = 0x2E

	// Move.
	OpInitBytes Opcode = 0x2F
	OpMove8_8   Opcode = 0x30
	OpMove8_16  Opcode = 0x31
	OpMove8_32  Opcode = 0x32
	OpMove8_F   Opcode = 0x33
	OpMove16_8  Opcode = 0x34
	OpMove16_16 Opcode = 0x35
	OpMove16_32 Opcode = 0x36
	OpMove16_F  Opcode = 0x37
	OpMove32_8  Opcode = 0x38
	OpMove32_16 Opcode = 0x39
	OpMove32_32 Opcode = 0x3A
	OpMove32_F  Opcode = 0x3B
	OpMoveF_8   Opcode = 0x3C
	OpMoveF_16  Opcode = 0x3D
	OpMoveF_32  Opcode = 0x3E
	OpMoveF_F   Opcode = 0x3F

	// Branch.
	OpJr      Opcode = 0x40
	OpJrFalse Opcode = 0x41
	OpJrTrue  Opcode = 0x42
	OpJrNan   Opcode = 0x43

	// Compare.
	OpCpLt8    Opcode = 0x44
	OpCpLt16   Opcode = 0x45
	OpCpLt32   Opcode = 0x46
	OpCpLtF    Opcode = 0x47
	OpCpGt8    Opcode = 0x48
	OpCpGt16   Opcode = 0x49
	OpCpGt32   Opcode = 0x4A
	OpCpGtF    Opcode = 0x4B
	OpCpEq8    Opcode = 0x4C
	OpCpEq16   Opcode = 0x4D
	OpCpEq32   Opcode = 0x4E
	OpCpEqF    Opcode = 0x4F
	OpCpNeq8   Opcode = 0x50
	OpCpNeq16  Opcode = 0x51
	OpCpNeq32  Opcode = 0x52
	OpCpNeqF   Opcode = 0x53
	OpCpLtEq8  Opcode = 0x54
	OpCpLtEq16 Opcode = 0x55
	OpCpLtEq32 Opcode = 0x56
	OpCpLtEqF  Opcode = 0x57
	OpCpGtEq8  Opcode = 0x58
	OpCpGtEq16 Opcode = 0x59
	OpCpGtEq32 Opcode = 0x5A
	OpCpGtEqF  Opcode = 0x5B

	// Select.
	OpSelect8  Opcode = 0x5C
	OpSelect16 Opcode = 0x5D
	OpSelect32 Opcode = 0x5E
	OpSelectF  Opcode = 0x5F

	OpSystem        Opcode = 0x60
	OpPortCnvOutput Opcode = 0x61
	OpPortCnvInput  Opcode = 0x62
	OpNoteToFreq    Opcode = 0x63

	// Conditional branches.
	OpJrLt8    Opcode = 0x64
	OpJrLt16   Opcode = 0x65
	OpJrLt32   Opcode = 0x66
	OpJrLtF    Opcode = 0x67
	OpJrGt8    Opcode = 0x68
	OpJrGt16   Opcode = 0x69
	OpJrGt32   Opcode = 0x6A
	OpJrGtF    Opcode = 0x6B
	OpJrEq8    Opcode = 0x6C
	OpJrEq16   Opcode = 0x6D
	OpJrEq32   Opcode = 0x6E
	OpJrEqF    Opcode = 0x6F
	OpJrNeq8   Opcode = 0x70
	OpJrNeq16  Opcode = 0x71
	OpJrNeq32  Opcode = 0x72
	OpJrNeqF   Opcode = 0x73
	OpJrLtEq8  Opcode = 0x74
	OpJrLtEq16 Opcode = 0x75
	OpJrLtEq32 Opcode = 0x76
	OpJrLtEqF  Opcode = 0x77
	OpJrGtEq8  Opcode = 0x78
	OpJrGtEq16 Opcode = 0x79
	OpJrGtEq32 Opcode = 0x7A
	OpJrGtEqF  Opcode = 0x7B

	// VM.
	OpInfo        Opcode = 0x7C
	OpStrings     Opcode = 0x7D
	OpMemoryWrite Opcode = 0x7E
	OpMemoryRead  Opcode = 0x7F

	// UI.
	OpUIFlush  Opcode = 0x80
	OpUIRead   Opcode = 0x81
	OpUIWrite  Opcode = 0x82
	OpUIButton Opcode = 0x83
	OpUIDraw   Opcode = 0x84

	// Timer.
	OpTimerWait  Opcode = 0x85
	OpTimerReady Opcode = 0x86
	OpTimerRead  Opcode = 0x87

	// Breakpoints.
	OpBp0   Opcode = 0x88
	OpBp1   Opcode = 0x89
	OpBp2   Opcode = 0x8A
	OpBp3   Opcode = 0x8B
	OpBpSet Opcode = 0x8C

	OpMath        Opcode = 0x8D
	OpRandom      Opcode = 0x8E
	OpTimerReadUs Opcode = 0x8F
	OpKeepAlive   Opcode = 0x90

	// Com.
	OpComRead  Opcode = 0x91
	OpComWrite Opcode = 0x92

	// Sound.
	OpSound      Opcode = 0x94
	OpSoundTest  Opcode = 0x95
	OpSoundReady Opcode = 0x96

	// Input.
	OpInputSample     Opcode = 0x97
	OpInputDeviceList Opcode = 0x98
	OpInputDevice     Opcode = 0x99
	OpInputRead       Opcode = 0x9A
	OpInputTest       Opcode = 0x9B
	OpInputReady      Opcode = 0x9C
	OpInputReadSI     Opcode = 0x9D
	OpInputReadExt    Opcode = 0x9E
	OpInputWrite      Opcode = 0x9F

	// Output.
	OpOutputGetType   Opcode = 0xA0
	OpOutputSetType   Opcode = 0xA1
	OpOutputReset     Opcode = 0xA2
	OpOutputStop      Opcode = 0xA3
	OpOutputPower     Opcode = 0xA4
	OpOutputSpeed     Opcode = 0xA5
	OpOutputStart     Opcode = 0xA6
	OpOutputPolarity  Opcode = 0xA7
	OpOutputRead      Opcode = 0xA8
	OpOutputTest      Opcode = 0xA9
	OpOutputReady     Opcode = 0xAA
	OpOutputPosition  Opcode = 0xAB
	OpOutputStepPower Opcode = 0xAC
	OpOutputTimePower Opcode = 0xAD
	OpOutputStepSpeed Opcode = 0xAE
	OpOutputTimeSpeed Opcode = 0xAF
	OpOutputStepSync  Opcode = 0xB0
	OpOutputTimeSync  Opcode = 0xB1
	OpOutputClrCount  Opcode = 0xB2
	OpOutputGetCount  Opcode = 0xB3
	OpOutputPrgStop   Opcode = 0xB4

	// Memory.
	OpFile        Opcode = 0xC0
	OpArray       Opcode = 0xC1
	OpArrayWrite  Opcode = 0xC2
	OpArrayRead   Opcode = 0xC3
	OpArrayAppend Opcode = 0xC4
	OpMemoryUsage Opcode = 0xC5
	OpFilename    Opcode = 0xC6

	OpRead8  Opcode = 0xC8
	OpRead16 Opcode = 0xC9
	OpRead32 Opcode = 0xCA
	OpReadF  Opcode = 0xCB

	OpWrite8  Opcode = 0xCC
	OpWrite16 Opcode = 0xCD
	OpWrite32 Opcode = 0xCE
	OpWriteF  Opcode = 0xCF

	// Com.
	OpComReady     Opcode = 0xD0
	OpComReadData  Opcode = 0xD1
	OpComWriteData Opcode = 0xD2
	OpComGet       Opcode = 0xD3
	OpComSet       Opcode = 0xD4
	OpComTest      Opcode = 0xD5
	OpComRemove    Opcode = 0xD6
	OpComWriteFile Opcode = 0xD7

	OpMailboxOpen  Opcode = 0xD8
	OpMailboxWrite Opcode = 0xD9
	OpMailboxRead  Opcode = 0xDA
	OpMailboxTest  Opcode = 0xDB
	OpMailboxReady Opcode = 0xDC
	OpMailboxClose Opcode = 0xDD

	OpTst Opcode = 0xFF
)

// Sub-codes for OpUIRead.
const (
	UIReadGetVBatt    byte = 1
	UIReadGetIBatt    byte = 2
	UIReadGetOSVers   byte = 3
	UIReadGetEvent    byte = 4
	UIReadGetTBatt    byte = 5
	UIReadGetIInt     byte = 6
	UIReadGetIMotor   byte = 7
	UIReadGetString   byte = 8
	UIReadGetHWVers   byte = 9
	UIReadGetFWVers   byte = 10
	UIReadGetFWBuild  byte = 11
	UIReadGetOSBuild  byte = 12
	UIReadGetAddress  byte = 13
	UIReadGetCode     byte = 14
	UIReadKey         byte = 15
	UIReadGetShutdown byte = 16
	UIReadGetWarning  byte = 17
	UIReadGetLBatt    byte = 18
	UIReadTextboxRead byte = 21
	UIReadGetVersion  byte = 26
	UIReadGetIP       byte = 27
	UIReadGetPower    byte = 29
	UIReadGetSDCard   byte = 30
	UIReadGetUSBStick byte = 31
)

// Sub-codes for OpUIWrite.
const (
	UIWriteFlush         byte = 1
	UIWriteFloatValue    byte = 2
	UIWriteStamp         byte = 3
	UIWritePutString     byte = 8
	UIWriteValue8        byte = 9
	UIWriteValue16       byte = 10
	UIWriteValue32       byte = 11
	UIWriteValueF        byte = 12
	UIWriteAddress       byte = 13
	UIWriteCode          byte = 14
	UIWriteDownloadEnd   byte = 15
	UIWriteScreenBlock   byte = 16
	UIWriteTextboxAppend byte = 21
	UIWriteSetBusy       byte = 22
	UIWriteSetTestpin    byte = 24
	UIWriteInitRun       byte = 25
	UIWriteUpdateRun     byte = 26
	UIWriteLED           byte = 27
	UIWritePower         byte = 29
	UIWriteGraphSample   byte = 30
	UIWriteTerminal      byte = 31
)

// Sub-codes for OpUIButton.
const (
	UIButtonShortPress     byte = 1
	UIButtonLongPress      byte = 2
	UIButtonWaitForPress   byte = 3
	UIButtonFlush          byte = 4
	UIButtonPress          byte = 5
	UIButtonRelease        byte = 6
	UIButtonGetHorz        byte = 7
	UIButtonGetVert        byte = 8
	UIButtonPressed        byte = 9
	UIButtonSetBackBlock   byte = 10
	UIButtonGetBackBlock   byte = 11
	UIButtonTestShortPress byte = 12
	UIButtonTestLongPress  byte = 13
	UIButtonGetBumped      byte = 14
	UIButtonGetClick       byte = 15
)

// Sub-codes for OpUIDraw.
const (
	UIDrawUpdate       byte = 0
	UIDrawClean        byte = 1
	UIDrawPixel        byte = 2
	UIDrawLine         byte = 3
	UIDrawCircle       byte = 4
	UIDrawText         byte = 5
	UIDrawIcon         byte = 6
	UIDrawPicture      byte = 7
	UIDrawValue        byte = 8
	UIDrawFillRect     byte = 9
	UIDrawRect         byte = 10
	UIDrawNotification byte = 11
	UIDrawQuestion     byte = 12
	UIDrawKeyboard     byte = 13
	UIDrawBrowse       byte = 14
	UIDrawVertBar      byte = 15
	UIDrawInverseRect  byte = 16
	UIDrawSelectFont   byte = 17
	UIDrawTopline      byte = 18
	UIDrawFillWindow   byte = 19
	UIDrawScroll       byte = 20
	UIDrawDotLine      byte = 21
	UIDrawViewValue    byte = 22
	UIDrawViewUnit     byte = 23
	UIDrawFillCircle   byte = 24
	UIDrawStore        byte = 25
	UIDrawRestore      byte = 26
	UIDrawIconQuestion byte = 27
	UIDrawBmpFile      byte = 28
	UIDrawPopup        byte = 29
	UIDrawGraphSetup   byte = 30
	UIDrawGraphDraw    byte = 31
	UIDrawTextbox      byte = 32
)

// Sub-codes for OpInputDevice.
const (
	InputDeviceGetFormat     byte = 2
	InputDeviceCalMinMax     byte = 3
	InputDeviceCalDefault    byte = 4
	InputDeviceGetTypemode   byte = 5
	InputDeviceGetSymbol     byte = 6
	InputDeviceCalMin        byte = 7
	InputDeviceCalMax        byte = 8
	InputDeviceSetup         byte = 9
	InputDeviceClrAll        byte = 10
	InputDeviceGetRaw        byte = 11
	InputDeviceGetConnection byte = 12
	InputDeviceStopAll       byte = 13
	InputDeviceGetName       byte = 21
	InputDeviceGetModeName   byte = 22
	InputDeviceSetRaw        byte = 23
	InputDeviceGetFigures    byte = 24
	InputDeviceGetChanges    byte = 25
	InputDeviceClrChanges    byte = 26
	InputDeviceReadyPct      byte = 27
	InputDeviceReadyRaw      byte = 28
	InputDeviceReadySI       byte = 29
	InputDeviceGetMinMax     byte = 30
	InputDeviceGetBumps      byte = 31
)

// Sub-codes for OpSound.
const (
	SoundBreak   byte = 0
	SoundTone    byte = 1
	SoundPlay    byte = 2
	SoundRepeat  byte = 3
	SoundService byte = 4
)

// Sub-codes for OpFile.
const (
	FileOpenAppend       byte = 0
	FileOpenRead         byte = 1
	FileOpenWrite        byte = 2
	FileReadValue        byte = 3
	FileWriteValue       byte = 4
	FileReadText         byte = 5
	FileWriteText        byte = 6
	FileClose            byte = 7
	FileLoadImage        byte = 8
	FileGetHandle        byte = 9
	FileMakeFolder       byte = 10
	FileGetPool          byte = 11
	FileSetLogSyncTime   byte = 12
	FileGetFolders       byte = 13
	FileGetLogSyncTime   byte = 14
	FileGetSubfolderName byte = 15
	FileWriteLog         byte = 16
	FileCloseLog         byte = 17
	FileGetImage         byte = 18
	FileGetItem          byte = 19
	FileGetCacheFiles    byte = 20
	FilePutCacheFile     byte = 21
	FileGetCacheFile     byte = 22
	FileDelCacheFile     byte = 23
	FileDelSubfolder     byte = 24
	FileGetLogName       byte = 25
	FileOpenLog          byte = 27
	FileReadBytes        byte = 28
	FileWriteBytes       byte = 29
	FileRemove           byte = 30
	FileMove             byte = 31
)

// Sub-codes for OpProgramInfo.
const (
	ProgramInfoObjStop      byte = 0
	ProgramInfoObjStart     byte = 4
	ProgramInfoGetStatus    byte = 22
	ProgramInfoGetSpeed     byte = 23
	ProgramInfoGetPrgResult byte = 24
	ProgramInfoSetInstr     byte = 25
)

// MathType selects the function computed by OpMath.
type MathType byte

const (
	MathExp    MathType = 1
	MathMod    MathType = 2
	MathFloor  MathType = 3
	MathCeil   MathType = 4
	MathRound  MathType = 5
	MathAbs    MathType = 6
	MathNegate MathType = 7
	MathSqrt   MathType = 8
	MathLog    MathType = 9
	MathLn     MathType = 10
	MathSin    MathType = 11
	MathCos    MathType = 12
	MathTan    MathType = 13
	MathAsin   MathType = 14
	MathAcos   MathType = 15
	MathAtan   MathType = 16
	MathMod8   MathType = 17
	MathMod16  MathType = 18
	MathMod32  MathType = 19
	MathPow    MathType = 20
	MathTrunc  MathType = 21
)
