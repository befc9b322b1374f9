package ircode

// DefaultAddress is the 16-bit device address of the amp remote the rig
// was built around.
const DefaultAddress uint16 = 0x2385

// Command bytes understood by the amp.
const (
	CmdTogglePower    byte = 0x66
	CmdInputBluetooth byte = 0x86
	CmdInputAux       byte = 0x97 // 3.5mm jack
	CmdInputOptical   byte = 0x88
	CmdInputRCA       byte = 0x96
)

// Word builds the 32-bit code word for a command byte: the command in
// the top byte, its complement below it for validation, and the device
// address in the low 16 bits. Printed as bare lowercase hex this is the
// exact payload the transmitter firmware parses.
func Word(address uint16, cmd byte) uint32 {
	return uint32(cmd)<<24 | uint32(^cmd)<<16 | uint32(address)
}

// SplitWord breaks a code word back into its device address and command
// byte. ok is false when the complement byte does not validate the
// command, which usually means the word was mis-captured.
func SplitWord(w uint32) (address uint16, cmd byte, ok bool) {
	cmd = byte(w >> 24)
	inv := byte(w >> 16)
	return uint16(w), cmd, inv == ^cmd
}
