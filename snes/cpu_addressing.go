package snes

// addrMode tags the 65C816 addressing modes. Modes flagged isOperand
// resolve to a plain effective address that load/store/arithmetic/compare
// ops read or write through readWidth/writeWidth. Control-flow modes
// (branches, the jump/call family, block move) are resolved inline by
// their own op functions instead, since "effective address" doesn't mean
// the same thing for a jump target as for a data operand.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediateM // width from the M flag
	modeImmediateX // width from the X flag
	modeImmediate8 // always one byte (REP/SEP operand, WDM signature byte)
	modeDirect
	modeDirectX
	modeDirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeAbsoluteLong
	modeAbsoluteLongX
	modeDirectIndirect
	modeDirectIndirectLong
	modeDirectIndirectX
	modeDirectIndirectY
	modeDirectIndirectLongY
	modeStackRelative
	modeStackRelativeY
	modeRelative8  // branches
	modeRelative16 // BRL
	modeJumpAbsolute
	modeJumpAbsoluteIndirect
	modeJumpAbsoluteIndirectX
	modeJumpAbsoluteIndirectLong
	modeJumpAbsoluteLong
	modeBlockMove
)

// isOperand reports whether step() should resolve an effective address for
// this mode before calling the op. Implied/accumulator ops and every
// control-flow/block-move mode manage their own operand fetch.
func (m addrMode) isOperand() bool {
	switch m {
	case modeImplied, modeAccumulator,
		modeRelative8, modeRelative16,
		modeJumpAbsolute, modeJumpAbsoluteIndirect, modeJumpAbsoluteIndirectX,
		modeJumpAbsoluteIndirectLong, modeJumpAbsoluteLong, modeBlockMove:
		return false
	}
	return true
}

// resolveAddress computes the effective 24-bit address for a data
// addressing mode, consuming operand bytes from the instruction stream as
// it goes. See spec.md §4.2's addressing-mode table for the formulas.
func (c *CPU) resolveAddress(mode addrMode) uint32 {
	switch mode {
	case modeImmediateM:
		ea := uint32(c.PB)<<16 | uint32(c.PC)
		c.PC += uint16(c.widthM() / 8)
		return ea

	case modeImmediateX:
		ea := uint32(c.PB)<<16 | uint32(c.PC)
		c.PC += uint16(c.widthX() / 8)
		return ea

	case modeImmediate8:
		ea := uint32(c.PB)<<16 | uint32(c.PC)
		c.PC++
		return ea

	case modeDirect:
		off := c.fetch8()
		return uint32(c.D+uint16(off)) & 0xFFFF

	case modeDirectX:
		off := c.fetch8()
		return uint32(c.D+uint16(off)+c.X) & 0xFFFF

	case modeDirectY:
		off := c.fetch8()
		return uint32(c.D+uint16(off)+c.Y) & 0xFFFF

	case modeAbsolute:
		off := c.fetch16()
		return uint32(c.DB)<<16 | uint32(off)

	case modeAbsoluteX:
		off := c.fetch16()
		return uint32(c.DB)<<16 | uint32(off+c.X)

	case modeAbsoluteY:
		off := c.fetch16()
		return uint32(c.DB)<<16 | uint32(off+c.Y)

	case modeAbsoluteLong:
		return c.fetch24() & 0xFFFFFF

	case modeAbsoluteLongX:
		return (c.fetch24() + uint32(c.X)) & 0xFFFFFF

	case modeDirectIndirect:
		off := c.fetch8()
		ptr := c.bus.read16(uint32(c.D+uint16(off)) & 0xFFFF)
		return uint32(c.DB)<<16 | uint32(ptr)

	case modeDirectIndirectLong:
		off := c.fetch8()
		return c.bus.read24(uint32(c.D+uint16(off))&0xFFFF) & 0xFFFFFF

	case modeDirectIndirectX:
		off := c.fetch8()
		ptr := c.bus.read16(uint32(c.D+uint16(off)+c.X) & 0xFFFF)
		return uint32(c.DB)<<16 | uint32(ptr)

	case modeDirectIndirectY:
		off := c.fetch8()
		ptr := c.bus.read16(uint32(c.D+uint16(off)) & 0xFFFF)
		return uint32(c.DB)<<16 | uint32(ptr+c.Y)

	case modeDirectIndirectLongY:
		off := c.fetch8()
		ptr := c.bus.read24(uint32(c.D+uint16(off)) & 0xFFFF)
		return (ptr + uint32(c.Y)) & 0xFFFFFF

	case modeStackRelative:
		off := c.fetch8()
		return uint32(c.S+uint16(off)) & 0xFFFF

	case modeStackRelativeY:
		off := c.fetch8()
		ptr := c.bus.read16(uint32(c.S+uint16(off)) & 0xFFFF)
		return uint32(c.DB)<<16 | uint32(ptr+c.Y)
	}
	return 0
}
