package snes

// Branches.

func (c *CPU) doBranch(taken bool, wide bool) {
	if wide {
		off := int16(c.fetch16())
		if !taken {
			return
		}
		c.PC = uint16(int32(c.PC) + int32(off))
		return
	}

	off := int8(c.fetch8())
	if !taken {
		return
	}
	oldPC := c.PC
	newPC := uint16(int32(oldPC) + int32(off))
	c.PC = newPC
	c.Cycles++
	if oldPC&0xFF00 != newPC&0xFF00 {
		c.Cycles++
	}
}

func opBCC(c *CPU, mode addrMode, ea uint32) { c.doBranch(!c.P.has(flagCarry), false) }
func opBCS(c *CPU, mode addrMode, ea uint32) { c.doBranch(c.P.has(flagCarry), false) }
func opBEQ(c *CPU, mode addrMode, ea uint32) { c.doBranch(c.P.has(flagZero), false) }
func opBNE(c *CPU, mode addrMode, ea uint32) { c.doBranch(!c.P.has(flagZero), false) }
func opBPL(c *CPU, mode addrMode, ea uint32) { c.doBranch(!c.P.has(flagNegative), false) }
func opBMI(c *CPU, mode addrMode, ea uint32) { c.doBranch(c.P.has(flagNegative), false) }
func opBVC(c *CPU, mode addrMode, ea uint32) { c.doBranch(!c.P.has(flagOverflow), false) }
func opBVS(c *CPU, mode addrMode, ea uint32) { c.doBranch(c.P.has(flagOverflow), false) }
func opBRA(c *CPU, mode addrMode, ea uint32) { c.doBranch(true, false) }
func opBRL(c *CPU, mode addrMode, ea uint32) { c.doBranch(true, true) }

// Jumps / calls.

func opJMPAbs(c *CPU, mode addrMode, ea uint32) {
	c.PC = c.fetch16()
}

func opJMPAbsLong(c *CPU, mode addrMode, ea uint32) {
	addr := c.fetch24()
	c.PC = uint16(addr)
	c.PB = byte(addr >> 16)
}

func opJMPAbsIndirect(c *CPU, mode addrMode, ea uint32) {
	ptrAddr := uint32(c.fetch16())
	c.PC = c.bus.read16(ptrAddr)
}

func opJMPAbsIndirectX(c *CPU, mode addrMode, ea uint32) {
	off := c.fetch16()
	ptrAddr := uint32(c.PB)<<16 | uint32(off+c.X)
	c.PC = c.bus.read16(ptrAddr)
}

func opJMPAbsIndirectLong(c *CPU, mode addrMode, ea uint32) {
	ptrAddr := uint32(c.fetch16())
	v := c.bus.read24(ptrAddr)
	c.PC = uint16(v)
	c.PB = byte(v >> 16)
}

func opJSR(c *CPU, mode addrMode, ea uint32) {
	target := c.fetch16()
	c.pushWord(c.PC - 1)
	c.PC = target
}

func opJSRAbsIndirectX(c *CPU, mode addrMode, ea uint32) {
	off := c.fetch16()
	returnPC := c.PC - 1
	ptrAddr := uint32(c.PB)<<16 | uint32(off+c.X)
	target := c.bus.read16(ptrAddr)
	c.pushWord(returnPC)
	c.PC = target
}

func opJSL(c *CPU, mode addrMode, ea uint32) {
	addr := c.fetch24()
	returnPC := c.PC - 1
	c.push8(c.PB)
	c.pushWord(returnPC)
	c.PB = byte(addr >> 16)
	c.PC = uint16(addr)
}

func opRTS(c *CPU, mode addrMode, ea uint32) {
	c.PC = c.popWord() + 1
}

func opRTL(c *CPU, mode addrMode, ea uint32) {
	c.PC = c.popWord() + 1
	c.PB = c.pop8()
}

func opRTI(c *CPU, mode addrMode, ea uint32) {
	c.P = status(c.pop8())
	c.enforceEmulation()
	c.PC = c.popWord()
	if !c.E {
		c.PB = c.pop8()
	}
}

// Stack.

func opPHA(c *CPU, mode addrMode, ea uint32) {
	width := c.widthM()
	v := c.A
	if width == 8 {
		v &= 0xFF
	}
	c.pushWidth(v, width)
}

func opPLA(c *CPU, mode addrMode, ea uint32) {
	width := c.widthM()
	v := c.popWidth(width)
	if width == 8 {
		c.A = (c.A &^ 0xFF) | v
	} else {
		c.A = v
	}
	c.P.updateNZ(v, width)
}

func opPHX(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.X
	if width == 8 {
		v &= 0xFF
	}
	c.pushWidth(v, width)
}

func opPLX(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.popWidth(width)
	c.X = v
	c.P.updateNZ(v, width)
}

func opPHY(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.Y
	if width == 8 {
		v &= 0xFF
	}
	c.pushWidth(v, width)
}

func opPLY(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.popWidth(width)
	c.Y = v
	c.P.updateNZ(v, width)
}

func opPHP(c *CPU, mode addrMode, ea uint32) { c.push8(byte(c.P)) }

func opPLP(c *CPU, mode addrMode, ea uint32) {
	c.P = status(c.pop8())
	c.enforceEmulation()
}

func opPHB(c *CPU, mode addrMode, ea uint32) { c.push8(c.DB) }

func opPLB(c *CPU, mode addrMode, ea uint32) {
	c.DB = c.pop8()
	c.P.updateNZ(uint16(c.DB), 8)
}

func opPHK(c *CPU, mode addrMode, ea uint32) { c.push8(c.PB) }

func opPHD(c *CPU, mode addrMode, ea uint32) { c.pushWord(c.D) }

func opPLD(c *CPU, mode addrMode, ea uint32) {
	c.D = c.popWord()
	c.P.updateNZ(c.D, 16)
}

func opPEI(c *CPU, mode addrMode, ea uint32) {
	off := c.fetch8()
	ptr := c.bus.read16(uint32(c.D+uint16(off)) & 0xFFFF)
	c.pushWord(ptr)
}

func opPEA(c *CPU, mode addrMode, ea uint32) {
	c.pushWord(c.fetch16())
}

func opPER(c *CPU, mode addrMode, ea uint32) {
	off := int16(c.fetch16())
	c.pushWord(uint16(int32(c.PC) + int32(off)))
}

// Transfers.

func opTAX(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.A
	if width == 8 {
		v &= 0xFF
	}
	c.X = v
	c.P.updateNZ(v, width)
}

func opTAY(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.A
	if width == 8 {
		v &= 0xFF
	}
	c.Y = v
	c.P.updateNZ(v, width)
}

func opTXA(c *CPU, mode addrMode, ea uint32) {
	width := c.widthM()
	v := c.X
	if width == 8 {
		v &= 0xFF
		c.A = (c.A &^ 0xFF) | v
	} else {
		c.A = v
	}
	c.P.updateNZ(v, width)
}

func opTYA(c *CPU, mode addrMode, ea uint32) {
	width := c.widthM()
	v := c.Y
	if width == 8 {
		v &= 0xFF
		c.A = (c.A &^ 0xFF) | v
	} else {
		c.A = v
	}
	c.P.updateNZ(v, width)
}

func opTSX(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.S
	if width == 8 {
		v &= 0xFF
	}
	c.X = v
	c.P.updateNZ(v, width)
}

func opTXS(c *CPU, mode addrMode, ea uint32) {
	c.S = c.X
	c.enforceEmulation()
}

func opTCD(c *CPU, mode addrMode, ea uint32) {
	c.D = c.A
	c.P.updateNZ(c.D, 16)
}

func opTDC(c *CPU, mode addrMode, ea uint32) {
	c.A = c.D
	c.P.updateNZ(c.D, 16)
}

func opTCS(c *CPU, mode addrMode, ea uint32) {
	c.S = c.A
	c.enforceEmulation()
}

func opTSC(c *CPU, mode addrMode, ea uint32) {
	c.A = c.S
	c.P.updateNZ(c.S, 16)
}

func opTXY(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.X
	if width == 8 {
		v &= 0xFF
	}
	c.Y = v
	c.P.updateNZ(v, width)
}

func opTYX(c *CPU, mode addrMode, ea uint32) {
	width := c.widthX()
	v := c.Y
	if width == 8 {
		v &= 0xFF
	}
	c.X = v
	c.P.updateNZ(v, width)
}

func opXBA(c *CPU, mode addrMode, ea uint32) {
	lo := byte(c.A)
	hi := byte(c.A >> 8)
	c.A = uint16(lo)<<8 | uint16(hi)
	c.P.updateNZ(uint16(hi), 8)
}

// Flag control.

func opCLC(c *CPU, mode addrMode, ea uint32) { c.P.set(flagCarry, false) }
func opSEC(c *CPU, mode addrMode, ea uint32) { c.P.set(flagCarry, true) }
func opCLI(c *CPU, mode addrMode, ea uint32) { c.P.set(flagIRQDisable, false) }
func opSEI(c *CPU, mode addrMode, ea uint32) { c.P.set(flagIRQDisable, true) }
func opCLD(c *CPU, mode addrMode, ea uint32) { c.P.set(flagDecimal, false) }
func opSED(c *CPU, mode addrMode, ea uint32) { c.P.set(flagDecimal, true) }
func opCLV(c *CPU, mode addrMode, ea uint32) { c.P.set(flagOverflow, false) }

func opREP(c *CPU, mode addrMode, ea uint32) {
	mask := byte(c.readWidth(ea, 8))
	c.P &^= status(mask)
	c.enforceEmulation()
}

func opSEP(c *CPU, mode addrMode, ea uint32) {
	mask := byte(c.readWidth(ea, 8))
	c.P |= status(mask)
	c.enforceEmulation()
}

// Mode swap.

func opXCE(c *CPU, mode addrMode, ea uint32) {
	oldC := c.P.has(flagCarry)
	oldE := c.E
	c.P.set(flagCarry, oldE)
	c.E = oldC
	c.enforceEmulation()
}

// Interrupts / traps.

func opBRK(c *CPU, mode addrMode, ea uint32) {
	c.fetch8() // signature byte, discarded
	c.enterInterrupt(vecBRKNative, vecBRKEmu, true, true)
}

func opCOP(c *CPU, mode addrMode, ea uint32) {
	c.fetch8() // signature byte, discarded
	c.enterInterrupt(vecCOPNative, vecCOPEmu, true, false)
}

func opWAI(c *CPU, mode addrMode, ea uint32) {}
func opSTP(c *CPU, mode addrMode, ea uint32) {}
func opNOP(c *CPU, mode addrMode, ea uint32) {}
func opWDM(c *CPU, mode addrMode, ea uint32) {}

// Block move.

func (c *CPU) blockMove(increment bool) {
	destBank := c.fetch8()
	srcBank := c.fetch8()

	srcAddr := uint32(srcBank)<<16 | uint32(c.X)
	dstAddr := uint32(destBank)<<16 | uint32(c.Y)
	v := c.bus.read8(srcAddr)
	c.bus.write8(dstAddr, v)

	if increment {
		c.X++
		c.Y++
	} else {
		c.X--
		c.Y--
	}
	c.A--
	c.DB = destBank
	if c.A != 0xFFFF {
		c.PC -= 3
	}
}

func opMVN(c *CPU, mode addrMode, ea uint32) { c.blockMove(true) }
func opMVP(c *CPU, mode addrMode, ea uint32) { c.blockMove(false) }
