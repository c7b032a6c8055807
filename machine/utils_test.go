package machine

import "testing"

func TestSignExtend16(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(signExtend16(0x0001) == 1)
	assert(signExtend16(0xffff) == 0xffffffff)
	assert(signExtend16(0x8000) == 0xffff8000)
}

func TestSignExtend11(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(signExtend11(0x000) == 0)
	assert(signExtend11(0x3ff) == 0x3ff)
	assert(signExtend11(0x400) == -1024)
	assert(signExtend11(0x7ff) == -1)
}

func TestOneIfTrue(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(oneIfTrue(true) == 1)
	assert(oneIfTrue(false) == 0)
}

func TestBoolFromBit(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(boolFromBit(0x8000, 15))
	assert(!boolFromBit(0x8000, 14))
}

func TestCeilDiv(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(ceilDiv(4, 2) == 2)
	assert(ceilDiv(5, 2) == 3)
	assert(ceilDiv(0, 2) == 0)
}
