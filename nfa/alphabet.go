package nfa

// ByteClasses maps each byte value to its equivalence class.
//
// Two bytes share a class when no transition in the NFA distinguishes them,
// so a DFA only needs one transition per class instead of one per byte.
//
// Example for pattern a.b:
//   - Class 0: 0x00-0x60
//   - Class 1: 'a'
//   - Class 2: 'b'
//   - Class 3: 0x63-0xff
type ByteClasses struct {
	classes [256]byte
}

// NewByteClasses creates a new ByteClasses where all bytes are in class 0.
func NewByteClasses() ByteClasses {
	return ByteClasses{}
}

// SingletonByteClasses creates ByteClasses where each byte is its own class.
func SingletonByteClasses() ByteClasses {
	var bc ByteClasses
	for i := 0; i < 256; i++ {
		bc.classes[i] = byte(i)
	}
	return bc
}

// Get returns the equivalence class for the given byte.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the number of equivalence classes.
func (bc *ByteClasses) AlphabetLen() int {
	// Classes are assigned in increasing byte order, so the last byte holds
	// the highest class.
	return int(bc.classes[255]) + 1
}

// IsSingleton returns true if each byte is its own equivalence class.
func (bc *ByteClasses) IsSingleton() bool {
	return bc.AlphabetLen() == 256
}

// Representatives returns one byte per class, in class order.
func (bc *ByteClasses) Representatives() []byte {
	reps := make([]byte, 0, bc.AlphabetLen())
	next := 0
	for b := 0; b < 256; b++ {
		if int(bc.classes[b]) == next {
			reps = append(reps, byte(b))
			next++
		}
	}
	return reps
}

// Elements returns all bytes that belong to the given equivalence class.
func (bc *ByteClasses) Elements(class byte) []byte {
	var elems []byte
	for b := 0; b < 256; b++ {
		if bc.classes[b] == class {
			elems = append(elems, byte(b))
		}
	}
	return elems
}

// ByteClassSet tracks class boundaries while transitions are added.
//
// For each range [lo, hi], lo-1 and hi become boundaries; walking the 256
// bytes and bumping the class after every boundary yields ByteClasses.
type ByteClassSet struct {
	bits [4]uint64
}

// NewByteClassSet creates an empty ByteClassSet with no boundaries.
func NewByteClassSet() *ByteClassSet {
	return &ByteClassSet{}
}

// SetRange marks [start, end] as having distinct transitions.
func (bcs *ByteClassSet) SetRange(start, end byte) {
	if start > 0 {
		bcs.setBit(start - 1)
	}
	bcs.setBit(end)
}

// SetByte is SetRange(b, b).
func (bcs *ByteClassSet) SetByte(b byte) {
	bcs.SetRange(b, b)
}

func (bcs *ByteClassSet) setBit(b byte) {
	bcs.bits[b/64] |= 1 << (b % 64)
}

func (bcs *ByteClassSet) getBit(b byte) bool {
	return bcs.bits[b/64]&(1<<(b%64)) != 0
}

// ByteClasses converts the boundary set into a lookup table.
func (bcs *ByteClassSet) ByteClasses() ByteClasses {
	var bc ByteClasses
	class := byte(0)
	for b := 0; b < 256; b++ {
		bc.classes[b] = class
		// 0xff is always the last class; bumping past it would overflow.
		if b < 255 && bcs.getBit(byte(b)) {
			class++
		}
	}
	return bc
}
