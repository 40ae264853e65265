package bus

import (
	"testing"

	"github.com/dankbox/ie32vm/internal/arch"
)

func TestInROMAndInRAM(t *testing.T) {
	if !InROM(arch.ROMBase) {
		t.Error("ROM base should be in ROM")
	}
	if InROM(arch.ROMBase + arch.ROMSize) {
		t.Error("ROM end (exclusive) should not be in ROM")
	}
	if !InRAM(arch.RAMBase) {
		t.Error("RAM base should be in RAM")
	}
	if InRAM(arch.RAMBase + arch.RAMSize) {
		t.Error("RAM end (exclusive) should not be in RAM")
	}
}

func TestLoadROMAndReadWord(t *testing.T) {
	b := New()
	b.LoadROM([]byte{0x78, 0x56, 0x34, 0x12})

	if got := b.ReadWord(arch.ROMBase); got != 0x12345678 {
		t.Errorf("ReadWord = 0x%x, want 0x12345678", got)
	}
}

func TestRAMReadWriteRoundTrip(t *testing.T) {
	b := New()
	b.WriteWord(arch.RAMBase+8, 0xAABBCCDD)
	if got := b.ReadWord(arch.RAMBase + 8); got != 0xAABBCCDD {
		t.Errorf("ReadWord = 0x%x, want 0xAABBCCDD", got)
	}
}

func TestByteAndHwordRoundTrip(t *testing.T) {
	b := New()
	b.WriteByte(arch.RAMBase, 0x42)
	if got := b.ReadByte(arch.RAMBase); got != 0x42 {
		t.Errorf("ReadByte = 0x%x, want 0x42", got)
	}

	b.WriteHword(arch.RAMBase+4, 0xBEEF)
	if got := b.ReadHword(arch.RAMBase + 4); got != 0xBEEF {
		t.Errorf("ReadHword = 0x%x, want 0xBEEF", got)
	}
}

func TestDeviceMissReadReturnsZero(t *testing.T) {
	b := New()
	if got := b.ReadWord(0x90000000); got != 0 {
		t.Errorf("ReadWord(unmapped) = 0x%x, want 0", got)
	}
}

func TestDeviceMissWriteIsSilentlyDropped(t *testing.T) {
	b := New()
	// Must not panic.
	b.WriteWord(0x90000000, 0xFFFFFFFF)
}

type fakeDevice struct {
	name  string
	base  uint32
	size  uint32
	word  uint32
	ticks int
	order *[]string // shared log of Update call order, by name
}

func (d *fakeDevice) Contains(addr uint32) bool { return addr >= d.base && addr < d.base+d.size }
func (d *fakeDevice) ReadByte(addr uint32) uint8 { return uint8(d.word) }
func (d *fakeDevice) ReadHword(addr uint32) uint16 { return uint16(d.word) }
func (d *fakeDevice) ReadWord(addr uint32) uint32 { return d.word }
func (d *fakeDevice) WriteByte(addr uint32, v uint8) { d.word = uint32(v) }
func (d *fakeDevice) WriteHword(addr uint32, v uint16) { d.word = uint32(v) }
func (d *fakeDevice) WriteWord(addr uint32, v uint32) { d.word = v }
func (d *fakeDevice) Update() {
	d.ticks++
	if d.order != nil {
		*d.order = append(*d.order, d.name)
	}
}

func TestRegistryResolveMostRecentFirst(t *testing.T) {
	var r Registry
	older := &fakeDevice{base: 0x90000000, size: 4, word: 1}
	newer := &fakeDevice{base: 0x90000000, size: 4, word: 2}
	r.Register(older)
	r.Register(newer)

	dev, ok := r.Resolve(0x90000000)
	if !ok {
		t.Fatal("Resolve did not find a device")
	}
	if dev != Device(newer) {
		t.Error("Resolve returned the older device, want the most recently registered one")
	}
}

func TestRegistryTickHitsEveryDevice(t *testing.T) {
	var r Registry
	a := &fakeDevice{base: 0x90000000, size: 4}
	b := &fakeDevice{base: 0x90001000, size: 4}
	r.Register(a)
	r.Register(b)

	r.Tick()

	if a.ticks != 1 || b.ticks != 1 {
		t.Errorf("ticks = %d/%d, want 1/1", a.ticks, b.ticks)
	}
}

func TestRegistryTickUpdatesMostRecentlyRegisteredFirst(t *testing.T) {
	var r Registry
	var order []string
	a := &fakeDevice{name: "A", base: 0x90000000, size: 4, order: &order}
	b := &fakeDevice{name: "B", base: 0x90001000, size: 4, order: &order}
	r.Register(a)
	r.Register(b)

	r.Tick()

	want := []string{"B", "A"}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("tick order = %v, want %v (B registered last, ticks first)", order, want)
	}
}

func TestBusDispatchesToRegisteredDevice(t *testing.T) {
	b := New()
	dev := &fakeDevice{base: 0x90000000, size: 4}
	b.Registry.Register(dev)

	b.WriteWord(0x90000000, 0x99)
	if got := b.ReadWord(0x90000000); got != 0x99 {
		t.Errorf("ReadWord via device = 0x%x, want 0x99", got)
	}
}
