// Copyright 2026 The Inspektor Gadget authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package usdt

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// For details regarding the data format of USDT notes, please refer to:
// https://sourceware.org/systemtap/wiki/UserSpaceProbeImplementation
const (
	sdtNoteSectionName = ".note.stapsdt"
	sdtBaseSectionName = ".stapsdt.base"
	sdtNoteName        = "stapsdt"
	sdtNoteType        = 3
)

var ErrNoProbe = errors.New("no matching USDT probe")

// Probe is one USDT probe site. Location and Semaphore are file offsets,
// Semaphore is zero when the probe has none.
type Probe struct {
	Provider  string `json:"provider"`
	Name      string `json:"name"`
	Location  uint64 `json:"location"`
	Semaphore uint64 `json:"semaphore,omitempty"`
	Args      string `json:"args"`
}

type noteHeader struct {
	NameSize uint32
	DescSize uint32
	Type     uint32
}

type noteLayout struct {
	order    binary.ByteOrder
	wordSize int
	// link-time address of .stapsdt.base, used to undo prelink shifts
	baseAddr uint64
	toOffset func(vaddr uint64) (uint64, error)
}

func vaddr2ElfOffset(f *elf.File, addr uint64) (uint64, error) {
	for _, prog := range f.Progs {
		if prog.Vaddr <= addr && addr < (prog.Vaddr+prog.Memsz) {
			return addr - prog.Vaddr + prog.Off, nil
		}
	}
	return 0, fmt.Errorf("malformed elf file: elf prog containing addr %x not found", addr)
}

func alignUp[T int | int32 | int64 | uint | uint32 | uint64](n T, align T) T {
	return (n + align - 1) / align * align
}

// ReadNotes returns every USDT probe described in the ELF file at path.
func ReadNotes(path string) ([]Probe, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", path, err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating file %q: %w", path, err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("ELF file %q is not regular", path)
	}

	elfReader, err := elf.NewFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading elf file %q: %w", path, err)
	}
	defer elfReader.Close()

	noteSection := elfReader.Section(sdtNoteSectionName)
	if noteSection == nil {
		return nil, fmt.Errorf("%q: USDT note section does not exist", path)
	}
	if noteSection.Type != elf.SHT_NOTE {
		return nil, fmt.Errorf("section %q is not a note", sdtNoteSectionName)
	}

	baseSection := elfReader.Section(sdtBaseSectionName)
	if baseSection == nil {
		return nil, fmt.Errorf("%q: USDT base section does not exist", path)
	}
	if baseSection.Type != elf.SHT_PROGBITS {
		return nil, fmt.Errorf("%q is not a program defined section", sdtBaseSectionName)
	}

	wordSize := 4
	if elfReader.Class == elf.ELFCLASS64 {
		wordSize = 8
	}

	l := noteLayout{
		order:    elfReader.ByteOrder,
		wordSize: wordSize,
		baseAddr: baseSection.Addr,
		toOffset: func(vaddr uint64) (uint64, error) {
			return vaddr2ElfOffset(elfReader, vaddr)
		},
	}
	return parseNotes(noteSection.Open(), l, log.WithField("path", path))
}

// FindProbe returns the probe named "provider:name" in the ELF file at path.
func FindProbe(path string, attachSymbol string) (*Probe, error) {
	providerName, probeName, ok := strings.Cut(attachSymbol, ":")
	if !ok || strings.Contains(probeName, ":") {
		return nil, fmt.Errorf("invalid USDT section name: %q", attachSymbol)
	}

	probes, err := ReadNotes(path)
	if err != nil {
		return nil, err
	}
	for i := range probes {
		if probes[i].Provider == providerName && probes[i].Name == probeName {
			return &probes[i], nil
		}
	}
	return nil, fmt.Errorf("%w %q in %q", ErrNoProbe, attachSymbol, path)
}

// parseNotes walks the ELF notes in r. For details of the structure of ELF
// notes, please refer to https://man7.org/linux/man-pages/man5/elf.5.html,
// the `Notes (Nhdr)` section.
func parseNotes(r io.Reader, l noteLayout, logger log.FieldLogger) ([]Probe, error) {
	var probes []Probe
	for {
		var header noteHeader
		err := binary.Read(r, l.order, &header)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading USDT note header: %w", err)
		}

		name := make([]byte, alignUp(uint64(header.NameSize), 4))
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("reading USDT note name: %w", err)
		}

		desc := make([]byte, alignUp(uint64(header.DescSize), 4))
		if _, err := io.ReadFull(r, desc); err != nil {
			return nil, fmt.Errorf("reading USDT note desc: %w", err)
		}

		noteName := string(bytes.TrimRight(name, "\x00"))
		if noteName != sdtNoteName || header.Type != sdtNoteType {
			logger.Debugf("skipping note %q of type %d", noteName, header.Type)
			continue
		}

		probe, err := parseDesc(desc[:header.DescSize], l)
		if err != nil {
			return nil, err
		}
		probes = append(probes, *probe)
	}
	return probes, nil
}

func parseDesc(desc []byte, l noteLayout) (*Probe, error) {
	words := 3 * l.wordSize
	if len(desc) < words {
		return nil, fmt.Errorf("USDT note desc too short: %d bytes", len(desc))
	}
	word := func(i int) uint64 {
		b := desc[i*l.wordSize : (i+1)*l.wordSize]
		if l.wordSize == 4 {
			return uint64(l.order.Uint32(b))
		}
		return l.order.Uint64(b)
	}
	elfLocation, elfBase, elfSemaphore := word(0), word(1), word(2)

	strs := strings.Split(string(desc[words:]), "\x00")
	if len(strs) < 3 {
		return nil, fmt.Errorf("USDT note desc: expected provider, name and arguments")
	}

	diff := l.baseAddr - elfBase
	location, err := l.toOffset(elfLocation + diff)
	if err != nil {
		return nil, err
	}

	if elfSemaphore != 0 {
		elfSemaphore, err = l.toOffset(elfSemaphore + diff)
		if err != nil {
			return nil, err
		}
	}

	return &Probe{
		Provider:  strs[0],
		Name:      strs[1],
		Location:  location,
		Semaphore: elfSemaphore,
		Args:      strs[2],
	}, nil
}
