package main

import (
	"encoding/binary"
	"io"
)

const (
	imageMagic   uint32 = 0x46545448 // "FTTH"
	imageVersion uint16 = 1

	// wordEntrySize is the fixed on-disk layout the saver and loader must
	// agree on: 16 name bytes (NUL-terminated within), 2 address bytes, 1
	// flag byte, and 1 byte of padding to keep entries a round size.
	wordEntrySize  = 20
	wordNameField  = 16
)

// saveImage writes the binary image format described in the bytecode image
// format section: a 16-byte header, the live arena prefix, then one
// fixed-width entry per word table row.
func (vm *VM) saveImage(w io.Writer) error {
	var header [16]byte
	binary.LittleEndian.PutUint32(header[0:4], imageMagic)
	binary.LittleEndian.PutUint16(header[4:6], imageVersion)
	binary.LittleEndian.PutUint16(header[6:8], vm.here)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(vm.words)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(vm.builtinCount))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	dict := vm.arena.Slice(0, uint(vm.here))
	if _, err := w.Write(dict); err != nil {
		return err
	}

	entry := make([]byte, wordEntrySize)
	for _, word := range vm.words {
		for i := range entry {
			entry[i] = 0
		}
		copy(entry[:wordNameField-1], word.name) // remaining name bytes and the trailing NUL stay zero
		binary.LittleEndian.PutUint16(entry[16:18], word.addr)
		entry[18] = word.flags
		if _, err := w.Write(entry); err != nil {
			return err
		}
	}
	return nil
}

// loadImage validates and applies a binary image, replacing the arena,
// here, word table and builtin_count atomically on success. On any
// validation failure it reports ImageFormatError and leaves the VM
// untouched.
func (vm *VM) loadImage(r io.Reader) error {
	var header [16]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return ImageFormatError{"short header: " + err.Error()}
	}
	magic := binary.LittleEndian.Uint32(header[0:4])
	if magic != imageMagic {
		return ImageFormatError{"bad magic"}
	}
	version := binary.LittleEndian.Uint16(header[4:6])
	if version != imageVersion {
		return ImageFormatError{"unsupported version"}
	}
	here := binary.LittleEndian.Uint16(header[6:8])
	wordCount := binary.LittleEndian.Uint32(header[8:12])
	builtinCount := binary.LittleEndian.Uint32(header[12:16])

	if uint(here) > vm.arena.Cap() {
		return ImageFormatError{"here exceeds arena capacity"}
	}
	if wordCount > uint32(len(vm.words))+1<<20 {
		return ImageFormatError{"word_count implausibly large"}
	}

	dict := make([]byte, here)
	if _, err := io.ReadFull(r, dict); err != nil {
		return ImageFormatError{"short dict: " + err.Error()}
	}

	words := make([]wordEntry, wordCount)
	entry := make([]byte, wordEntrySize)
	for i := range words {
		if _, err := io.ReadFull(r, entry); err != nil {
			return ImageFormatError{"short word table: " + err.Error()}
		}
		words[i] = wordEntry{
			name:  nameFromField(entry[:wordNameField]),
			addr:  binary.LittleEndian.Uint16(entry[16:18]),
			flags: entry[18],
		}
	}

	if !vm.arena.CopyInto(dict) {
		return ImageFormatError{"dict overruns arena capacity"}
	}
	vm.here = here
	vm.words = words
	vm.builtinCount = int(builtinCount)
	vm.compiling = false
	vm.csp = 0
	return nil
}

func nameFromField(field []byte) string {
	for i, b := range field {
		if b == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}
