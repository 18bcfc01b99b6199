package declinatio

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
)

// datasetMagic identifies a compiled dataset artifact on disk.
const datasetMagic = "DCLN"

// datasetVersion guards against loading an artifact built by an incompatible
// compiler version.
const datasetVersion = 1

// Dataset is the single immutable artifact produced by Compile and consumed
// by Load: the morph-name table, the two paradigm tables, and the lemma
// dictionary, bundled together. Its zero value is not usable; construct one
// via Compile or Load.
type Dataset struct {
	// MorphName is the dense, 1-based array of human-readable tag names
	// (index 0 unused), matching morphos.la's own 1-based tag numbering.
	MorphName []string

	// Models is the ASCII-folded paradigm table.
	Models map[string]*Paradigm

	// ScansionModels is the diacritic-preserving paradigm table.
	ScansionModels map[string]*Paradigm

	// Lemmas is the dictionary, keyed by ASCII-folded citation form.
	Lemmas map[string]*LemmaEntry
}

// payload is the gob-encoded shape of a Dataset. Dataset itself is not
// gob-encoded directly so that the on-disk shape can evolve independently of
// the in-memory API.
type payload struct {
	MorphName      []string
	Models         map[string]*Paradigm
	ScansionModels map[string]*Paradigm
	Lemmas         map[string]*LemmaEntry
}

// header is the fixed-size framing written ahead of the compressed payload,
// in the style of SteosMorphy's own magic+version+size dictionary header.
type header struct {
	Magic   [4]byte
	Version uint32
	Size    uint64 // length in bytes of the gzip-compressed payload that follows
}

const headerSize = 4 + 4 + 8

// Encode serializes d to the framed gob+gzip artifact format that Load reads
// back via mmap.
func (d *Dataset) Encode(w io.Writer) error {
	p := payload{
		MorphName:      d.MorphName,
		Models:         d.Models,
		ScansionModels: d.ScansionModels,
		Lemmas:         d.Lemmas,
	}

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(p); err != nil {
		return fmt.Errorf("declinatio: encode dataset: %w", err)
	}

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	if _, err := gz.Write(raw.Bytes()); err != nil {
		return fmt.Errorf("declinatio: compress dataset: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("declinatio: compress dataset: %w", err)
	}

	h := header{Version: datasetVersion, Size: uint64(compressed.Len())}
	copy(h.Magic[:], datasetMagic)

	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("declinatio: write dataset header: %w", err)
	}
	if _, err := w.Write(compressed.Bytes()); err != nil {
		return fmt.Errorf("declinatio: write dataset body: %w", err)
	}
	return nil
}

// decodeDataset parses the framed artifact held in buf (typically an mmap
// view) into a Dataset. buf is only read during this call; the returned
// Dataset owns its own copies of all data, so the caller may unmap buf
// immediately afterward, unlike SteosMorphy's analyzer, which keeps its
// mapping alive for the process lifetime because it aliases it directly.
func decodeDataset(buf []byte) (*Dataset, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("declinatio: dataset truncated: only %d bytes", len(buf))
	}

	var h header
	if err := binary.Read(bytes.NewReader(buf[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("declinatio: read dataset header: %w", err)
	}
	if string(h.Magic[:]) != datasetMagic {
		return nil, fmt.Errorf("declinatio: not a declinatio dataset (bad magic)")
	}
	if h.Version != datasetVersion {
		return nil, fmt.Errorf("declinatio: unsupported dataset version %d", h.Version)
	}

	body := buf[headerSize:]
	if uint64(len(body)) < h.Size {
		return nil, fmt.Errorf("declinatio: dataset body truncated: want %d bytes, have %d", h.Size, len(body))
	}
	body = body[:h.Size]

	gz, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("declinatio: open dataset body: %w", err)
	}
	defer gz.Close()

	var p payload
	if err := gob.NewDecoder(gz).Decode(&p); err != nil {
		return nil, fmt.Errorf("declinatio: decode dataset: %w", err)
	}

	return &Dataset{
		MorphName:      p.MorphName,
		Models:         p.Models,
		ScansionModels: p.ScansionModels,
		Lemmas:         p.Lemmas,
	}, nil
}
