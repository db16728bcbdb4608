package preorder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/golang/snappy"
	"github.com/npillmayer/multiway/btree"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how the payload of an encoded stream is compressed.
type Compression uint8

const (
	CompressNone   Compression = iota // payload stored as is
	CompressSnappy                    // snappy block format
	CompressLZ4                       // lz4 frame format
)

func (c Compression) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressSnappy:
		return "snappy"
	case CompressLZ4:
		return "lz4"
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

// ParseCompression maps "none", "snappy" or "lz4" to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressNone, nil
	case "snappy":
		return CompressSnappy, nil
	case "lz4":
		return CompressLZ4, nil
	}
	return CompressNone, fmt.Errorf("unknown compression %q", s)
}

// Options configures Encode.
type Options struct {
	Compression Compression
}

// Stream layout:
//
//	magic "BTPO" | version | compression | payload | xxhash64(raw payload)
//
// The raw payload is a uvarint key count followed by one zig-zag varint per key.
const (
	magic          = "BTPO"
	version   byte = 1
	headerLen      = len(magic) + 2
	sumLen         = 8
)

// Encode writes keys as an encoded stream to w.
func Encode(w io.Writer, keys []btree.Key, opts Options) error {
	raw := make([]byte, 0, binary.MaxVarintLen64*(len(keys)+1))
	raw = binary.AppendUvarint(raw, uint64(len(keys)))
	for _, key := range keys {
		raw = binary.AppendVarint(raw, key)
	}
	payload, err := compress(raw, opts.Compression)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	out.Grow(headerLen + len(payload) + sumLen)
	out.WriteString(magic)
	out.WriteByte(version)
	out.WriteByte(byte(opts.Compression))
	out.Write(payload)
	out.Write(binary.BigEndian.AppendUint64(nil, xxhash.Checksum64(raw)))
	_, err = w.Write(out.Bytes())
	tracer().Debugf("preorder: encoded %d keys, %d bytes (%s)", len(keys), out.Len(), opts.Compression)
	return err
}

// EncodeTree writes the preorder key emission of tree to w.
func EncodeTree(w io.Writer, tree *btree.Tree, opts Options) error {
	return Encode(w, tree.PreorderKeys(), opts)
}

// Decode reads an encoded stream from r. It fails with ErrCorruptStream if the
// stream is malformed or its checksum does not match.
func Decode(r io.Reader) ([]btree.Key, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerLen+sumLen {
		return nil, fmt.Errorf("%w: stream too short (%d bytes)", ErrCorruptStream, len(data))
	}
	if string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptStream)
	}
	if data[len(magic)] != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptStream, data[len(magic)])
	}
	comp := Compression(data[len(magic)+1])
	payload := data[headerLen : len(data)-sumLen]
	sum := binary.BigEndian.Uint64(data[len(data)-sumLen:])
	raw, err := decompress(payload, comp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	if xxhash.Checksum64(raw) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptStream)
	}
	count, n := binary.Uvarint(raw)
	if n <= 0 || count > uint64(len(raw)) {
		return nil, fmt.Errorf("%w: bad key count", ErrCorruptStream)
	}
	raw = raw[n:]
	keys := make([]btree.Key, 0, count)
	for i := uint64(0); i < count; i++ {
		key, n := binary.Varint(raw)
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad key at index %d", ErrCorruptStream, i)
		}
		keys = append(keys, key)
		raw = raw[n:]
	}
	if len(raw) != 0 {
		return nil, fmt.Errorf("%w: %d bytes after last key", ErrCorruptStream, len(raw))
	}
	return keys, nil
}

func compress(raw []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressNone:
		return raw, nil
	case CompressSnappy:
		return snappy.Encode(nil, raw), nil
	case CompressLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown compression %d", uint8(c))
}

func decompress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressNone:
		return payload, nil
	case CompressSnappy:
		return snappy.Decode(nil, payload)
	case CompressLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
	}
	return nil, fmt.Errorf("unknown compression %d", uint8(c))
}
