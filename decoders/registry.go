/*
 Package decoders holds the registry of per-vehicle TPMS protocol
 decoders and the shared MessageInfo type they fill in.

 The registry is a flat, ordered slice of Decoder values. The dispatcher
 walks it front to back, trying each decoder in turn, and the first
 accept wins, so ordering is the tie-break policy when two protocols
 could both match a bitstream.
*/
package decoders

import "github.com/n8jr/tpmsd/fieldset"

// MessageInfo is what a decoder produces on success: where its preamble
// matched, how much of the bitmap it consumed, the raw bits, and the
// extracted FieldSet. The scanner allocates one per candidate and passes
// it to the dispatcher (package dispatcher), which fills it in; the
// latched one is handed to the shell, which owns its release.
type MessageInfo struct {
	DecoderName     string
	StartOffsetBits int
	PulsesCount     int
	Bits            []byte // raw matched span copied by the dispatcher; nil when PulsesCount is 0
	FieldSet        fieldset.FieldSet
}

// Decoder is one protocol decoder: preamble search, line-code decode,
// checksum, field extraction. Decode must have no side effects on
// failure other than writing to its own stack-local buffers; on success
// it fills out and returns true.
type Decoder interface {
	// Name identifies the decoder, e.g. for telemetry/log output.
	Name() string

	// Decode attempts to decode a message starting anywhere in
	// src[:srcLenBits]. srcLenBytes is len(src) rounded up; srcLenBits is
	// the number of valid bits in src (which may be fewer than
	// srcLenBytes*8). On success it populates out and returns true.
	Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool
}

// Meta describes a decoder for introspection tools: the preamble
// pattern it seeks (its bit length is len(Preamble)), the payload
// length, and the check that validates a payload. Dispatch never reads
// it.
type Meta struct {
	Preamble string // ASCII '0'/'1' pattern searched for
	Payload  string // e.g. "9 bytes", "39 bits", "11 or 8 bytes"
	Check    string // e.g. "crc8 poly 0x13", "byte sum"
}

// Described is implemented by decoders that expose introspection
// metadata. Every built-in decoder does; the registry listing tool
// reads it when present.
type Described interface {
	Meta() Meta
}

// Registry is the ordered list of decoders the dispatcher iterates.
// Order is a contract: a more specific decoder must be listed before a
// more general one that could also match its preamble.
var Registry []Decoder

// Register appends d to the end of the registry, after the built-in
// decoders wired by order.go. Out-of-tree decoders use this; the
// built-ins are listed explicitly in one place so their relative order
// never depends on init-execution order across files.
func Register(d Decoder) {
	Registry = append(Registry, d)
}
