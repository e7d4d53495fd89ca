/*
 Package fieldset is the opaque, type-tagged record a protocol decoder
 fills in on success: an ordered, append-only sequence of named fields,
 each carrying one of seven type tags. Consumers walk fields by name or
 by kind rather than by static field access, so decoders for different
 protocols can emit different field mixes behind one type.
*/
package fieldset

import "fmt"

// Kind tags the seven possible field payload types.
type Kind int

const (
	KindString Kind = iota
	KindSignedInt
	KindUnsignedInt
	KindBinary
	KindHex
	KindBytes
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindSignedInt:
		return "signed_int"
	case KindUnsignedInt:
		return "unsigned_int"
	case KindBinary:
		return "binary"
	case KindHex:
		return "hex"
	case KindBytes:
		return "bytes"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Field is one named, typed value in a FieldSet. Only the member matching
// Kind is meaningful.
type Field struct {
	Name string
	Kind Kind

	Str        string
	Int        int64
	Uint       uint64
	Bytes      []byte // for KindBytes, KindBinary, KindHex payloads
	Nibble     int    // for KindBytes: length of the payload in nibbles
	Float      float64
	FracDigits int
}

// FieldSet is an ordered, append-only collection of Fields, owned by the
// MessageInfo that holds it.
type FieldSet struct {
	fields []Field
}

// Fields returns the fields in insertion order.
func (fs *FieldSet) Fields() []Field {
	return fs.fields
}

// Lookup returns the field named name and true, or the zero Field and
// false if no field by that name was ever added.
func (fs *FieldSet) Lookup(name string) (Field, bool) {
	for _, f := range fs.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// AddInt appends a signed integer field.
func (fs *FieldSet) AddInt(name string, v int64) {
	fs.fields = append(fs.fields, Field{Name: name, Kind: KindSignedInt, Int: v})
}

// AddUint appends an unsigned integer field.
func (fs *FieldSet) AddUint(name string, v uint64) {
	fs.fields = append(fs.fields, Field{Name: name, Kind: KindUnsignedInt, Uint: v})
}

// AddHex appends a field whose value renders as lower-case hex.
func (fs *FieldSet) AddHex(name string, v uint64) {
	fs.fields = append(fs.fields, Field{Name: name, Kind: KindHex, Uint: v})
}

// AddBin appends a field whose value renders as a binary string.
func (fs *FieldSet) AddBin(name string, v uint64) {
	fs.fields = append(fs.fields, Field{Name: name, Kind: KindBinary, Uint: v})
}

// AddStr appends a string field.
func (fs *FieldSet) AddStr(name, v string) {
	fs.fields = append(fs.fields, Field{Name: name, Kind: KindString, Str: v})
}

// AddBytes appends a raw-bytes field. nibbleLen is the length of the
// payload in nibbles; callers that want a byte count divide by two and
// round up.
func (fs *FieldSet) AddBytes(name string, data []byte, nibbleLen int) {
	cp := make([]byte, len(data))
	copy(cp, data)
	fs.fields = append(fs.fields, Field{Name: name, Kind: KindBytes, Bytes: cp, Nibble: nibbleLen})
}

// AddFloat appends a float field, remembering the number of fractional
// digits a renderer should use.
func (fs *FieldSet) AddFloat(name string, v float64, fractionalDigits int) {
	fs.fields = append(fs.fields, Field{Name: name, Kind: KindFloat, Float: v, FracDigits: fractionalDigits})
}

// String renders a field for diagnostics; it is not part of the
// decoder/shell naming contract, only a debugging aid.
func (f Field) String() string {
	switch f.Kind {
	case KindString:
		return fmt.Sprintf("%s=%q", f.Name, f.Str)
	case KindSignedInt:
		return fmt.Sprintf("%s=%d", f.Name, f.Int)
	case KindUnsignedInt:
		return fmt.Sprintf("%s=%d", f.Name, f.Uint)
	case KindBinary:
		return fmt.Sprintf("%s=0b%b", f.Name, f.Uint)
	case KindHex:
		return fmt.Sprintf("%s=0x%x", f.Name, f.Uint)
	case KindBytes:
		return fmt.Sprintf("%s=%x", f.Name, f.Bytes)
	case KindFloat:
		return fmt.Sprintf("%s=%.*f", f.Name, f.FracDigits, f.Float)
	default:
		return f.Name
	}
}
