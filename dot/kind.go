package dot

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go
//go:generate go tool stringer -type=Op -trimprefix=Op -output=op_string.go

// Kind tells which variant a Value holds.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindNull
	KindScalar
	KindList
	KindObject
)

// IsContainer reports whether values of this kind hold nested values.
func (k Kind) IsContainer() bool {
	switch k {
	default:
		return false
	case KindList, KindObject:
		return true
	}
}

// Op identifies a container operation passed to a Recorder.
type Op int

const (
	OpGet Op = iota
	OpAttr
	OpSet
	OpDelete
)
