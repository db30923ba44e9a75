package types

// FileVersion is the (major, minor) pair stored in the CNT version chunk.
type FileVersion struct {
	major uint32
	minor uint32
}

// NewFileVersion constructs a FileVersion. major and minor are non-negative
// by construction (the type is unsigned), matching spec §3.
func NewFileVersion(major, minor uint32) FileVersion {
	return FileVersion{major: major, minor: minor}
}

func (v FileVersion) Major() uint32 { return v.major }
func (v FileVersion) Minor() uint32 { return v.minor }

// Equal reports field-wise equality.
func (v FileVersion) Equal(other FileVersion) bool {
	return v.major == other.major && v.minor == other.minor
}
