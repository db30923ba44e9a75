package types

// Trigger annotates a sample index with a short code, e.g. a stimulus
// marker. Code length is bounded to 8 bytes (spec §3); the bound is
// enforced at construction, not deferred to write time, so a caller
// building a Trigger slice fails fast.
type Trigger struct {
	sample uint64
	code   string
}

// NewTrigger validates code (<=8 bytes) and returns a Trigger, or
// ErrInvalidField wrapped into an InvalidTrigger-shaped error by callers
// that need that distinction (the root package's append_trigger wraps this
// into ErrInvalidTrigger; NewTrigger itself reports the underlying cause).
func NewTrigger(sample uint64, code string) (Trigger, error) {
	if err := validateTriggerCode(code); err != nil {
		return Trigger{}, err
	}
	return Trigger{sample: sample, code: code}, nil
}

func (t Trigger) Sample() uint64 { return t.sample }
func (t Trigger) Code() string   { return t.code }

// Equal reports field-wise equality.
func (t Trigger) Equal(other Trigger) bool {
	return t.sample == other.sample && t.code == other.code
}
