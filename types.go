package ctk

import "github.com/slatinski/ctk/types"

// Value objects re-exported from the types subpackage, the way the
// teacher's root package aliases encoder.BitrateMode/types.Signal instead
// of duplicating them.
type (
	Electrode      = types.Electrode
	Electrodes     = types.Electrodes
	TimeSeries     = types.TimeSeries
	Information    = types.Information
	Trigger        = types.Trigger
	EventImpedance = types.EventImpedance
	EventVideo     = types.EventVideo
	EventEpoch     = types.EventEpoch
	FileVersion    = types.FileVersion
	Orientation    = types.Orientation
	Sex            = types.Sex
	Handedness     = types.Handedness
)

const (
	ColumnMajor = types.ColumnMajor
	RowMajor    = types.RowMajor

	SexUnknown = types.SexUnknown
	SexMale    = types.SexMale
	SexFemale  = types.SexFemale

	HandednessUnknown = types.HandednessUnknown
	HandednessLeft    = types.HandednessLeft
	HandednessRight   = types.HandednessRight
	HandednessMixed   = types.HandednessMixed
)

var (
	NewElectrode       = types.NewElectrode
	NewElectrodeScaled = types.NewElectrodeScaled
	NewTimeSeries      = types.NewTimeSeries
	NewTrigger         = types.NewTrigger
	NewFileVersion     = types.NewFileVersion
)
