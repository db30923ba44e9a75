// Package types defines the value objects shared by ctk's subpackages:
// electrodes, time series parameters, recording information, triggers and
// events, plus small enumerations (Orientation, Sex, Handedness) and the
// file version pair.
//
// This package exists to break import cycles: both the root ctk package
// (Reader/Writer) and the header package (serialization) need the same
// value types, but header must not import the root package.
//
// Electrode, TimeSeries, Trigger and FileVersion have unexported fields and
// a validating constructor or setters; Information and the three event
// types are plain structs with exported, unvalidated fields. Every value
// object has an Equal method for field-wise structural comparison.
// Setters preserve the receiver unchanged on validation failure.
package types
