package types

import "testing"

func TestOrientationString(t *testing.T) {
	cases := map[Orientation]string{
		ColumnMajor:          "column-major",
		RowMajor:             "row-major",
		Orientation(99):      "unknown",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("Orientation(%d).String() = %q, want %q", o, got, want)
		}
	}
}
