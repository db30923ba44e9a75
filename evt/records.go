package evt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/slatinski/ctk/types"
)

const ohmsPerKiloOhm = 1000.0

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putI32(buf *bytes.Buffer, v int32) { putU32(buf, uint32(v)) }

func putI64(buf *bytes.Buffer, v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func putF64(buf *bytes.Buffer, v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	buf.Write(b[:])
}

func putString(buf *bytes.Buffer, s string) {
	b := []byte(s)
	putU32(buf, uint32(len(b)))
	buf.Write(b)
}

func readU32(r *bytes.Reader, field string) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCorruptEvent, field, err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readI32(r *bytes.Reader, field string) (int32, error) {
	v, err := readU32(r, field)
	return int32(v), err
}

func readI64(r *bytes.Reader, field string) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCorruptEvent, field, err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func readF64(r *bytes.Reader, field string) (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCorruptEvent, field, err)
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:])), nil
}

func readString(r *bytes.Reader, field string) (string, error) {
	n, err := readU32(r, field)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("%w: %s body: %v", ErrCorruptEvent, field, err)
	}
	return string(b), nil
}

// encodeImpedances serializes the impd chunk body: a uint32 count
// followed by (stamp int64, value count uint32, values []float64 in kOhm).
func encodeImpedances(events []types.EventImpedance) []byte {
	var buf bytes.Buffer
	putU32(&buf, uint32(len(events)))
	for _, e := range events {
		putI64(&buf, e.Stamp.UnixNano())
		putU32(&buf, uint32(len(e.Values)))
		for _, v := range e.Values {
			putF64(&buf, v/ohmsPerKiloOhm)
		}
	}
	return buf.Bytes()
}

func decodeImpedances(body []byte) ([]types.EventImpedance, error) {
	r := bytes.NewReader(body)
	count, err := readU32(r, "impd count")
	if err != nil {
		return nil, err
	}
	out := make([]types.EventImpedance, 0, count)
	for i := uint32(0); i < count; i++ {
		ns, err := readI64(r, "impd.stamp")
		if err != nil {
			return nil, err
		}
		n, err := readU32(r, "impd.value_count")
		if err != nil {
			return nil, err
		}
		values := make([]float64, n)
		for j := range values {
			kohm, err := readF64(r, "impd.value")
			if err != nil {
				return nil, err
			}
			values[j] = kohm * ohmsPerKiloOhm
		}
		out = append(out, types.EventImpedance{Stamp: time.Unix(0, ns).UTC(), Values: values})
	}
	return out, nil
}

// encodeVideos serializes the vids chunk body.
func encodeVideos(events []types.EventVideo) []byte {
	var buf bytes.Buffer
	putU32(&buf, uint32(len(events)))
	for _, e := range events {
		putI64(&buf, e.Stamp.UnixNano())
		putF64(&buf, e.Duration)
		putI32(&buf, e.TriggerCode)
		putString(&buf, e.ConditionLabel)
		putString(&buf, e.Description)
		putString(&buf, e.VideoFile)
	}
	return buf.Bytes()
}

func decodeVideos(body []byte) ([]types.EventVideo, error) {
	r := bytes.NewReader(body)
	count, err := readU32(r, "vids count")
	if err != nil {
		return nil, err
	}
	out := make([]types.EventVideo, 0, count)
	for i := uint32(0); i < count; i++ {
		ns, err := readI64(r, "vids.stamp")
		if err != nil {
			return nil, err
		}
		duration, err := readF64(r, "vids.duration")
		if err != nil {
			return nil, err
		}
		trigger, err := readI32(r, "vids.trigger_code")
		if err != nil {
			return nil, err
		}
		condition, err := readString(r, "vids.condition_label")
		if err != nil {
			return nil, err
		}
		description, err := readString(r, "vids.description")
		if err != nil {
			return nil, err
		}
		videoFile, err := readString(r, "vids.video_file")
		if err != nil {
			return nil, err
		}
		out = append(out, types.EventVideo{
			Stamp:          time.Unix(0, ns).UTC(),
			Duration:       duration,
			TriggerCode:    trigger,
			ConditionLabel: condition,
			Description:    description,
			VideoFile:      videoFile,
		})
	}
	return out, nil
}

// encodeMarkers serializes the mark chunk body.
func encodeMarkers(events []types.EventEpoch) []byte {
	var buf bytes.Buffer
	putU32(&buf, uint32(len(events)))
	for _, e := range events {
		putI64(&buf, e.Stamp.UnixNano())
		putF64(&buf, e.Duration)
		putF64(&buf, e.Offset)
		putI32(&buf, e.TriggerCode)
		putString(&buf, e.ConditionLabel)
	}
	return buf.Bytes()
}

func decodeMarkers(body []byte) ([]types.EventEpoch, error) {
	r := bytes.NewReader(body)
	count, err := readU32(r, "mark count")
	if err != nil {
		return nil, err
	}
	out := make([]types.EventEpoch, 0, count)
	for i := uint32(0); i < count; i++ {
		ns, err := readI64(r, "mark.stamp")
		if err != nil {
			return nil, err
		}
		duration, err := readF64(r, "mark.duration")
		if err != nil {
			return nil, err
		}
		offset, err := readF64(r, "mark.offset")
		if err != nil {
			return nil, err
		}
		trigger, err := readI32(r, "mark.trigger_code")
		if err != nil {
			return nil, err
		}
		condition, err := readString(r, "mark.condition_label")
		if err != nil {
			return nil, err
		}
		out = append(out, types.EventEpoch{
			Stamp:          time.Unix(0, ns).UTC(),
			Duration:       duration,
			Offset:         offset,
			TriggerCode:    trigger,
			ConditionLabel: condition,
		})
	}
	return out, nil
}
