package header

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/slatinski/ctk/types"
)

// informationFieldCount is the number of length-prefixed free-text
// strings in declaration order, per spec §3.
const informationFieldCount = 13

// EncodeInformation serializes the info chunk body: informationFieldCount
// length-prefixed strings, then subject_sex, subject_handedness (one byte
// each) and subject_dob (int64 nanoseconds since the Unix epoch, UTC).
func EncodeInformation(info types.Information) []byte {
	var buf bytes.Buffer
	for _, s := range []string{
		info.Hospital, info.TestName, info.TestSerial, info.Physician,
		info.Technician, info.MachineMake, info.MachineModel, info.MachineSN,
		info.SubjectName, info.SubjectID, info.SubjectAddress, info.SubjectPhone,
		info.Comment,
	} {
		writeString(&buf, s)
	}
	buf.WriteByte(byte(info.SubjectSex))
	buf.WriteByte(byte(info.SubjectHandedness))
	var dob [8]byte
	binary.LittleEndian.PutUint64(dob[:], uint64(info.SubjectDOB.UnixNano()))
	buf.Write(dob[:])
	return buf.Bytes()
}

// DecodeInformation parses the info chunk body.
func DecodeInformation(body []byte) (types.Information, error) {
	r := bytes.NewReader(body)

	fields := make([]string, informationFieldCount)
	for i := range fields {
		s, err := readString(r)
		if err != nil {
			return types.Information{}, fmt.Errorf("%w: info field %d: %v", ErrCorruptHeader, i, err)
		}
		fields[i] = s
	}

	var sexByte, handByte [1]byte
	if _, err := io.ReadFull(r, sexByte[:]); err != nil {
		return types.Information{}, fmt.Errorf("%w: info.subject_sex: %v", ErrCorruptHeader, err)
	}
	if _, err := io.ReadFull(r, handByte[:]); err != nil {
		return types.Information{}, fmt.Errorf("%w: info.subject_handedness: %v", ErrCorruptHeader, err)
	}
	sex := types.Sex(sexByte[0])
	if sex > types.SexFemale {
		return types.Information{}, fmt.Errorf("%w: info.subject_sex: invalid value %d", ErrCorruptHeader, sexByte[0])
	}
	handedness := types.Handedness(handByte[0])
	if handedness > types.HandednessMixed {
		return types.Information{}, fmt.Errorf("%w: info.subject_handedness: invalid value %d", ErrCorruptHeader, handByte[0])
	}

	var dobBuf [8]byte
	if _, err := io.ReadFull(r, dobBuf[:]); err != nil {
		return types.Information{}, fmt.Errorf("%w: info.subject_dob: %v", ErrCorruptHeader, err)
	}
	dob := time.Unix(0, int64(binary.LittleEndian.Uint64(dobBuf[:]))).UTC()

	return types.Information{
		Hospital:          fields[0],
		TestName:          fields[1],
		TestSerial:        fields[2],
		Physician:         fields[3],
		Technician:        fields[4],
		MachineMake:       fields[5],
		MachineModel:      fields[6],
		MachineSN:         fields[7],
		SubjectName:       fields[8],
		SubjectID:         fields[9],
		SubjectAddress:    fields[10],
		SubjectPhone:      fields[11],
		Comment:           fields[12],
		SubjectSex:        sex,
		SubjectHandedness: handedness,
		SubjectDOB:        dob,
	}, nil
}
