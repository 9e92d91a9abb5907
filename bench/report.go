package bench

import (
	"github.com/ugorji/go/codec"
)

// MarshalBinary encodes the report into a binary (msgpack) form and
// returns the result.
func (r *Report) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)
	err = enc.Encode(r.Reps)
	if err != nil {
		return
	}
	err = enc.Encode(r.Size)
	if err != nil {
		return
	}
	err = enc.Encode(r.Seed)
	if err != nil {
		return
	}
	err = enc.Encode(len(r.Results))
	if err != nil {
		return
	}
	for i := 0; i < len(r.Results); i++ {
		err = enc.Encode(r.Results[i])
		if err != nil {
			return
		}
	}
	return
}

// UnmarshalBinary decodes a report from a binary form generated by
// MarshalBinary.
func (r *Report) UnmarshalBinary(in []byte) (err error) {
	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &bh)
	err = dec.Decode(&r.Reps)
	if err != nil {
		return
	}
	err = dec.Decode(&r.Size)
	if err != nil {
		return
	}
	err = dec.Decode(&r.Seed)
	if err != nil {
		return
	}
	resultNum := 0
	err = dec.Decode(&resultNum)
	if err != nil {
		return
	}
	r.Results = make([]Result, resultNum)
	for i := 0; i < resultNum; i++ {
		err = dec.Decode(&r.Results[i])
		if err != nil {
			return
		}
	}
	return
}
