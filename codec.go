package growstr

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("growstr: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{UTF8: cbor.UTF8RejectInvalid}.DecMode()
	if err != nil {
		panic("growstr: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s *String) MarshalText() ([]byte, error) {
	return s.CopyBytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Invalid UTF-8 is
// rejected and leaves s unchanged.
func (s *String) UnmarshalText(text []byte) error {
	if err := validate(text); err != nil {
		return fmt.Errorf("unmarshal text: %w", err)
	}
	return s.splice("unmarshal", 0, s.Len(), text)
}

// MarshalCBOR encodes s as a CBOR text string.
func (s *String) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(bytesToString(s.Bytes()))
}

// UnmarshalCBOR decodes a CBOR text string into s.
func (s *String) UnmarshalCBOR(data []byte) error {
	var text string
	if err := decMode.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("unmarshal cbor: %w", err)
	}
	return s.UnmarshalText([]byte(text))
}
