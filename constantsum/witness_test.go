package constantsum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWitnessRoundTrip(t *testing.T) {
	L := []int{0, 3, 15, 255, 400, 0}
	w, err := EncodeWitness(L)
	require.NoError(t, err)
	require.Len(t, w, 2*len(L))

	got, err := DecodeWitness(w, len(L))
	require.NoError(t, err)
	require.Equal(t, L, got)
}

func TestEncodeWitnessRejectsOutOfRange(t *testing.T) {
	_, err := EncodeWitness([]int{1, -1, 2})
	require.Error(t, err)

	_, err = EncodeWitness([]int{0x8000})
	require.Error(t, err)
}

func TestEncodeWitnessIsLittleEndian(t *testing.T) {
	w, err := EncodeWitness([]int{0x0102})
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01}, w)
}

func TestDecodeWitnessRejectsWrongLength(t *testing.T) {
	_, err := DecodeWitness([]byte{1, 2, 3}, 2)
	require.Error(t, err)
}

func TestWitnessAgreesWithEncode(t *testing.T) {
	const tt, n, s = 6, 4, 9
	for I := 0; I < 50; I++ {
		L := Encode(bigIntFromInt(I), tt, n, s, Linear, nil)
		w, err := EncodeWitness(L)
		require.NoError(t, err)
		back, err := DecodeWitness(w, tt)
		require.NoError(t, err)
		require.Equal(t, L, back)
	}
}
