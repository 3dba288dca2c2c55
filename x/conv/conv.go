// Package conv holds allocation-light numeric formatting for MCU builds,
// where fmt/strconv pull in too much.
package conv

// AppendInt appends the base-10 representation of n to dst.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	if n == 0 {
		return append(dst, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, tmp[i:]...)
}

// AppendHex appends the lowercase hex representation of n, without padding.
func AppendHex(dst []byte, n uint64) []byte {
	const hexd = "0123456789abcdef"
	if n == 0 {
		return append(dst, '0')
	}
	var tmp [16]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = hexd[n&0xF]
		n >>= 4
	}
	return append(dst, tmp[i:]...)
}
