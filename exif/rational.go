package exif

import "strconv"

// Rational is a numerator/denominator pair. Unsigned rationals read from the
// wire keep their raw 32-bit words, so the conversion is lossless both ways.
type Rational struct {
	Numerator   int32
	Denominator int32
}

func NewRational(num, den int32) Rational {
	return Rational{Numerator: num, Denominator: den}
}

func (r Rational) String() string {
	return strconv.FormatInt(int64(r.Numerator), 10) + "/" + strconv.FormatInt(int64(r.Denominator), 10)
}
