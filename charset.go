package wmf2svg

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// font_charset values from the LOGFONT record embedded in
// CREATEFONTINDIRECT, mapped to the legacy 8-bit encoding TEXTOUT and
// EXTTEXTOUT byte strings are actually written in under that font. Go's
// string type is just bytes, so decoding to UTF-8 here is what makes the
// later XML escaping and output correct for anything outside ASCII.
const (
	charsetANSI        = 0x00
	charsetDefault     = 0x01
	charsetSymbol      = 0x02
	charsetOEM         = 0xFF
	charsetShiftJIS    = 0x80
	charsetHangul      = 0x81
	charsetGB2312      = 0x86
	charsetChineseBig5 = 0x88
	charsetGreek       = 0xA1
	charsetTurkish     = 0xA2
	charsetHebrew      = 0xB1
	charsetArabic      = 0xB2
	charsetBaltic      = 0xBA
	charsetRussian     = 0xCC
	charsetThai        = 0xDE
	charsetEastEurope  = 0xEE
)

// charsetEncoding returns the decoder for a font_charset byte. Unknown or
// DBCS charsets (ShiftJIS/Hangul/GB2312/Big5, which charmap does not cover)
// fall back to Windows-1252, on the theory that a close-enough decode
// beats refusing to render the text at all.
func charsetEncoding(cs uint8) encoding.Encoding {
	switch cs {
	case charsetOEM:
		return charmap.CodePage437
	case charsetGreek:
		return charmap.Windows1253
	case charsetTurkish:
		return charmap.Windows1254
	case charsetHebrew:
		return charmap.Windows1255
	case charsetArabic:
		return charmap.Windows1256
	case charsetBaltic:
		return charmap.Windows1257
	case charsetRussian:
		return charmap.Windows1251
	case charsetEastEurope:
		return charmap.Windows1250
	default:
		return charmap.Windows1252
	}
}

// decodeText converts a TEXTOUT/EXTTEXTOUT byte string from its
// font_charset-specific 8-bit encoding to UTF-8. Decode errors are not
// possible with these single-byte encodings: charmap maps every byte to
// some rune.
func decodeText(raw []byte, charset uint8) string {
	out, _ := charsetEncoding(charset).NewDecoder().Bytes(raw)
	return string(out)
}
