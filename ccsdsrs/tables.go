package ccsdsrs

// Galois-field tables for the CCSDS RS(255,223) code, GF(2^8) with field
// generator x^8+x^4+x^3+x^2+1 (0x11D), fcr=112, prim=11, nroots=32.
//
// gfExpTable and gfLogTable are the antilog/log tables in alpha-basis
// (exponent i -> alpha^i, and alpha^i -> i). dualToAlpha and alphaToDual
// convert the dual (iota) basis used on the CCSDS wire to/from the
// alpha basis these tables and the decoder operate in. All four tables
// are transcribed verbatim from the reference C implementation's
// gf[]/gf_index[]/iota[]/alpha[] arrays (original_source/ccsds/_check_rs.c)
// rather than re-derived, to guarantee bit-for-bit CCSDS compatibility.

// gfExpTable[i] = alpha^i for i in [0,254]; gfExpTable[255] holds 0, so
// the noSym index (255) maps back to the zero element.
var gfExpTable = [256]byte{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x5F,
	0xBE, 0x23, 0x46, 0x8C, 0x47, 0x8E, 0x43, 0x86, 0x53,
	0xA6, 0x13, 0x26, 0x4C, 0x98, 0x6F, 0xDE, 0xE3, 0x99,
	0x6D, 0xDA, 0xEB, 0x89, 0x4D, 0x9A, 0x6B, 0xD6, 0xF3,
	0xB9, 0x2D, 0x5A, 0xB4, 0x37, 0x6E, 0xDC, 0xE7, 0x91,
	0x7D, 0xFA, 0xAB, 0x09, 0x12, 0x24, 0x48, 0x90, 0x7F,
	0xFE, 0xA3, 0x19, 0x32, 0x64, 0xC8, 0xCF, 0xC1, 0xDD,
	0xE5, 0x95, 0x75, 0xEA, 0x8B, 0x49, 0x92, 0x7B, 0xF6,
	0xB3, 0x39, 0x72, 0xE4, 0x97, 0x71, 0xE2, 0x9B, 0x69,
	0xD2, 0xFB, 0xA9, 0x0D, 0x1A, 0x34, 0x68, 0xD0, 0xFF,
	0xA1, 0x1D, 0x3A, 0x74, 0xE8, 0x8F, 0x41, 0x82, 0x5B,
	0xB6, 0x33, 0x66, 0xCC, 0xC7, 0xD1, 0xFD, 0xA5, 0x15,
	0x2A, 0x54, 0xA8, 0x0F, 0x1E, 0x3C, 0x78, 0xF0, 0xBF,
	0x21, 0x42, 0x84, 0x57, 0xAE, 0x03, 0x06, 0x0C, 0x18,
	0x30, 0x60, 0xC0, 0xDF, 0xE1, 0x9D, 0x65, 0xCA, 0xCB,
	0xC9, 0xCD, 0xC5, 0xD5, 0xF5, 0xB5, 0x35, 0x6A, 0xD4,
	0xF7, 0xB1, 0x3D, 0x7A, 0xF4, 0xB7, 0x31, 0x62, 0xC4,
	0xD7, 0xF1, 0xBD, 0x25, 0x4A, 0x94, 0x77, 0xEE, 0x83,
	0x59, 0xB2, 0x3B, 0x76, 0xEC, 0x87, 0x51, 0xA2, 0x1B,
	0x36, 0x6C, 0xD8, 0xEF, 0x81, 0x5D, 0xBA, 0x2B, 0x56,
	0xAC, 0x07, 0x0E, 0x1C, 0x38, 0x70, 0xE0, 0x9F, 0x61,
	0xC2, 0xDB, 0xE9, 0x8D, 0x45, 0x8A, 0x4B, 0x96, 0x73,
	0xE6, 0x93, 0x79, 0xF2, 0xBB, 0x29, 0x52, 0xA4, 0x17,
	0x2E, 0x5C, 0xB8, 0x2F, 0x5E, 0xBC, 0x27, 0x4E, 0x9C,
	0x67, 0xCE, 0xC3, 0xD9, 0xED, 0x85, 0x55, 0xAA, 0x0B,
	0x16, 0x2C, 0x58, 0xB0, 0x3F, 0x7E, 0xFC, 0xA7, 0x11,
	0x22, 0x44, 0x88, 0x4F, 0x9E, 0x63, 0xC6, 0xD3, 0xF9,
	0xAD, 0x05, 0x0A, 0x14, 0x28, 0x50, 0xA0, 0x1F, 0x3E,
	0x7C, 0xF8, 0xAF, 0x00,
}

// gfLogTable[x] = i such that alpha^i = x, for x in [1,255]; gfLogTable[0]
// holds the source's sentinel 0xFF, which equals noSym: the decoder and
// encoder take the log of zero values and test the result against noSym.
var gfLogTable = [256]byte{
	0xFF, 0x00, 0x01, 0x7A, 0x02, 0xF4, 0x7B, 0xB5, 0x03,
	0x30, 0xF5, 0xE0, 0x7C, 0x54, 0xB6, 0x6F, 0x04, 0xE9,
	0x31, 0x13, 0xF6, 0x6B, 0xE1, 0xCE, 0x7D, 0x38, 0x55,
	0xAA, 0xB7, 0x5B, 0x70, 0xFA, 0x05, 0x75, 0xEA, 0x0A,
	0x32, 0x9C, 0x14, 0xD5, 0xF7, 0xCB, 0x6C, 0xB2, 0xE2,
	0x25, 0xCF, 0xD2, 0x7E, 0x96, 0x39, 0x64, 0x56, 0x8D,
	0xAB, 0x28, 0xB8, 0x49, 0x5C, 0xA4, 0x71, 0x92, 0xFB,
	0xE5, 0x06, 0x60, 0x76, 0x0F, 0xEB, 0xC1, 0x0B, 0x0D,
	0x33, 0x44, 0x9D, 0xC3, 0x15, 0x1F, 0xD6, 0xED, 0xF8,
	0xA8, 0xCC, 0x11, 0x6D, 0xDE, 0xB3, 0x78, 0xE3, 0xA2,
	0x26, 0x62, 0xD0, 0xB0, 0xD3, 0x08, 0x7F, 0xBC, 0x97,
	0xEF, 0x3A, 0x84, 0x65, 0xD8, 0x57, 0x50, 0x8E, 0x21,
	0xAC, 0x1B, 0x29, 0x17, 0xB9, 0x4D, 0x4A, 0xC5, 0x5D,
	0x41, 0xA5, 0x9F, 0x72, 0xC8, 0x93, 0x46, 0xFC, 0x2D,
	0xE6, 0x35, 0x07, 0xAF, 0x61, 0xA1, 0x77, 0xDD, 0x10,
	0xA7, 0xEC, 0x1E, 0xC2, 0x43, 0x0C, 0xC0, 0x0E, 0x5F,
	0x34, 0x2C, 0x45, 0xC7, 0x9E, 0x40, 0xC4, 0x4C, 0x16,
	0x1A, 0x20, 0x4F, 0xD7, 0x83, 0xEE, 0xBB, 0xF9, 0x5A,
	0xA9, 0x37, 0xCD, 0x6A, 0x12, 0xE8, 0x6E, 0x53, 0xDF,
	0x2F, 0xB4, 0xF3, 0x79, 0xFE, 0xE4, 0x91, 0xA3, 0x48,
	0x27, 0x8C, 0x63, 0x95, 0xD1, 0x24, 0xB1, 0xCA, 0xD4,
	0x9B, 0x09, 0x74, 0x80, 0x3D, 0xBD, 0xDA, 0x98, 0x89,
	0xF0, 0x67, 0x3B, 0x87, 0x85, 0x86, 0x66, 0x88, 0xD9,
	0x3C, 0x58, 0x68, 0x51, 0xF1, 0x8F, 0x8A, 0x22, 0x99,
	0xAD, 0xDB, 0x1C, 0xBE, 0x2A, 0x3E, 0x18, 0x81, 0xBA,
	0x82, 0x4E, 0x19, 0x4B, 0x3F, 0xC6, 0x2B, 0x5E, 0xBF,
	0x42, 0x1D, 0xA6, 0xDC, 0xA0, 0xAE, 0x73, 0x9A, 0xC9,
	0x23, 0x94, 0x8B, 0x47, 0x90, 0xFD, 0xF2, 0x2E, 0x52,
	0xE7, 0x69, 0x36, 0x59,
}

// dualToAlpha[w] converts a dual-basis (wire/iota) byte w to its
// alpha-basis representation.
var dualToAlpha = [256]byte{
	0x00, 0x7B, 0x79, 0x02, 0x2B, 0x50, 0x52, 0x29, 0x3F,
	0x44, 0x46, 0x3D, 0x14, 0x6F, 0x6D, 0x16, 0x09, 0x72,
	0x70, 0x0B, 0x22, 0x59, 0x5B, 0x20, 0x36, 0x4D, 0x4F,
	0x34, 0x1D, 0x66, 0x64, 0x1F, 0x87, 0xFC, 0xFE, 0x85,
	0xAC, 0xD7, 0xD5, 0xAE, 0xB8, 0xC3, 0xC1, 0xBA, 0x93,
	0xE8, 0xEA, 0x91, 0x8E, 0xF5, 0xF7, 0x8C, 0xA5, 0xDE,
	0xDC, 0xA7, 0xB1, 0xCA, 0xC8, 0xB3, 0x9A, 0xE1, 0xE3,
	0x98, 0x5F, 0x24, 0x26, 0x5D, 0x74, 0x0F, 0x0D, 0x76,
	0x60, 0x1B, 0x19, 0x62, 0x4B, 0x30, 0x32, 0x49, 0x56,
	0x2D, 0x2F, 0x54, 0x7D, 0x06, 0x04, 0x7F, 0x69, 0x12,
	0x10, 0x6B, 0x42, 0x39, 0x3B, 0x40, 0xD8, 0xA3, 0xA1,
	0xDA, 0xF3, 0x88, 0x8A, 0xF1, 0xE7, 0x9C, 0x9E, 0xE5,
	0xCC, 0xB7, 0xB5, 0xCE, 0xD1, 0xAA, 0xA8, 0xD3, 0xFA,
	0x81, 0x83, 0xF8, 0xEE, 0x95, 0x97, 0xEC, 0xC5, 0xBE,
	0xBC, 0xC7, 0x37, 0x4C, 0x4E, 0x35, 0x1C, 0x67, 0x65,
	0x1E, 0x08, 0x73, 0x71, 0x0A, 0x23, 0x58, 0x5A, 0x21,
	0x3E, 0x45, 0x47, 0x3C, 0x15, 0x6E, 0x6C, 0x17, 0x01,
	0x7A, 0x78, 0x03, 0x2A, 0x51, 0x53, 0x28, 0xB0, 0xCB,
	0xC9, 0xB2, 0x9B, 0xE0, 0xE2, 0x99, 0x8F, 0xF4, 0xF6,
	0x8D, 0xA4, 0xDF, 0xDD, 0xA6, 0xB9, 0xC2, 0xC0, 0xBB,
	0x92, 0xE9, 0xEB, 0x90, 0x86, 0xFD, 0xFF, 0x84, 0xAD,
	0xD6, 0xD4, 0xAF, 0x68, 0x13, 0x11, 0x6A, 0x43, 0x38,
	0x3A, 0x41, 0x57, 0x2C, 0x2E, 0x55, 0x7C, 0x07, 0x05,
	0x7E, 0x61, 0x1A, 0x18, 0x63, 0x4A, 0x31, 0x33, 0x48,
	0x5E, 0x25, 0x27, 0x5C, 0x75, 0x0E, 0x0C, 0x77, 0xEF,
	0x94, 0x96, 0xED, 0xC4, 0xBF, 0xBD, 0xC6, 0xD0, 0xAB,
	0xA9, 0xD2, 0xFB, 0x80, 0x82, 0xF9, 0xE6, 0x9D, 0x9F,
	0xE4, 0xCD, 0xB6, 0xB4, 0xCF, 0xD9, 0xA2, 0xA0, 0xDB,
	0xF2, 0x89, 0x8B, 0xF0,
}

// alphaToDual[a] converts an alpha-basis byte a back to the dual
// (wire/iota) basis.
var alphaToDual = [256]byte{
	0x00, 0x98, 0x03, 0x9B, 0x56, 0xCE, 0x55, 0xCD, 0x88,
	0x10, 0x8B, 0x13, 0xDE, 0x46, 0xDD, 0x45, 0x5A, 0xC2,
	0x59, 0xC1, 0x0C, 0x94, 0x0F, 0x97, 0xD2, 0x4A, 0xD1,
	0x49, 0x84, 0x1C, 0x87, 0x1F, 0x17, 0x8F, 0x14, 0x8C,
	0x41, 0xD9, 0x42, 0xDA, 0x9F, 0x07, 0x9C, 0x04, 0xC9,
	0x51, 0xCA, 0x52, 0x4D, 0xD5, 0x4E, 0xD6, 0x1B, 0x83,
	0x18, 0x80, 0xC5, 0x5D, 0xC6, 0x5E, 0x93, 0x0B, 0x90,
	0x08, 0x5F, 0xC7, 0x5C, 0xC4, 0x09, 0x91, 0x0A, 0x92,
	0xD7, 0x4F, 0xD4, 0x4C, 0x81, 0x19, 0x82, 0x1A, 0x05,
	0x9D, 0x06, 0x9E, 0x53, 0xCB, 0x50, 0xC8, 0x8D, 0x15,
	0x8E, 0x16, 0xDB, 0x43, 0xD8, 0x40, 0x48, 0xD0, 0x4B,
	0xD3, 0x1E, 0x86, 0x1D, 0x85, 0xC0, 0x58, 0xC3, 0x5B,
	0x96, 0x0E, 0x95, 0x0D, 0x12, 0x8A, 0x11, 0x89, 0x44,
	0xDC, 0x47, 0xDF, 0x9A, 0x02, 0x99, 0x01, 0xCC, 0x54,
	0xCF, 0x57, 0xED, 0x75, 0xEE, 0x76, 0xBB, 0x23, 0xB8,
	0x20, 0x65, 0xFD, 0x66, 0xFE, 0x33, 0xAB, 0x30, 0xA8,
	0xB7, 0x2F, 0xB4, 0x2C, 0xE1, 0x79, 0xE2, 0x7A, 0x3F,
	0xA7, 0x3C, 0xA4, 0x69, 0xF1, 0x6A, 0xF2, 0xFA, 0x62,
	0xF9, 0x61, 0xAC, 0x34, 0xAF, 0x37, 0x72, 0xEA, 0x71,
	0xE9, 0x24, 0xBC, 0x27, 0xBF, 0xA0, 0x38, 0xA3, 0x3B,
	0xF6, 0x6E, 0xF5, 0x6D, 0x28, 0xB0, 0x2B, 0xB3, 0x7E,
	0xE6, 0x7D, 0xE5, 0xB2, 0x2A, 0xB1, 0x29, 0xE4, 0x7C,
	0xE7, 0x7F, 0x3A, 0xA2, 0x39, 0xA1, 0x6C, 0xF4, 0x6F,
	0xF7, 0xE8, 0x70, 0xEB, 0x73, 0xBE, 0x26, 0xBD, 0x25,
	0x60, 0xF8, 0x63, 0xFB, 0x36, 0xAE, 0x35, 0xAD, 0xA5,
	0x3D, 0xA6, 0x3E, 0xF3, 0x6B, 0xF0, 0x68, 0x2D, 0xB5,
	0x2E, 0xB6, 0x7B, 0xE3, 0x78, 0xE0, 0xFF, 0x67, 0xFC,
	0x64, 0xA9, 0x31, 0xAA, 0x32, 0x77, 0xEF, 0x74, 0xEC,
	0x21, 0xB9, 0x22, 0xBA,
}

const (
	symbolWidth = 8
	fieldSize   = 255 // nn: 2^symbolWidth - 1
	nroots      = 32
	fcr         = 112
	prim        = 11
	iprim       = 116 // multiplicative inverse of prim mod 255

	dataLen = 223
	codeLen = 255

	// InterleaveDepth is the CCSDS TM interleave depth used to spread
	// each 1275-byte payload+parity block across five independent
	// RS(255,223) codewords.
	InterleaveDepth = 5
)
