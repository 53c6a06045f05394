package sike

import "github.com/doubleodd/go-sike/internal/field"

// Public SIDH data for SIKEp503 (round 1 public data, starting curve
// A = 0). Field elements are in Montgomery representation.

var (
	p503PA = field.Fp2{
		A: field.Fp{
			0xE7EF4AA786D855AF, 0xED5758F03EB34D3B, 0x09AE172535A86AA9, 0x237B9CC07D622723,
			0xE3A284CBA4E7932D, 0x27481D9176C5E63F, 0x6A323FF55C6E71BF, 0x002ECC31A6FB8773,
		},
		B: field.Fp{
			0x64D02E4E90A620B8, 0xDAB8128537D4B9F1, 0x4BADF77B8A228F98, 0x0F5DBDF9D1FB7D1B,
			0xBEC4DB288E1A0DCC, 0xE76A8665E80675DB, 0x6D6F252E12929463, 0x003188BD1463FACC,
		},
	}

	p503QA = field.Fp2{
		A: field.Fp{
			0xB79D41025DE85D56, 0x0B867DA9DF169686, 0x740E5368021C827D, 0x20615D72157BF25C,
			0xFF1590013C9B9F5B, 0xC884DCADE8C16CEA, 0xEBD05E53BF724E01, 0x0032FEF8FDA5748C,
		},
		B: field.Fp{
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		},
	}

	p503RA = field.Fp2{
		A: field.Fp{
			0x12E2E849AA0A8006, 0x41CF47008635A1E8, 0x9CD720A70798AED7, 0x42A820B42FCF04CF,
			0x7BF9BAD32AAE88B1, 0xF619127A54090BBE, 0x1CB10D8F56408EAA, 0x001D6B54C3C0EDEB,
		},
		B: field.Fp{
			0x34DB54931CBAAC36, 0x420A18CB8DD5F0C4, 0x32008C1A48C0F44D, 0x3B3BA772B1CFD44D,
			0xA74B058FDAF13515, 0x095FC9CA7EEC17B4, 0x448E829D28F120F8, 0x00261EC3ED16A489,
		},
	}

	p503PB = field.Fp2{
		A: field.Fp{
			0x7EDE37F4FA0BC727, 0xF7F8EC5C8598941C, 0xD15519B516B5F5C8, 0xF6D5AC9B87A36282,
			0x7B19F105B30E952E, 0x13BD8B2025B4EBEE, 0x7B96D27F4EC579A2, 0x00140850CAB7E5DE,
		},
		B: field.Fp{
			0x7764909DAE7B7B2D, 0x578ABB16284911AB, 0x76E2BFD146A6BF4D, 0x4824044B23AA02F0,
			0x1105048912A321F3, 0xB8A2E482CF0F10C1, 0x42FF7D0BE2152085, 0x0018E599C5223352,
		},
	}

	p503QB = field.Fp2{
		A: field.Fp{
			0x4256C520FB388820, 0x744FD7C3BAAF0A13, 0x4B6A2DDDB12CBCB8, 0xE46826E27F427DF8,
			0xFE4A663CD505A61B, 0xD6B3A1BAF025C695, 0x7C3BB62B8FCC00BD, 0x003AFDDE4A35746C,
		},
		B: field.Fp{
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		},
	}

	p503RB = field.Fp2{
		A: field.Fp{
			0x75601CD1E6C0DFCB, 0x1A9007239B58F93E, 0xC1F1BE80C62107AC, 0x7F513B898F29FF08,
			0xEA0BEDFF43E1F7B2, 0x2C6D94018CBAE6D0, 0x3A430D31BCD84672, 0x000D26892ECCFE83,
		},
		B: field.Fp{
			0x1119D62AEA3007A1, 0xE3702AA4E04BAE1B, 0x9AB96F7D59F990E7, 0xF58440E8B43319C0,
			0xAF8134BEE1489775, 0xE7F7774E905192AA, 0xF54AE09308E98039, 0x001EF7A041A86112,
		},
	}

	p503StrategyA = []uint32{
		61, 32, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4,
		2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2,
		1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4,
		2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
		1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1,
		1, 2, 1, 1, 29, 16, 8, 4, 2, 1, 1, 2,
		1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2,
		1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
		13, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1,
		1, 2, 1, 1, 5, 4, 2, 1, 1, 2, 1, 1,
		2, 1, 1, 1,
	}

	p503StrategyB = []uint32{
		71, 38, 21, 13, 8, 4, 2, 1, 1, 2, 1, 1,
		4, 2, 1, 1, 2, 1, 1, 5, 4, 2, 1, 1,
		2, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1,
		1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1,
		2, 1, 1, 17, 9, 5, 3, 2, 1, 1, 1, 1,
		2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1,
		8, 4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1,
		1, 2, 1, 1, 33, 17, 9, 5, 3, 2, 1, 1,
		1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2,
		1, 1, 8, 4, 2, 1, 1, 1, 2, 1, 1, 4,
		2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1,
		1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8,
		4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
		1, 1,
	}
)
