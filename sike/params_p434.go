package sike

import "github.com/doubleodd/go-sike/internal/field"

// Public SIDH data for SIKEp434 (round 3 starting curve A = 6).
// Field elements are in Montgomery representation.

var (
	p434PA = field.Fp2{
		A: field.Fp{
			0x05ADF455C5C345BF, 0x91935C5CC767AC2B, 0xAFE4E879951F0257, 0x70E792DC89FA27B1,
			0xF797F526BB48C8CD, 0x2181DB6131AF621F, 0x00000A1C08B1ECC4,
		},
		B: field.Fp{
			0x74840EB87CDA7788, 0x2971AA0ECF9F9D0B, 0xCB5732BDF41715D5, 0x8CD8E51F7AACFFAA,
			0xA7F424730D7E419F, 0xD671EB919A179E8C, 0x0000FFA26C5A924A,
		},
	}

	p434QA = field.Fp2{
		A: field.Fp{
			0xFEC6E64588B7273B, 0xD2A626D74CBBF1C6, 0xF8F58F07A78098C7, 0xE23941F470841B03,
			0x1B63EDA2045538DD, 0x735CFEB0FFD49215, 0x0001C4CB77542876,
		},
		B: field.Fp{
			0xADB0F733C17FFDD6, 0x6AFFBD037DA0A050, 0x680EC43DB144E02F, 0x1E2E5D5FF524E374,
			0xE2DDA115260E2995, 0xA6E4B552E2EDE508, 0x00018ECCDDF4B53E,
		},
	}

	p434RA = field.Fp2{
		A: field.Fp{
			0x01BA4DB518CD6C7D, 0x2CB0251FE3CC0611, 0x259B0C6949A9121B, 0x60E17AC16D2F82AD,
			0x3AA41F1CE175D92D, 0x413FBE6A9B9BC4F3, 0x00022A81D8D55643,
		},
		B: field.Fp{
			0xB8ADBC70FC82E54A, 0xEF9CDDB0D5FADDED, 0x5820C734C80096A0, 0x7799994BAA96E0E4,
			0x044961599E379AF8, 0xDB2B94FBF09F27E2, 0x0000B87FC716C0C6,
		},
	}

	p434PB = field.Fp2{
		A: field.Fp{
			0x6E5497556EDD48A3, 0x2A61B501546F1C05, 0xEB919446D049887D, 0x5864A4A69D450C4F,
			0xB883F276A6490D2B, 0x22CC287022D5F5B9, 0x0001BED4772E551F,
		},
		B: field.Fp{
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		},
	}

	p434QB = field.Fp2{
		A: field.Fp{
			0xFAE2A3F93D8B6B8E, 0x494871F51700FE1C, 0xEF1A94228413C27C, 0x498FF4A4AF60BD62,
			0xB00AD2A708267E8A, 0xF4328294E017837F, 0x000034080181D8AE,
		},
		B: field.Fp{
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		},
	}

	p434RB = field.Fp2{
		A: field.Fp{
			0x283B34FAFEFDC8E4, 0x9208F44977C3E647, 0x7DEAE962816F4E9A, 0x68A2BA8AA262EC9D,
			0x8176F112EA43F45B, 0x02106D022634F504, 0x00007E8A50F02E37,
		},
		B: field.Fp{
			0xB378B7C1DA22CCB1, 0x6D089C99AD1D9230, 0xEBE15711813E2369, 0x2B35A68239D48A53,
			0x445F6FD138407C93, 0xBEF93B29A3F6B54B, 0x000173FA910377D3,
		},
	}

	p434StrategyA = []uint32{
		48, 28, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4,
		2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2,
		1, 1, 4, 2, 1, 1, 2, 1, 1, 13, 7, 4,
		2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1,
		5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1,
		21, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2,
		1, 1, 1, 1, 5, 3, 2, 1, 1, 1, 1, 2,
		1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2,
		1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1,
	}

	p434StrategyB = []uint32{
		66, 33, 17, 9, 5, 3, 2, 1, 1, 1, 1, 2,
		1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 8,
		4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1,
		2, 1, 1, 16, 8, 4, 2, 1, 1, 1, 2, 1,
		1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1,
		1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 32,
		16, 8, 4, 3, 1, 1, 1, 1, 2, 1, 1, 4,
		2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2,
		1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4,
		2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
		1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1,
		1, 2, 1, 1,
	}
)
