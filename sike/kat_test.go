package sike

// Known-answer data. SIDH keys are the published SIDH test vectors for
// these parameter sets; KEM vectors use SHAKE256 as in the NIST
// submission, for a fixed message.

type katData struct {
	params *Params

	prA, pkA string
	prB, pkB string
	shared   string

	prKEM, pkKEM string
	msg, ct      string
	ss, ssReject string
}

var kats = []katData{
	{
		params: SIKEp434,
		prA: "3a727e04ea9b7e2a766a6f846489e7e7b915263bceed308bb10fc9",
		pkA: "9e668d1e6750ed4b91ee052c32839ca9dd2e56d52bc24decc950aaad24ceed3f" +
			"9049c77fe80f0b9b01e7f8dad7833eec2286544d6380009c379cdd3e7517cef5" +
			"e20eb01f8231d52fc30dc61d2f63fb357f85dc6396e8a95db9740bd3a972c8db" +
			"7901b31f074cd3e45345ca78f900817130e688a29a7cf0073b5c00ff2c65fbe7" +
			"76918ef9bd8e75b29ef7fab791969b60b0c5b37a8992edef95fa7bac40a95daf" +
			"e02e237301fee9a7a43fd0b73477e8035dd12b73fafef18d39904dde3653a754" +
			"f36be1888f6607c6a7951349a414352cf31a29f2c40302db406c48018c905eb9" +
			"dc46afbf42a9187a9bb9e51b587622a2862dc7d5cc598bf38ed6320fb51d8697" +
			"ad3d7a72abcc32a393f0133da8df5e253d9e00b760b2df342fce974dcfe946cf" +
			"e4727783531882800f9e5dd594d6d5a6275eefef9713ed838f4a06bb34d7b8d4" +
			"6e0b385aaea1c7963601",
		prB: "e37bfe55b43b32448f375903d8d226ec94adbfea1d2b3536eb987001",
		pkB: "c9f73e4497aaa3fdf9eb688135866a8a83934ba10e273b8cc3808cf0c1f5fab3" +
			"e9bb295885881b73debc875670c0f51c4bb40df5fede01b8af32d1bf10508b8c" +
			"17b2734eb93b2b7f5d84a4a0f2f816e9e2c32ac253c0b6025b124d05a87a9e2a" +
			"8567930f44baa14219b941b6b400b4aed1d796da12a5a9f0b8f3f5ee9dd43f64" +
			"cb24a3b1719df278adf56b5f3395187829da2319deabf6bbd6eda244de2b62cc" +
			"5ac250c1009dd1cd4712b0b37406612ad002b5e51a62b51ac9c0374d143abbbd" +
			"58275fafc4a5e959c54838c2d6d9fb43b7b2609061267b6a2e6c6d01d295c422" +
			"3e0d3d7a4cdcfb28a7818a737935279751a6dd8290fd498d1f6ad5f4fff6bdfa" +
			"536713f509dce8047252f1e7d0dd9fcc414c0070b5dcce3665a21a032d7fbe74" +
			"9181032183afad240b7e671e87fbbec3a8ca4c11aa7a9a23ac69ae2acf54b664" +
			"decd27753d63508f1b02",
		shared: "e7c38f69bceeee72f110aecef842535ab7b7299e449f0863d33eab633c87e0b1" +
			"db028ff8f95638dc22998e6696c57188f6147b2002780193f24eebd16fd38eb3" +
			"7f8d17689a36d4566820573c05a369b7c0ada702b6d2c5ddafa76f25e4fcfdcf" +
			"6d2ddff3144df107e2dc0cad7a00",
		prKEM: "4b622de1350119c45a9f2e2ef3dc5df56a27fcdfcddaf58cd69b903752d68c20" +
			"0934e160b234e49ede2476011bd0a2e81307b6f96461317ddf535acc0e59c742" +
			"627bae60d27605e10faf722d22a73e184cb572a12e79dcd58c6b54fb01442114" +
			"cbe9010b6caec25d04c16c5e42540c1524c545b8c67614ed4183c9fa5bd0be45" +
			"a7f89fbc770ee8e7e5e391c7ee6f35f74c29e6d9e35b1663da01e48e9deb2347" +
			"512d366fde505161677055e3ef23054d276e817e2c57025da1c10d2461f68617" +
			"f2d11256eee4e2d7dbdf6c8e34f3a0fd00c625428cb41857002159dab94267ab" +
			"e42d630c6aaa91af837c7a6740754ea6634c45454c51b0bb4d44c3cccce4b32c" +
			"00901cf69c008d013348379b2f9837f428a01b6173584691f2a6f3a3c4cf487d" +
			"20d261b36c8cdb1bc158e2a5162a9da4f7a97aa0879b9897e2b6891b672201f9" +
			"aefbf799c27b2587120ac586a511360926fb7da8ebf5cb5272f396ae06608422" +
			"be9792e2ce9bef21bf55b7eff8dc7ec8c99910d3f800",
		pkKEM: "1bd0a2e81307b6f96461317ddf535acc0e59c742627bae60d27605e10faf722d" +
			"22a73e184cb572a12e79dcd58c6b54fb01442114cbe9010b6caec25d04c16c5e" +
			"42540c1524c545b8c67614ed4183c9fa5bd0be45a7f89fbc770ee8e7e5e391c7" +
			"ee6f35f74c29e6d9e35b1663da01e48e9deb2347512d366fde505161677055e3" +
			"ef23054d276e817e2c57025da1c10d2461f68617f2d11256eee4e2d7dbdf6c8e" +
			"34f3a0fd00c625428cb41857002159dab94267abe42d630c6aaa91af837c7a67" +
			"40754ea6634c45454c51b0bb4d44c3cccce4b32c00901cf69c008d013348379b" +
			"2f9837f428a01b6173584691f2a6f3a3c4cf487d20d261b36c8cdb1bc158e2a5" +
			"162a9da4f7a97aa0879b9897e2b6891b672201f9aefbf799c27b2587120ac586" +
			"a511360926fb7da8ebf5cb5272f396ae06608422be9792e2ce9bef21bf55b7ef" +
			"f8dc7ec8c99910d3f800",
		msg: "a0a1a2a3a4a5a6a7a8a9aaabacadaeaf",
		ct: "6bb221c36f987cdb3371d4fe8001ca142a15048f4865cb35176716694d0cee04" +
			"1345a4cfd6f71bc1c4e8b4ea9ea4e78dd10234e622cf00b1ad4f3df68e63f0d9" +
			"6d25329d436abdc5349bf6a3f9d64416616c9a9ea1f5a64f7cd583cd2c5d8143" +
			"72bfd966728398c1fb3b33bef7003a48b0ff8a7b434e4663496157a87b0f71f4" +
			"d7ce2f1dc9d3700580c0a6c5e2bdb4d2f08df5147c4c8ca3855f67341b01ce8e" +
			"fdde392d0112bf8a68c4a0322899c75a9cbdf2eeed93cc7c04be22a139ddf461" +
			"992ecc0ce00de7ccbfaf26d44aa1181d342d193d449ac8df5b4191005a761a60" +
			"92cbe9dd8c3b064b9c9d18cc040867c9cad3892d748cc3b2e46a993f4488cda2" +
			"0c9bd21101951728c972df499eb5dfc275290072dcb0fc98a5e3fa0d53e709bb" +
			"01929aaf3d3d30b8be7d86465b30c74e44e551003b5ac1f78d51a7d2b62fe22a" +
			"33bd90c0b7b78f8b2502bd8e9235c116654e0ac66a0ce253ccfb",
		ss: "4ff59ef2cd3cd8cb815b8e9f065bdfa6",
		ssReject: "1f005acbc9cab811f6b927c9414ca9a7",
	},
	{
		params: SIKEp503,
		prA: "b0ad510708f4abcf3e0d97dc2f2ff112d9d2aae49d97ffd1e4267f21c6e71c03",
		pkA: "a6badba04518a924b20046b59ac197dcdf0ea48014c9e228c4994cca432f360e" +
			"2d527afb06ca7c96ee5cee19bad53bf9218a3961cad7ec092bd8d9ebb22a3d51" +
			"33008895a3f1f6a023f91e0fe06a00a622fd6335dac107f8ec4283dc2632f080" +
			"4e64b390dad8a2572f1947c67fdf4f8787d140ce2c6b24e752da9a195040edfa" +
			"c27333fae97dbdeb41da9eeb2db067ae7da8c58c0ef57aefc18a3d6bd0576ff2" +
			"f1cfcaec50c958331bf631f3d2e769790c7b6df282b74bbc02998ad10f291d47" +
			"c5a762ff84253d3b3278bdf20c8d4d4aa317be401b884e26a1f02c7308aadb68" +
			"20ebdb0d339f5a63346f3b40caced72f544daf51566c6e807d0e6e1e38514342" +
			"432661dc9564da07548570e256688cd9e8060d8775f95d501886d958588caca0" +
			"9f2d2ae1913f996e76af63e31a179a7a7d2a46eda03b2bccf9020a5aa15f9a28" +
			"9340b33f3ae7f97360d45f8ae1b9dd48779a57e8c45b50a02c00349cd1c58c55" +
			"1d68bc2a75eafed944e8c599c288037181e997471352e24c952b",
		prB: "a885a8b889520a6dbad9fb33365e5b77fded629440a16a533f259a510f63a822",
		pkB: "244af1f367c2c33912750a98497cc8214bc195bd52bd76513d32ace4b75e31f0" +
			"281755c265f5565c74e3c04182b9c244071859c8588cc7f09547ceff8f7705d2" +
			"60ce87d6bff914ee7dbe4b9af051ca420062eebdf043af58184495026949b068" +
			"98a47046bfae8df3b447746184af550553bb5d266d6e1967aca33cac5f399f90" +
			"360d70867f2c71ef6f94ff915c7da8bc9549fb7656e691daefc93cf56876e482" +
			"ca2f8be2d6cdcc374c31ad8833cabe997cc92305f38497bec4dfd1821b004fec" +
			"e16448f9a24f965efe409a8939eea671633d9ffcf961283e59b8834bdf7eddb3" +
			"05d6275b61da6692325432a0baa074fc7c1f51e76208ab193a57520d40a76334" +
			"ee5712bdc3e1efb6103966f2329edff63082c4dfcdf6be1c5a048630b81871b8" +
			"83b735748a8fd4e2d9530c272163ab18105b10015ca7456202fe1c9b92ceb167" +
			"5eae1132e582c88e47ed87b363d45f05bea714d5e9933d7af4071cbb5d49008f" +
			"3e3dad7dff935ee509d5de561842b678cceb133d62e270e9ac3e",
		shared: "339bd8cda31373b5f1f7331b2a1efea6c1c161892a812c1d974c7708b1cc8342" +
			"3dff145bbfc0cba8654ef644f7cf9d42322d9c53edd855c08e48c161c24d348c" +
			"b040ae88ddcdae96f6267a81fadf2efa85f13292641e2e0f443f0d9efebd146d" +
			"56d6629ac083fa59ff7247da7b240f3864e039104f3aed1d07a37f3a173a",
		prKEM: "80fc55da74defe3113487b80841e678af9ed4e0599cf07353a4ab93971c090a0" +
			"a9402c9dc98ac6dc8f5fde5e970ae22ba48a400efc72850c68460c22466e9586" +
			"4cfea7b5d9077e768ff4f9ed69ae56d7cf3f236fb06b31020eee34b5b572cea5" +
			"ddf20b531966aa8f5f3acc0c6d1ce04eedc30fd1f1233e2d96fe60c6d638fc64" +
			"6eaf2e2246f1aec96859ce874a1f029a78f9c978cd6b22114a0d5ab20101191f" +
			"d923e80c76908b1498b9d0200065cca09159a0c65a1e346cc6470314fe78388d" +
			"aa89dd08ec67dbe63c1f606674acc49ebf9fdbb2b898b3ce733113aa6f942db4" +
			"01a76d629ce6ee6c0fdaf4cfb1a5e366db66c17b3923a1b7fb26a3ff25b90188" +
			"69c674d3def4af269901d686fe4647f9d2cdb2ceb3afa305b27c885f037ed167" +
			"f595066c21e7dd467d8332b934a5102da5f13332dfa356b82156a0bb2e7e91c6" +
			"b85b7d1e381bc9e3f0fc4db9c36016d9ecec415d7e977e9ac29910d934ba2fe4" +
			"ee49d3b387607a4e1afabf495fb86a77194626589e802ff5167c7a25c542c1ea" +
			"d25a6e0aa931d94f2f9afd3dbdf222e651f729a90e77b20974905f1e65e041ce" +
			"6c95aab3e1f22d332e0a5de9c5db3d9c7a38",
		pkKEM: "68460c22466e95864cfea7b5d9077e768ff4f9ed69ae56d7cf3f236fb06b3102" +
			"0eee34b5b572cea5ddf20b531966aa8f5f3acc0c6d1ce04eedc30fd1f1233e2d" +
			"96fe60c6d638fc646eaf2e2246f1aec96859ce874a1f029a78f9c978cd6b2211" +
			"4a0d5ab20101191fd923e80c76908b1498b9d0200065cca09159a0c65a1e346c" +
			"c6470314fe78388daa89dd08ec67dbe63c1f606674acc49ebf9fdbb2b898b3ce" +
			"733113aa6f942db401a76d629ce6ee6c0fdaf4cfb1a5e366db66c17b3923a1b7" +
			"fb26a3ff25b9018869c674d3def4af269901d686fe4647f9d2cdb2ceb3afa305" +
			"b27c885f037ed167f595066c21e7dd467d8332b934a5102da5f13332dfa356b8" +
			"2156a0bb2e7e91c6b85b7d1e381bc9e3f0fc4db9c36016d9ecec415d7e977e9a" +
			"c29910d934ba2fe4ee49d3b387607a4e1afabf495fb86a77194626589e802ff5" +
			"167c7a25c542c1ead25a6e0aa931d94f2f9afd3dbdf222e651f729a90e77b209" +
			"74905f1e65e041ce6c95aab3e1f22d332e0a5de9c5db3d9c7a38",
		msg: "a0a1a2a3a4a5a6a7a8a9aaabacadaeafb0b1b2b3b4b5b6b7",
		ct: "8cb51ce945b920a3a91a447b1c74b935ddcb9bfdc807c8a25f0828e6362e2d0d" +
			"4349dd9b00ec822916947a0af675b4e4ffa93a7c962d7dda5759cf9c1fb914de" +
			"073893986dd5a0d973d228ce42bed22493971390deb4cd4a26b012c77ca7c443" +
			"6456bcc24d58c4164ee381ea2d9f2dfb6ee9998f1465954906ed60c9ee15e3f2" +
			"6acbffcd4ea580db491d80089ac0afdf8b2c0014ca3359464bc240ede681fc9f" +
			"b176a21a8027f1fea0757ccbeeaed4e29022b906bd2a1f53b6a98ee8312b5972" +
			"a00009b2818c8ef3e831fc8b7e39e65c90760bc78c5a186228d9b77db9f60bf4" +
			"80f8e8b3fb80d8e7a07aaa3cf6e6de420c77a7eb6f1088bbde34742353bfefe2" +
			"611a40a81b3250d44920064e36dbf0f4cbff94cf342d578a35908d061d5678c0" +
			"e5d9c7fc9d52599f75e8ae1b1f4db9cc7b5f9b8b9b56acd15218390231324bc5" +
			"e356a7b1bb16e0f8dff89cad8559cd48de71486b06a1eb89bb6fa783883f527a" +
			"61e8cb3e6ab64a37634f9f732ad632c8343bcedb9abe146df607145c18b7542e" +
			"84c62ee05125169f808f291e6588a16930ae",
		ss: "f3cd71dac7f476fe8358596bff54502a70d08ce30b36d041",
		ssReject: "2564c04d1d667ead90673d2f3d822e3868c27c069e0c385e",
	},
}
