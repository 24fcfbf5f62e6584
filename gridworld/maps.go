package gridworld

// TeleportGrid is the stock map for the model without terminal states.
//
//	   0 1 2 3 4
//	0  W B W W G
//	1  W W W W W
//	2  W W W W W
//	3  W W R W W
//	4  W W W W Y
func TeleportGrid() Grid {
	return mustParse(
		"WBWWG",
		"WWWWW",
		"WWWWW",
		"WWRWW",
		"WWWWY",
	)
}

// TerminalGrid is the stock map for the model with absorbing tiles.
//
//	   0 1 2 3 4
//	0  W B W W G
//	1  W W W W W
//	2  W W W W T
//	3  W W W W W
//	4  T W R W Y
func TerminalGrid() Grid {
	return mustParse(
		"WBWWG",
		"WWWWW",
		"WWWWT",
		"WWWWW",
		"TWRWY",
	)
}

func mustParse(rows ...string) Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
