package storage

func testRows() []Row {
	return []Row{
		{
			"HOTELN":       "Sunrise Resort",
			"CATEGORY":     "Deluxe Room",
			"REGION":       "Bali",
			"START_PERIOD": "01.08.2025",
			"END_PERIOD":   "31.08.2025",
			"ROOM_IDR":     "500 000",
			"REM1":         "Breakfast included",
		},
		{
			"HOTELN":       "Sunrise Resort",
			"CATEGORY":     "Suite",
			"REGION":       "Bali",
			"START_PERIOD": "01.08.2025",
			"END_PERIOD":   "31.08.2025",
			"ROOM_IDR":     "900000",
		},
	}
}

var testColumns = []string{"HOTELN", "CATEGORY", "REGION", "START_PERIOD", "END_PERIOD", "ROOM_IDR", "REM1"}
