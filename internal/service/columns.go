package service

// Columns names the rate table headers the service reads.
type Columns struct {
	Hotel              string `json:"hotel"`
	Category           string `json:"category"`
	Region             string `json:"region"`
	StartPeriod        string `json:"startPeriod"`
	EndPeriod          string `json:"endPeriod"`
	RoomPrice          string `json:"roomPrice"`
	FullBoardAdult     string `json:"fullBoardAdult"`
	FullBoardChild     string `json:"fullBoardChild"`
	HalfBoardAdult     string `json:"halfBoardAdult"`
	HalfBoardChild     string `json:"halfBoardChild"`
	AllInclusiveAdult  string `json:"allInclusiveAdult"`
	AllInclusiveChild  string `json:"allInclusiveChild"`
	ExtraBedAdult      string `json:"extraBedAdult"`
	ExtraBedChild      string `json:"extraBedChild"`
	NYDinnerAdult      string `json:"nyDinnerAdult"`
	NYDinnerChild      string `json:"nyDinnerChild"`
	NYDinnerRemark     string `json:"nyDinnerRemark"`
	ChildBreakfast     string `json:"childBreakfast"`
	OfferExpiry        string `json:"offerExpiry"`
	OfferRemark        string `json:"offerRemark"`
	EarlyBird          string `json:"earlyBird"`
	GeneralRemark      string `json:"generalRemark"`
	ChildPolicyRemark  string `json:"childPolicyRemark"`
	CancellationRemark string `json:"cancellationRemark"`
}

// DefaultColumns returns the header names of the RATEEXPIDR sheet.
func DefaultColumns() Columns {
	return Columns{
		Hotel:              "HOTELN",
		Category:           "CATEGORY",
		Region:             "REGION",
		StartPeriod:        "START_PERIOD",
		EndPeriod:          "END_PERIOD",
		RoomPrice:          "ROOM_IDR",
		FullBoardAdult:     "FB_ADT",
		FullBoardChild:     "FB_CHLD",
		HalfBoardAdult:     "HB_ADT",
		HalfBoardChild:     "HB_CHLD",
		AllInclusiveAdult:  "ALL_INCL_ADT",
		AllInclusiveChild:  "ALL_INCL_CHLD",
		ExtraBedAdult:      "EBED_ADT",
		ExtraBedChild:      "EBED_CHLD",
		NYDinnerAdult:      "NY_DINNER_ADT",
		NYDinnerChild:      "NY_DINNER_CHLD",
		NYDinnerRemark:     "REMNYD",
		ChildBreakfast:     "BFST_CHLD",
		OfferExpiry:        "SPOEXP",
		OfferRemark:        "REMSPO",
		EarlyBird:          "EBIRD",
		GeneralRemark:      "REM1",
		ChildPolicyRemark:  "REM2",
		CancellationRemark: "CXL",
	}
}

// Keys lists every header in sheet order.
func (c Columns) Keys() []string {
	return []string{
		c.Hotel, c.Category, c.Region, c.StartPeriod, c.EndPeriod, c.RoomPrice,
		c.FullBoardAdult, c.FullBoardChild, c.HalfBoardAdult, c.HalfBoardChild,
		c.AllInclusiveAdult, c.AllInclusiveChild, c.ExtraBedAdult, c.ExtraBedChild,
		c.NYDinnerAdult, c.NYDinnerChild, c.NYDinnerRemark, c.ChildBreakfast,
		c.OfferExpiry, c.OfferRemark, c.EarlyBird,
		c.GeneralRemark, c.ChildPolicyRemark, c.CancellationRemark,
	}
}
