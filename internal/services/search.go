package services

// FlightQuery is the criteria from the search form.
type FlightQuery struct {
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	Passengers  int
}

// FlightOffer is a single result row on the search results page.
type FlightOffer struct {
	Airline     string `json:"airline"`
	Price       int64  `json:"price"`
	DepartTime  string `json:"departTime"`
	ArrivalTime string `json:"arrivalTime"`
	Duration    string `json:"duration"`
	Stops       string `json:"stops"`
	Logo        string `json:"logo"`
}

// FlightSearcher finds offers for a query. The shipped implementation
// is a fixed-list mock; a real inventory backend slots in behind the
// same interface.
type FlightSearcher interface {
	Search(query FlightQuery) ([]FlightOffer, error)
}

// MockFlightSearcher returns the same offers for every query.
type MockFlightSearcher struct{}

func NewMockFlightSearcher() *MockFlightSearcher {
	return &MockFlightSearcher{}
}

func (MockFlightSearcher) Search(FlightQuery) ([]FlightOffer, error) {
	return []FlightOffer{
		{
			Airline:     "S7 Airlines",
			Price:       12500,
			DepartTime:  "07:00",
			ArrivalTime: "10:00",
			Duration:    "3h 00m",
			Stops:       "Nonstop",
			Logo:        "s7_logo.png",
		},
		{
			Airline:     "Turkish Airlines",
			Price:       14200,
			DepartTime:  "14:30",
			ArrivalTime: "18:45",
			Duration:    "4h 15m",
			Stops:       "Nonstop",
			Logo:        "tk_logo.png",
		},
	}, nil
}
