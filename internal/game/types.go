package game

// Request and response shapes for the HTTP surface. Views are flattened
// projections of engine state; handlers never expose engine types directly.

type CreateFlightRequest struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Registration string `json:"registration"`
	Day          string `json:"day"`
	Hour         int    `json:"hour"`
	Minute       int    `json:"minute"`
	Passengers   int    `json:"passengers"`
}

type DeleteFlightRequest struct {
	Registration string `json:"registration"`
	Start        string `json:"start"`
}

type BuyPlaneRequest struct {
	Model        string `json:"model"`
	Registration string `json:"registration"`
	City         string `json:"city"`
}

type PlaneView struct {
	Model        string  `json:"model"`
	Registration string  `json:"registration"`
	Location     string  `json:"location"`
	Capacity     int     `json:"capacity"`
	RangeKM      float64 `json:"range_km"`
	SellPrice    float64 `json:"sell_price"`
}

type FlightView struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Registration string  `json:"registration"`
	Passengers   int     `json:"passengers"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	DistanceKM   float64 `json:"distance_km"`
	DurationMin  int     `json:"duration_min"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
}

type HubView struct {
	City       string  `json:"city"`
	Level      int     `json:"level"`
	Tier       string  `json:"tier"`
	Bonus      float64 `json:"bonus"`
	WeeklyCost float64 `json:"weekly_cost"`
}

type StateView struct {
	Player         string       `json:"player"`
	Week           int          `json:"week"`
	Cash           float64      `json:"cash"`
	Planes         []PlaneView  `json:"planes"`
	Flights        []FlightView `json:"flights"`
	Hubs           []HubView    `json:"hubs"`
	PlanIssues     []string     `json:"plan_issues"`
	ExpectedProfit float64      `json:"expected_profit"`
}

type SellReceipt struct {
	Registration string  `json:"registration"`
	Price        float64 `json:"price"`
	Balance      float64 `json:"balance"`
}

type HourlyDemand struct {
	Hour   int `json:"hour"`
	Demand int `json:"demand"`
}

type RouteView struct {
	Origin       string         `json:"origin"`
	Destination  string         `json:"destination"`
	DistanceKM   float64        `json:"distance_km"`
	WeeklyDemand int            `json:"weekly_demand"`
	Hourly       []HourlyDemand `json:"hourly"`
}

type PlanCheckView struct {
	Issues []string `json:"issues"`
	Valid  bool     `json:"valid"`
}
