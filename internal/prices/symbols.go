package prices

// Instrument is one tracked ticker with its display metadata.
type Instrument struct {
	Symbol  string
	Name    string
	Display string
	Unit    string
}

// Commodities lists the futures tickers tracked on every run. The output
// list of a run always has one entry per instrument, failures included.
var Commodities = []Instrument{
	{Symbol: "GC=F", Name: "Gold", Display: "Gold", Unit: "/oz"},
	{Symbol: "SI=F", Name: "Silver", Display: "Silver", Unit: "/oz"},
	{Symbol: "HG=F", Name: "Copper", Display: "Copper", Unit: "/lb"},
	// Futures coverage for uranium is thin; see UraniumSpot.
	{Symbol: "UXA=F", Name: "Uranium", Display: "Uranium", Unit: "/lb"},
	{Symbol: "PL=F", Name: "Platinum", Display: "Platinum", Unit: "/oz"},
	{Symbol: "PA=F", Name: "Palladium", Display: "Palladium", Unit: "/oz"},
	{Symbol: "ALI=F", Name: "Aluminum", Display: "Aluminum", Unit: "/lb"},
	{Symbol: "NI=F", Name: "Nickel", Display: "Nickel", Unit: "/lb"},
}

// ETFs lists the mining ETFs tracked for reference. Failed fetches are
// omitted from the output, unlike commodities.
var ETFs = []Instrument{
	{Symbol: "GDX", Name: "VanEck Gold Miners ETF", Display: "GDX"},
	{Symbol: "GDXJ", Name: "VanEck Junior Gold Miners ETF", Display: "GDXJ"},
	{Symbol: "SIL", Name: "Global X Silver Miners ETF", Display: "SIL"},
	{Symbol: "COPX", Name: "Global X Copper Miners ETF", Display: "COPX"},
	{Symbol: "URA", Name: "Global X Uranium ETF", Display: "URA"},
	{Symbol: "LIT", Name: "Global X Lithium ETF", Display: "LIT"},
}
