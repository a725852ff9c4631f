package news

// CommodityKeys fixes the iteration order of commodity categories; it must
// line up with the named fields of the daily news document.
var CommodityKeys = []string{"gold", "silver", "copper", "critical_minerals", "uranium", "rare_earth"}

// CommodityKeywords maps each commodity category to its match terms.
var CommodityKeywords = map[string][]string{
	"gold":              {"gold", "aurum", "au", "bullion", "precious metal", "gold mining", "gold producer"},
	"silver":            {"silver", "ag", "silver mining", "silver producer"},
	"copper":            {"copper", "cu", "copper mining", "red metal"},
	"critical_minerals": {"lithium", "nickel", "cobalt", "manganese", "graphite", "battery metal", "ev metal"},
	"uranium":           {"uranium", "nuclear", "u3o8", "yellowcake", "nuclear fuel"},
	"rare_earth":        {"rare earth", "ree", "neodymium", "praseodymium", "dysprosium", "lanthanide"},
}

// RegionKeys fixes the iteration order of region categories.
var RegionKeys = []string{"usa", "canada", "australia", "china", "latin_america", "africa"}

// RegionKeywords maps each region category to its match terms.
var RegionKeywords = map[string][]string{
	"usa":           {"united states", "usa", "us", "nevada", "arizona", "alaska", "colorado", "utah", "wyoming", "american"},
	"canada":        {"canada", "canadian", "ontario", "quebec", "british columbia", "bc", "yukon", "nunavut", "tsx", "tsxv"},
	"australia":     {"australia", "australian", "asx", "western australia", "queensland", "nsw"},
	"china":         {"china", "chinese", "beijing", "shanghai", "inner mongolia"},
	"latin_america": {"chile", "peru", "argentina", "brazil", "mexico", "colombia", "latin america", "south america"},
	"africa":        {"africa", "african", "congo", "drc", "south africa", "mali", "ghana", "tanzania", "zambia", "namibia"},
}

// JuniorKeywords selects junior-mining and exploration stories.
var JuniorKeywords = []string{"junior", "explorer", "tsx-v", "tsxv", "cse", "asx", "small cap", "drill result"}
