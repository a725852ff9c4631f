package models

import "time"

// DailyNews is the aggregated news document written once per run, keyed by
// calendar date and duplicated under "latest". Category and region lists are
// named fields rather than dynamically injected keys so the schema stays
// statically checkable; region fields carry a "region_" prefix to keep them
// apart from commodity keys.
type DailyNews struct {
	Date      string    `json:"date"`
	UpdatedAt time.Time `json:"updatedAt"`

	Today  []Article `json:"today"`
	Junior []Article `json:"junior"`

	Gold             []Article `json:"gold"`
	Silver           []Article `json:"silver"`
	Copper           []Article `json:"copper"`
	CriticalMinerals []Article `json:"critical_minerals"`
	Uranium          []Article `json:"uranium"`
	RareEarth        []Article `json:"rare_earth"`

	RegionUSA          []Article `json:"region_usa"`
	RegionCanada       []Article `json:"region_canada"`
	RegionAustralia    []Article `json:"region_australia"`
	RegionChina        []Article `json:"region_china"`
	RegionLatinAmerica []Article `json:"region_latin_america"`
	RegionAfrica       []Article `json:"region_africa"`
}

// StampWriteTime records the store-assigned write timestamp.
func (d *DailyNews) StampWriteTime(t time.Time) { d.UpdatedAt = t }

// CommodityList returns the list field for a commodity key, or nil for an
// unknown key. Keys match the static commodity keyword table.
func (d *DailyNews) CommodityList(key string) *[]Article {
	switch key {
	case "gold":
		return &d.Gold
	case "silver":
		return &d.Silver
	case "copper":
		return &d.Copper
	case "critical_minerals":
		return &d.CriticalMinerals
	case "uranium":
		return &d.Uranium
	case "rare_earth":
		return &d.RareEarth
	}
	return nil
}

// RegionList returns the list field for a region key, or nil for an unknown key.
func (d *DailyNews) RegionList(key string) *[]Article {
	switch key {
	case "usa":
		return &d.RegionUSA
	case "canada":
		return &d.RegionCanada
	case "australia":
		return &d.RegionAustralia
	case "china":
		return &d.RegionChina
	case "latin_america":
		return &d.RegionLatinAmerica
	case "africa":
		return &d.RegionAfrica
	}
	return nil
}
