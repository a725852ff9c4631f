package feed

// Source is one configured RSS/Atom endpoint with a display name.
type Source struct {
	URL  string
	Name string
}

// DefaultSources lists the mining news feeds polled on every run.
var DefaultSources = []Source{
	// Major mining news
	{URL: "https://www.mining.com/feed/", Name: "Mining.com"},
	{URL: "https://www.kitco.com/news/rss/mining.rss", Name: "Kitco Mining"},
	{URL: "https://www.reuters.com/news/archive/miningNews?view=rss", Name: "Reuters Mining"},
	{URL: "https://www.bloomberg.com/feeds/bpol/sitemap_news.xml", Name: "Bloomberg"},

	// Junior mining
	{URL: "https://ceo.ca/api/sedi/rss", Name: "CEO.CA"},
	{URL: "https://www.juniorminingnetwork.com/feed", Name: "Junior Mining Network"},

	// Commodity specific
	{URL: "https://www.gold.org/feed/rss.xml", Name: "World Gold Council"},
	{URL: "https://www.silverinstitute.org/feed/", Name: "Silver Institute"},
}
