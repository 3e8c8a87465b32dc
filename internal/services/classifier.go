package services

import "strings"

// FallbackCategory is assigned when no category keyword matches.
const FallbackCategory = "Other"

// IncomeCategory is force-assigned to positive-amount CSV rows.
const IncomeCategory = "Income"

// keywordEntry pairs a label with the keywords that map to it. Tables are
// ordered slices, not maps: the first entry with any matching keyword wins,
// so declaration order is the tie-break and must stay stable.
type keywordEntry struct {
	Label    string
	Keywords []string
}

// serviceTable maps transaction descriptions to known subscription vendors.
var serviceTable = []keywordEntry{
	{"Netflix", []string{"netflix"}},
	{"Spotify", []string{"spotify"}},
	{"Hulu", []string{"hulu"}},
	{"Disney+", []string{"disney"}},
	{"HBO Max", []string{"hbo"}},
	{"Paramount+", []string{"paramount"}},
	{"Peacock", []string{"peacock"}},
	{"Amazon Prime", []string{"amazon prime", "amzn prime", "prime video"}},
	{"YouTube Premium", []string{"youtube"}},
	{"Apple", []string{"apple.com", "apple one", "itunes"}},
	{"Audible", []string{"audible"}},
	{"Adobe", []string{"adobe"}},
	{"Microsoft 365", []string{"microsoft"}},
	{"Dropbox", []string{"dropbox"}},
	{"iCloud", []string{"icloud"}},
	{"Google One", []string{"google one", "google storage"}},
	{"ChatGPT", []string{"openai", "chatgpt"}},
	{"NYTimes", []string{"nytimes", "ny times"}},
	{"DoorDash", []string{"doordash", "dashpass"}},
	{"Uber Eats", []string{"uber eats"}},
	{"Instacart", []string{"instacart"}},
	{"Planet Fitness", []string{"planet fit"}},
	{"Peloton", []string{"peloton"}},
	{"Patreon", []string{"patreon"}},
	{"PlayStation", []string{"playstation"}},
	{"Xbox", []string{"xbox"}},
	{"Nintendo", []string{"nintendo"}},
}

// categoryTable maps transaction descriptions to spending categories.
var categoryTable = []keywordEntry{
	{"Streaming", []string{"netflix", "hulu", "disney", "hbo", "paramount", "peacock", "prime video", "youtube", "twitch"}},
	{"Music", []string{"spotify", "apple music", "pandora", "tidal", "soundcloud"}},
	{"Software", []string{"adobe", "microsoft", "dropbox", "icloud", "google one", "openai", "chatgpt", "github", "1password", "notion"}},
	{"Gaming", []string{"playstation", "xbox", "nintendo", "steam"}},
	{"Food Delivery", []string{"doordash", "uber eats", "grubhub", "instacart", "hellofresh", "blue apron"}},
	{"Fitness", []string{"planet fit", "peloton", "gym", "fitness", "equinox", "crunch"}},
	{"News", []string{"nytimes", "ny times", "wsj", "washington post", "economist", "substack"}},
	{"Books", []string{"audible", "kindle", "scribd"}},
	{"Utilities", []string{"verizon", "t-mobile", "comcast", "xfinity", "spectrum"}},
	{IncomeCategory, []string{"payroll", "paycheck", "direct dep", "salary"}},
}

// matchKeywords returns the label of the first table entry with any keyword
// appearing as a substring of the case-folded description. Matching is plain
// substring search with no stemming or punctuation stripping, so output is a
// pure function of the description and the table.
func matchKeywords(description string, table []keywordEntry) (string, bool) {
	lower := strings.ToLower(description)
	for _, entry := range table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Label, true
			}
		}
	}
	return "", false
}

// DetectService returns the known subscription vendor for a description,
// or false when no keyword matches.
func DetectService(description string) (string, bool) {
	return matchKeywords(description, serviceTable)
}

// DetectCategory returns the spending category for a description, falling
// back to FallbackCategory when nothing matches.
func DetectCategory(description string) string {
	if category, ok := matchKeywords(description, categoryTable); ok {
		return category
	}
	return FallbackCategory
}
