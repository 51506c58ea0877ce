package riot

// Platform routing codes (summoner-v4, league-v4) map onto regional routing
// hosts (account-v1, match-v5).
var platformToRegional = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"oc1":  "sea",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"me1":  "europe",
	"kr":   "asia",
	"jp1":  "asia",
	"tw2":  "sea",
	"vn2":  "sea",
	"sg2":  "sea",
}

// RegionalFor returns the regional routing value for a platform code,
// defaulting to americas for unknown platforms.
func RegionalFor(platform string) string {
	if regional, ok := platformToRegional[platform]; ok {
		return regional
	}
	return "americas"
}

// ValidPlatform reports whether the given platform routing code is known.
func ValidPlatform(platform string) bool {
	_, ok := platformToRegional[platform]
	return ok
}
