package activity

// Platform identifies a supported coding platform.
type Platform string

const (
	GitHub     Platform = "github"
	LeetCode   Platform = "leetcode"
	Codeforces Platform = "codeforces"
)

// Snapshot is the normalized per-platform activity record.
// Exactly one of Metrics (populated) or Error is authoritative:
// a failed fetch yields an empty metrics map and a reason, never a mix.
type Snapshot struct {
	Platform Platform       `json:"platform"`
	Handle   string         `json:"handle"`
	Metrics  map[string]any `json:"metrics"`
	Error    string         `json:"error,omitempty"`
}

// Failed reports whether the snapshot records a fetch failure.
func (s Snapshot) Failed() bool { return s.Error != "" }

// Aggregated maps each requested platform to its snapshot.
// Platforms the caller did not request have no entry.
type Aggregated map[Platform]Snapshot

// Handles carries the usernames requested for one analysis; empty fields are skipped.
type Handles struct {
	GitHub     string
	LeetCode   string
	Codeforces string
}

// Empty reports whether no platform was requested at all.
func (h Handles) Empty() bool {
	return h.GitHub == "" && h.LeetCode == "" && h.Codeforces == ""
}

// GitHubStats is the raw payload a GitHub fetcher produces
// (user info, recent repositories and push events combined).
type GitHubStats struct {
	PublicRepos   int
	TotalStars    int
	TopLanguages  map[string]int
	RecentCommits int
}

// CodeforcesStats is the raw payload a Codeforces fetcher produces.
type CodeforcesStats struct {
	CurrentRating        int
	Rank                 string
	ProblemsSolved       int
	ContestsParticipated int
}
