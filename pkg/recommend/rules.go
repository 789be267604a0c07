package recommend

import "github.com/artem13815/devadvisor/pkg/nlp"

// rule maps one signal/goal/domain combination to a candidate recommendation.
// weight is the relevance score used for ranking; goal and domain arrive
// already normalized (lower case, word-separated).
type rule struct {
	name   string
	weight int
	match  func(sig signals, goal, domain string) bool
	rec    Recommendation
}

// ruleTable is the deterministic core of the synthesizer. Order matters only
// for equal scores: earlier rules win the stable sort.
var ruleTable = []rule{
	{
		name:   "domain-web-project",
		weight: 6,
		match: func(_ signals, _, domain string) bool {
			return nlp.ContainsAny(domain, "web", "frontend", "full stack", "fullstack")
		},
		rec: Recommendation{
			Type:         TypeProject,
			Title:        "Build a Full-Stack Web Application",
			Description:  "Create a complete web application with a browser frontend, an API backend and persistent storage, and deploy it somewhere public.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "2-4 weeks",
			Resources:    []string{"https://developer.mozilla.org", "https://react.dev"},
		},
	},
	{
		name:   "domain-algorithms-course",
		weight: 6,
		match: func(_ signals, goal, domain string) bool {
			return nlp.ContainsAny(domain, "algorithms", "algorithm", "data structures", "competitive programming") ||
				nlp.ContainsAny(goal, "algorithms", "data structures")
		},
		rec: Recommendation{
			Type:         TypeLearning,
			Title:        "Master Data Structures and Algorithms",
			Description:  "Work through a structured data structures and algorithms curriculum and solve the companion exercises for every topic.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "3-6 months",
			Resources:    []string{"https://leetcode.com", "https://codeforces.com"},
		},
	},
	{
		name:   "domain-ml-course",
		weight: 6,
		match: func(_ signals, _, domain string) bool {
			return nlp.ContainsAny(domain, "machine learning", "ml", "data science", "ai")
		},
		rec: Recommendation{
			Type:         TypeLearning,
			Title:        "Work Through an Applied Machine Learning Course",
			Description:  "Take a hands-on machine learning course and reproduce every notebook on a dataset of your own choosing.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "2-3 months",
			Resources:    []string{"https://course.fast.ai", "https://www.kaggle.com/learn"},
		},
	},
	{
		name:   "domain-backend-service",
		weight: 6,
		match: func(_ signals, _, domain string) bool {
			return nlp.ContainsAny(domain, "backend", "systems", "distributed systems", "infrastructure")
		},
		rec: Recommendation{
			Type:         TypeProject,
			Title:        "Design and Build a Small Distributed Service",
			Description:  "Build a service with at least two cooperating processes, a queue or RPC boundary between them, and a load test that proves the design.",
			Difficulty:   DifficultyAdvanced,
			TimeEstimate: "3-5 weeks",
			Resources:    []string{"https://12factor.net", "https://grpc.io/docs"},
		},
	},
	{
		name:   "goal-interview-drills",
		weight: 5,
		match: func(_ signals, goal, _ string) bool {
			return nlp.ContainsAny(goal, "interview", "interviews", "job", "hiring")
		},
		rec: Recommendation{
			Type:         TypeProblem,
			Title:        "Run Timed Mock-Interview Problem Sets",
			Description:  "Solve curated interview problems under a 45-minute timer, then review the editorial for every problem you missed.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "1 hour daily",
			Resources:    []string{"https://leetcode.com/problemset", "https://www.pramp.com"},
		},
	},
	{
		name:   "github-first-repo",
		weight: 5,
		match: func(sig signals, _, _ string) bool {
			return sig.hasGitHub && sig.repoCount == 0
		},
		rec: Recommendation{
			Type:         TypeProject,
			Title:        "Start Your First Repository",
			Description:  "Create your first public repository with a small project in your preferred language, including a README that explains how to run it.",
			Difficulty:   DifficultyBeginner,
			TimeEstimate: "2-3 hours",
			Resources:    []string{"https://github.com", "https://docs.github.com/en/get-started"},
		},
	},
	{
		name:   "judge-foundations",
		weight: 5,
		match: func(sig signals, _, _ string) bool {
			return sig.hasJudge && sig.ratingTier == tierNovice
		},
		rec: Recommendation{
			Type:         TypeProblem,
			Title:        "Solve Basic Algorithm Problems",
			Description:  "Practice fundamental algorithms and data structures on rated problems below the 1200 band until they feel routine.",
			Difficulty:   DifficultyBeginner,
			TimeEstimate: "1 hour daily",
			Resources:    []string{"https://codeforces.com/problemset"},
		},
	},
	{
		name:   "judge-climb",
		weight: 4,
		match: func(sig signals, _, _ string) bool {
			return sig.hasJudge && sig.ratingTier == tierIntermediate
		},
		rec: Recommendation{
			Type:         TypeProblem,
			Title:        "Target Problems One Band Above Your Rating",
			Description:  "Pick problems rated 100-300 points above your current rating and upsolve everything you fail during contests.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "1-2 hours daily",
			Resources:    []string{"https://codeforces.com/problemset"},
		},
	},
	{
		name:   "judge-advanced",
		weight: 4,
		match: func(sig signals, _, _ string) bool {
			return sig.hasJudge && sig.ratingTier == tierExpert
		},
		rec: Recommendation{
			Type:         TypeProblem,
			Title:        "Practice Division 1 Contest Problems",
			Description:  "Work through recent Division 1 problem sets and write up the techniques you learn from each editorial.",
			Difficulty:   DifficultyAdvanced,
			TimeEstimate: "2 hours daily",
			Resources:    []string{"https://codeforces.com/contests"},
		},
	},
	{
		name:   "github-language-breadth",
		weight: 3,
		match: func(sig signals, _, _ string) bool {
			return sig.hasGitHub && sig.repoCount > 0 && sig.languageCount <= 1
		},
		rec: Recommendation{
			Type:         TypeLearning,
			Title:        "Explore a Second Programming Language",
			Description:  "Your recent repositories concentrate on one language; learn a second one with a different paradigm and port a small project to it.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "3-4 weeks",
			Resources:    []string{"https://exercism.org", "https://go.dev/tour"},
		},
	},
	{
		name:   "github-commit-habit",
		weight: 3,
		match: func(sig signals, _, _ string) bool {
			return sig.hasGitHub && sig.repoCount > 0 && sig.recentCommits == 0
		},
		rec: Recommendation{
			Type:         TypeSkill,
			Title:        "Rebuild a Regular Commit Habit",
			Description:  "No recent push activity was found; schedule small, recurring contributions to an existing repository to keep momentum.",
			Difficulty:   DifficultyBeginner,
			TimeEstimate: "30 minutes daily",
			Resources:    []string{"https://github.com"},
		},
	},
	{
		name:   "judge-contest-cadence",
		weight: 2,
		match: func(sig signals, _, _ string) bool {
			return sig.hasJudge && sig.contests < 5
		},
		rec: Recommendation{
			Type:         TypeProblem,
			Title:        "Enter Rated Contests Regularly",
			Description:  "You have few rated contests on record; enter at least two contests a month to get calibrated feedback on your progress.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "2 contests monthly",
			Resources:    []string{"https://codeforces.com/contests"},
		},
	},
	{
		name:   "github-showcase",
		weight: 2,
		match: func(sig signals, _, _ string) bool {
			return sig.hasGitHub && sig.repoCount >= 3 && sig.totalStars == 0
		},
		rec: Recommendation{
			Type:         TypeSkill,
			Title:        "Polish and Promote One Repository",
			Description:  "Pick your best repository, add documentation, tests and a demo, and share it where your target community will see it.",
			Difficulty:   DifficultyIntermediate,
			TimeEstimate: "1 week",
			Resources:    []string{"https://docs.github.com/en/repositories"},
		},
	},
}

// fallbackSet is returned when neither the rule table nor the proposer yields
// a single candidate. The synthesizer never returns an empty list, and the
// fallback always leads with a beginner learning entry.
var fallbackSet = []Recommendation{
	{
		Type:         TypeLearning,
		Title:        "Master Programming Fundamentals",
		Description:  "Build a strong base in one language plus core data structures before specializing; follow a roadmap and track your progress weekly.",
		Difficulty:   DifficultyBeginner,
		TimeEstimate: "3-6 months",
		Resources:    []string{"https://roadmap.sh", "https://leetcode.com"},
	},
	{
		Type:         TypeProject,
		Title:        "Build a Portfolio Project",
		Description:  "Create a project that showcases your skills in your domain of interest and publish the source with a clear README.",
		Difficulty:   DifficultyIntermediate,
		TimeEstimate: "2-4 weeks",
		Resources:    []string{"https://github.com"},
	},
}
