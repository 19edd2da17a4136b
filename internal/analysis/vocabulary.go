package analysis

import (
	"regexp"
	"strings"
)

// Vocabulary is the skill lexicon the extractor and scorers match against:
// a set of canonical skill names, an alias map folding common shorthands onto
// their canonical form, and the keyword lists used for education detection.
type Vocabulary struct {
	skills    map[string]struct{}
	synonyms  map[string]string
	eduFields []string
	degrees   []string
	maxPhrase int
}

// NewVocabulary builds a vocabulary from explicit lists. Skills and synonym
// values are stored canonicalized (lowercase, trimmed). The longest phrase
// length across skills and aliases bounds n-gram matching later.
func NewVocabulary(skills []string, synonyms map[string]string, eduFields, degrees []string) *Vocabulary {
	v := &Vocabulary{
		skills:    make(map[string]struct{}, len(skills)),
		synonyms:  make(map[string]string, len(synonyms)),
		eduFields: make([]string, 0, len(eduFields)),
		degrees:   make([]string, 0, len(degrees)),
		maxPhrase: 1,
	}
	for alias, canonical := range synonyms {
		alias = strings.ToLower(strings.TrimSpace(alias))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if alias == "" || canonical == "" {
			continue
		}
		v.synonyms[alias] = canonical
		v.notePhrase(alias)
	}
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		v.skills[s] = struct{}{}
		v.notePhrase(s)
	}
	for _, f := range eduFields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			v.eduFields = append(v.eduFields, f)
		}
	}
	for _, d := range degrees {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			v.degrees = append(v.degrees, d)
		}
	}
	return v
}

// DefaultVocabulary returns the built-in lexicon.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(defaultSkills, defaultSynonyms, defaultEduFields, defaultDegrees)
}

func (v *Vocabulary) notePhrase(s string) {
	if n := strings.Count(s, " ") + 1; n > v.maxPhrase {
		v.maxPhrase = n
	}
}

// Canonical folds a raw token or phrase onto its canonical skill form.
// Unknown tokens come back lowercased and trimmed, not rejected.
func (v *Vocabulary) Canonical(tok string) string {
	t := strings.ToLower(strings.TrimSpace(tok))
	if c, ok := v.synonyms[t]; ok {
		return c
	}
	return t
}

// IsSkill reports whether tok, after canonicalization, is a known skill.
func (v *Vocabulary) IsSkill(tok string) bool {
	_, ok := v.skills[v.Canonical(tok)]
	return ok
}

// MaxPhraseWords is the longest multi-word entry in the lexicon.
func (v *Vocabulary) MaxPhraseWords() int { return v.maxPhrase }

var (
	nonTechChars = regexp.MustCompile(`[^a-z0-9+.#/\- ]+`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text and strips everything outside the token alphabet,
// keeping tech punctuation so names like c++, .net and node.js survive.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonTechChars.ReplaceAllString(s, " ")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// Tokenize splits normalized text into tokens. Trailing periods are
// trimmed so sentence-final tokens still match; leading and interior
// dots stay, keeping .net and node.js whole.
func Tokenize(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	toks := strings.Split(n, " ")
	out := toks[:0]
	for _, t := range toks {
		if t = strings.TrimRight(t, "."); t != "" {
			out = append(out, t)
		}
	}
	return out
}

var defaultSkills = []string{
	// Programming languages
	"python", "java", "c", "c++", "c#", ".net", "javascript", "typescript", "node", "node.js",
	"golang", "rust", "php", "ruby", "swift", "kotlin", "scala", "r", "matlab", "sql",
	"html", "css", "sass", "scss",

	// Web frameworks
	"react", "angular", "vue", "svelte", "next.js", "nuxt.js", "gatsby", "express", "nest.js",
	"django", "flask", "fastapi", "spring", "spring boot", "laravel", "symfony", "rails",
	"asp.net", "dotnet",

	// Mobile
	"react native", "flutter", "xamarin", "ionic", "cordova", "progressive web apps", "pwa",

	// Databases
	"postgres", "mysql", "mongodb", "redis", "elasticsearch", "cassandra", "dynamodb", "neo4j",
	"sqlite", "oracle", "sql server", "mariadb", "couchdb", "influxdb", "firebase",

	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible", "chef", "puppet",
	"jenkins", "gitlab ci", "github actions", "circleci", "travis ci", "bamboo", "spinnaker",

	// Data science and AI
	"machine learning", "deep learning", "artificial intelligence", "data science",
	"data analysis", "data engineering", "pandas", "numpy", "scipy", "tensorflow", "pytorch",
	"keras", "scikit-learn", "sklearn", "opencv", "nlp", "natural language processing",
	"computer vision", "neural networks", "statistics", "analytics", "tableau", "power bi",
	"looker", "qlik", "excel", "vba", "spark", "hadoop", "kafka", "airflow", "dbt", "etl",

	// Testing and quality
	"unit testing", "integration testing", "test automation", "selenium", "cypress", "jest",
	"mocha", "chai", "pytest", "junit", "testng", "cucumber", "bdd", "tdd", "code review",
	"static analysis", "sonarqube", "eslint", "prettier",

	// Security
	"cybersecurity", "penetration testing", "vulnerability assessment", "security auditing",
	"owasp", "firewall", "ssl", "tls", "oauth", "oauth2", "jwt", "rbac", "encryption",
	"cryptography", "secure coding", "security compliance", "gdpr", "hipaa", "pci dss",

	// Systems and operations
	"linux", "windows", "unix", "bash", "powershell", "shell scripting",
	"system administration", "network administration", "monitoring", "logging", "prometheus",
	"grafana", "elk stack", "splunk", "new relic", "datadog", "zabbix", "nagios",

	// Architecture
	"microservices", "rest api", "graphql", "websocket", "grpc", "soap", "api design",
	"system design", "distributed systems", "load balancing", "caching", "cdn",
	"message queues", "event streaming", "cqrs", "event sourcing", "domain driven design",
	"clean architecture", "hexagonal architecture",

	// Delivery and soft skills
	"agile", "scrum", "kanban", "waterfall", "project management", "leadership", "mentoring",
	"communication", "problem solving", "critical thinking", "teamwork", "time management",
	"adaptability", "creativity", "attention to detail", "customer service",
	"stakeholder management", "risk management", "change management",

	// Industry and platforms
	"fintech", "healthcare", "e-commerce", "gaming", "edtech", "saas", "paas", "iaas",
	"blockchain", "cryptocurrency", "iot", "ar", "vr", "metaverse", "quantum computing",
	"edge computing", "serverless", "lambda", "api gateway", "service mesh", "istio",
	"linkerd",

	// Tools
	"git", "jira", "confluence", "slack", "teams", "zoom", "figma", "sketch", "adobe",
	"photoshop", "illustrator", "invision", "zeplin", "notion", "trello", "asana",
	"monday.com", "clickup",
}

var defaultSynonyms = map[string]string{
	"js":           "javascript",
	"ts":           "typescript",
	"tf":           "tensorflow",
	"scikit learn": "scikit-learn",
	"ml":           "machine learning",
	"dl":           "deep learning",
	"postgresql":   "postgres",
	"go":           "golang",
	"k8s":          "kubernetes",
	"ai":           "artificial intelligence",
	"data eng":     "data engineering",
	"big data":     "data science",
}

var defaultEduFields = []string{
	"computer science", "information technology", "data science", "software engineering",
	"electronics", "electrical", "mathematics", "statistics", "ai", "artificial intelligence",
	"machine learning", "cyber security", "network engineering", "cloud computing",
	"business administration", "finance", "marketing", "design", "physics", "chemistry",
}

var defaultDegrees = []string{
	"bsc", "b.tech", "btech", "be", "msc", "m.tech", "mtech", "ms", "phd",
	"bachelor", "master", "doctorate", "associate", "diploma",
}
