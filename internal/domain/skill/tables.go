package skill

// synonyms rewrites known aliases to one canonical form. Every value must be
// a fixed point (never itself a key) so that Normalize stays idempotent.
var synonyms = map[string]string{
	"js":                "javascript",
	"javascript (es6+)": "javascript",
	"ts":                "typescript",
	"py":                "python",

	"rest api":                 "restful api",
	"restful apis":             "restful api",
	"restful api integration":  "restful api",
	"restful apis integration": "restful api",
	"api development":          "restful api",
	"web api":                  "restful api",

	"k8s":            "kubernetes",
	"docker compose": "docker",
	"gcp":            "google cloud platform",
	"aws":            "amazon web services",
	"azure":          "microsoft azure",

	"spring":       "spring boot",
	"react.js":     "react",
	"react 360":    "react",
	"vue.js":       "vue",
	"angular.js":   "angular",
	"postgres":     "postgresql",
	"mysql server": "mysql",
	"mongo":        "mongodb",

	"database management": "database",

	"ml":            "machine learning",
	"ai":            "artificial intelligence",
	"deep learning": "machine learning",

	"integration testing": "testing",
	"load testing":        "performance testing",
	"automation testing":  "testing",
	"api testing":         "testing",

	"ios development":       "mobile development",
	"android development":   "mobile development",
	"mobile ui development": "mobile development",

	"ui design":    "design",
	"ux design":    "design",
	"ui/ux design": "design",

	"data analysis":             "analytics",
	"data engineering":          "data processing",
	"data pipeline development": "etl",

	"software architecture":   "system architecture",
	"enterprise architecture": "system architecture",
	"cloud architecture":      "system architecture",

	"security principles":  "security",
	"banking security":     "security",
	"application security": "security",

	"performance tuning":    "performance optimization",
	"database optimization": "query optimization",

	"java spring boot": "spring boot",
	"spring framework": "spring boot",
	"python/fastapi":   "fastapi",
	"flutter/dart":     "flutter",

	"state management (redux)": "redux",
}

// categoryTerms lists representative terms per category. A skill belongs to
// a category when its canonical form contains any of the terms.
var categoryTerms = []struct {
	category Category
	terms    []string
}{
	{Frontend, []string{"react", "vue", "angular", "javascript", "typescript", "html", "css", "next.js", "nuxt.js"}},
	{Backend, []string{"java", "python", "node.js", "spring boot", "django", "flask", "go", "rust", "c++", "c#"}},
	{Cloud, []string{
		"aws", "amazon web services", "google cloud platform", "gcp", "microsoft azure", "azure",
		"docker", "kubernetes", "terraform", "jenkins",
	}},
	{Database, []string{"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sql", "nosql"}},
	{ML, []string{
		"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn", "keras", "nlp", "computer vision",
	}},
	{Mobile, []string{"android", "ios", "react native", "flutter", "swift", "kotlin"}},
	{Testing, []string{"junit", "pytest", "jest", "selenium", "cypress", "test automation"}},
}

// specializedTerms marks domains where a low skill match is never good enough.
var specializedTerms = []string{
	"machine learning", "ml", "ai", "artificial intelligence", "deep learning",
	"tensorflow", "pytorch", "keras",
	"devops", "kubernetes", "docker orchestration",
	"security", "penetration testing", "cybersecurity",
	"blockchain", "smart contract", "web3",
	"embedded systems", "iot", "firmware",
	"game development", "unity", "unreal engine",
	"data science", "big data", "spark", "hadoop",
	"computer vision", "nlp", "natural language processing",
}

// relationships records "knowing key makes each listed skill learnable".
// Keys and members are normalized when the resolver is built.
var relationships = map[string][]string{
	"restful api design": {
		"spring boot", "express.js", "express", "nestjs", "django", "flask", "fastapi", "java",
		"node.js", "microservices", "api development", "backend development", "web services",
	},
	"api performance tuning": {
		"spring boot", "java", "node.js", "database optimization", "query optimization", "caching",
		"redis", "performance optimization", "application performance optimization", "microservices",
		"backend development",
	},
	"node.js": {
		"javascript", "typescript", "express.js", "express", "nestjs", "backend development", "restful api",
	},
	"postgresql": {
		"mysql", "sql", "database management", "database", "database optimization", "sql server",
		"oracle", "relational database",
	},
	"mysql": {
		"postgresql", "sql", "database management", "database", "mariadb", "sql server",
	},
	"spring boot": {
		"java", "spring", "spring framework", "hibernate", "jpa", "maven", "gradle",
	},
	"react": {
		"javascript", "typescript", "vue", "angular", "next.js", "redux", "frontend development",
	},
	"database management": {
		"postgresql", "mysql", "mongodb", "sql", "database", "database optimization", "query optimization",
	},
	"backend development": {
		"java", "spring boot", "node.js", "python", "django", "flask", "go", "restful api",
		"microservices", "api development",
	},
	"frontend development": {
		"react", "vue", "angular", "javascript", "typescript", "html", "css", "next.js",
	},
	"microservices": {
		"spring boot", "docker", "kubernetes", "restful api", "api gateway", "message queue",
		"distributed systems",
	},
	"docker": {
		"kubernetes", "containerization", "devops", "ci/cd", "docker compose",
	},
	"javascript": {
		"typescript", "node.js", "react", "vue", "vue.js", "angular", "next.js", "express.js", "nestjs",
		"react native", "frontend development", "backend development", "jest", "mocha",
	},
	"typescript": {
		"javascript", "angular", "react", "vue", "node.js", "nestjs", "next.js", "frontend development",
	},
	"vue.js": {
		"react", "angular", "javascript", "typescript", "vue", "next.js", "frontend development",
		"html/css", "state management", "redux",
	},
	"vue": {
		"react", "angular", "javascript", "typescript", "vue.js", "frontend development", "html/css",
	},
	"angular": {
		"react", "vue", "vue.js", "typescript", "javascript", "frontend development", "rxjs", "html/css",
	},
	"react native": {
		"react", "javascript", "typescript", "mobile development", "ios development",
		"android development", "flutter", "mobile ui development", "mobile ui design principles",
	},
	"java": {
		"spring boot", "spring", "spring framework", "hibernate", "jpa", "maven", "gradle", "junit",
		"spring security", "microservices", "backend development", "restful api",
	},
	"python": {
		"django", "flask", "fastapi", "machine learning", "tensorflow", "pytorch", "scikit-learn",
		"pandas", "numpy", "data analysis", "nlp", "ai", "etl", "data engineering",
		"automation testing", "selenium",
	},
	"machine learning": {
		"python", "tensorflow", "pytorch", "scikit-learn", "deep learning", "ai", "nlp",
		"data analysis", "pandas", "numpy", "keras", "ml model training", "nlp model training",
	},
	"tensorflow": {
		"python", "machine learning", "deep learning", "keras", "pytorch", "nlp", "ai", "ml model training",
	},
	"nlp": {
		"python", "machine learning", "tensorflow", "natural language processing", "ai", "deep learning",
		"nlp model training",
	},
	"android": {
		"kotlin", "java", "mobile development", "android sdk", "mobile ui development", "flutter",
		"react native",
	},
	"kotlin":  {"android", "java", "mobile development", "android sdk"},
	"swift":   {"ios", "ios development", "ios sdk", "mobile development", "xcode", "objective-c"},
	"ios sdk": {"swift", "ios development", "mobile development", "xcode"},
	"flutter": {"dart", "mobile development", "android", "ios", "react native", "flutter/dart"},
	"sql": {
		"postgresql", "mysql", "sql server", "oracle", "database management", "database",
		"query optimization", "database design", "database optimization",
	},
	"mongodb": {
		"nosql", "database", "database management", "node.js", "express.js", "backend development",
		"database design",
	},
	"junit": {"java", "testing", "unit testing", "mockito", "spring boot", "integration testing"},
	"jest": {
		"javascript", "typescript", "react", "node.js", "testing", "unit testing", "integration testing",
	},
	"jmeter": {
		"load testing", "performance testing", "api testing", "testing", "gatling",
		"load testing methodologies",
	},
	"selenium": {
		"automation testing", "testing", "java", "python", "web testing", "integration testing",
	},
	"postman": {
		"api testing", "rest api", "restful api", "testing", "api development", "swagger",
	},
	"rest api": {
		"restful api", "api development", "restful api design", "restful api integration", "spring boot",
		"node.js", "express.js", "microservices", "backend development", "api testing", "postman", "swagger",
	},
	"restful api integration": {
		"rest api", "restful api", "api development", "restful api design", "microservices",
		"backend development", "node.js", "spring boot", "http client",
	},
	"websocket": {
		"node.js", "socket.io", "real-time communication", "backend development", "javascript", "web api",
	},
	"stripe api": {
		"payment gateway", "payment integration", "payment gateway integration", "api integration",
		"webhook", "backend development",
	},
	"payment gateway integration": {
		"stripe", "stripe api", "payment gateway", "webhook", "backend development",
		"transaction management", "api integration",
	},
	"kubernetes": {
		"docker", "k8s", "containerization", "devops", "microservices", "cloud architecture", "deployment",
	},
	"aws": {
		"amazon web services", "cloud", "cloud architecture", "devops", "aws networking", "cloud platform",
	},
	"ci/cd": {
		"jenkins", "gitlab ci", "github actions", "devops", "docker", "kubernetes", "ci/cd tools", "automation",
	},
	"system architecture": {
		"software architecture", "microservices", "cloud architecture", "enterprise architecture",
		"backend architecture", "distributed systems", "architecture design",
	},
	"algorithm design": {
		"data structures", "optimization", "computer science", "problem solving", "software engineering",
	},
	"jwt": {
		"authentication", "authorization", "security", "spring security", "oauth", "api security",
	},
	"spring security": {
		"java", "spring boot", "security", "authentication", "authorization", "jwt", "oauth",
	},
	"pci dss": {
		"security", "compliance", "banking security", "payment security", "security principles",
	},
	"figma": {
		"ui design", "ux design", "design", "prototyping", "ui/ux design", "mobile ui design",
		"user research", "ui/ux design techniques",
	},
	"html/css": {
		"html", "css", "frontend development", "web development", "javascript", "react", "vue", "angular",
	},
	"data visualization": {
		"chart.js", "d3.js", "analytics", "data analysis", "dashboard", "reporting", "bi tools",
	},
	"etl": {
		"data engineering", "python", "data pipeline", "data processing", "data transformation",
		"data pipeline development",
	},
	"analytics": {
		"data analysis", "data visualization", "reporting", "business intelligence", "metrics",
	},
	"query optimization": {
		"database optimization", "sql", "postgresql", "mysql", "performance optimization",
		"database design", "performance tuning",
	},
	"caching": {
		"redis", "memcached", "performance optimization", "backend development", "api performance tuning",
	},
	"redis": {
		"caching", "nosql", "database", "performance optimization", "session management",
		"backend development",
	},
	"apache kafka": {
		"kafka", "message queue", "event streaming", "distributed systems", "microservices",
		"real-time processing",
	},
	"mqtt": {
		"iot", "messaging", "message queue", "publish-subscribe", "real-time communication",
	},
	"blockchain": {
		"cryptocurrency", "smart contracts", "distributed ledger", "web3", "ethereum", "solidity",
	},
	"prometheus/grafana": {
		"monitoring", "metrics", "observability", "devops", "kubernetes", "alerting", "dashboard",
	},
	"redux": {
		"react", "state management", "javascript", "typescript", "frontend development", "mobx", "vuex",
	},
	"state management": {
		"redux", "vuex", "mobx", "react", "vue", "frontend development", "state management (redux)",
	},
	"smtp": {
		"email", "messaging", "node.js", "backend development", "nodemailer", "email integration",
	},
	"google maps api": {
		"maps", "geolocation", "api integration", "javascript", "mobile development", "location services",
	},
	"twilio api": {
		"sms", "messaging", "api integration", "communication", "backend development", "telephony",
	},
	"alexa api": {
		"voice assistant", "ai", "node.js", "api integration", "smart home", "voice ui",
	},
	"hls": {
		"video streaming", "http live streaming", "media", "cdn", "video processing", "multimedia",
	},
	"cdn": {
		"content delivery", "caching", "performance", "cloud", "web performance", "hls",
	},
	"agile": {
		"scrum", "agile project management", "project management", "kanban",
		"software development methodology",
	},
	"git": {
		"github", "gitlab", "version control", "source control", "git workflow", "devops",
	},
	"transaction management": {
		"database", "spring boot", "jpa", "hibernate", "acid", "database design", "backend development",
	},
	"rules engine": {
		"business logic", "drools", "decision engine", "backend development", "workflow",
	},
	"fraud detection": {
		"machine learning", "security", "data analysis", "anomaly detection", "risk management",
	},
	"stock api": {
		"financial api", "api integration", "real-time data", "market data", "trading",
	},
}
