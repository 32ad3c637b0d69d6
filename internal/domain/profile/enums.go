package profile

import "strings"

// Seniority is an ordered career level. The zero value means "not stated".
type Seniority int

// Seniority levels, lowest first.
const (
	SeniorityUnknown Seniority = iota
	Intern
	Junior
	Mid
	Senior
	Lead
	Principal
)

var seniorityNames = map[Seniority]string{
	Intern:    "INTERN",
	Junior:    "JUNIOR",
	Mid:       "MID",
	Senior:    "SENIOR",
	Lead:      "LEAD",
	Principal: "PRINCIPAL",
}

func (s Seniority) String() string {
	if n, ok := seniorityNames[s]; ok {
		return n
	}
	return ""
}

// ParseSeniority accepts canonical names and common aliases.
// Unrecognized input yields SeniorityUnknown.
func ParseSeniority(raw string) Seniority {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "INTERN":
		return Intern
	case "JUNIOR":
		return Junior
	case "MID", "MID_LEVEL", "MIDDLE":
		return Mid
	case "SENIOR":
		return Senior
	case "LEAD", "TEAM_LEAD":
		return Lead
	case "PRINCIPAL", "EXPERT":
		return Principal
	default:
		return SeniorityUnknown
	}
}

// Priority is the task urgency. The zero value means "not stated".
type Priority string

// Priorities.
const (
	PriorityUnknown  Priority = ""
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// ParsePriority maps URGENT onto CRITICAL and NORMAL onto MEDIUM.
func ParsePriority(raw string) Priority {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LOW":
		return PriorityLow
	case "MEDIUM", "NORMAL":
		return PriorityMedium
	case "HIGH":
		return PriorityHigh
	case "CRITICAL", "URGENT":
		return PriorityCritical
	default:
		return PriorityUnknown
	}
}

// IsElevated reports HIGH or CRITICAL priority.
func (p Priority) IsElevated() bool {
	return p == PriorityHigh || p == PriorityCritical
}

// Difficulty is the expected task complexity. The zero value means "not stated".
type Difficulty string

// Difficulties, easiest first.
const (
	DifficultyUnknown Difficulty = ""
	DifficultyEasy    Difficulty = "EASY"
	DifficultyMedium  Difficulty = "MEDIUM"
	DifficultyHard    Difficulty = "HARD"
	DifficultyExpert  Difficulty = "EXPERT"
)

// ParseDifficulty accepts LOW/MODERATE/HIGH/VERY_HARD as aliases.
func ParseDifficulty(raw string) Difficulty {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "EASY", "LOW":
		return DifficultyEasy
	case "MEDIUM", "MODERATE":
		return DifficultyMedium
	case "HARD", "HIGH":
		return DifficultyHard
	case "EXPERT", "VERY_HARD":
		return DifficultyExpert
	default:
		return DifficultyUnknown
	}
}

// Rank orders difficulties; unknown ranks lowest.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyExpert:
		return 4
	default:
		return 0
	}
}

// Availability is the candidate's declared status.
type Availability string

// Availability statuses.
const (
	AvailabilityUnknown     Availability = ""
	AvailabilityAvailable   Availability = "AVAILABLE"
	AvailabilityBusy        Availability = "BUSY"
	AvailabilityUnavailable Availability = "UNAVAILABLE"
)

// ParseAvailability is case-insensitive; unknown input yields AvailabilityUnknown.
func ParseAvailability(raw string) Availability {
	switch a := Availability(strings.ToUpper(strings.TrimSpace(raw))); a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return a
	default:
		return AvailabilityUnknown
	}
}
