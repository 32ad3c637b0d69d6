package similarity

// responseSchema is the contract every similarity response must satisfy.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overall_score"],
  "properties": {
    "exact_match_score":      {"type": "number", "minimum": 0, "maximum": 1},
    "similarity_match_score": {"type": "number", "minimum": 0, "maximum": 1},
    "overall_score":          {"type": "number", "minimum": 0, "maximum": 1},
    "matched_skills": {
      "type": ["array", "null"],
      "items": {"type": "string"}
    },
    "similar_skills": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["required", "user_has", "similarity"],
        "properties": {
          "required":   {"type": "string"},
          "user_has":   {"type": "string"},
          "similarity": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    }
  }
}`
