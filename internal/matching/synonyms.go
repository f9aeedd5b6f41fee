package matching

import "strings"

// relatedSkills groups technologies that count as partial credit for each
// other when matching job requirements against CV skills.
var relatedSkills = [][]string{
	{"javascript", "js", "typescript", "react", "vue", "angular", "node", "node.js"},
	{"python", "django", "flask", "fastapi"},
	{"java", "spring", "kotlin"},
	{"php", "laravel", "wordpress"},
	{"c#", ".net", "asp.net"},
	{"sql", "mysql", "postgresql", "mariadb", "database"},
	{"nosql", "mongodb", "cassandra", "dynamodb", "redis"},
	{"aws", "amazon web services", "ec2", "s3", "lambda", "cloud"},
	{"azure", "gcp", "google cloud"},
	{"docker", "kubernetes", "container", "devops"},
	{"excel", "power bi", "tableau", "reporting"},
	{"seo", "sem", "digital marketing", "google ads"},
}

// isRelatedSkill reports whether two skill names belong to the same
// technology group.
func isRelatedSkill(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	for _, group := range relatedSkills {
		foundA, foundB := false, false
		for _, member := range group {
			if member == a {
				foundA = true
			}
			if member == b {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}
